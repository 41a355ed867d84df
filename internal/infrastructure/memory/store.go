// Package memory implementa los puertos de persistencia en memoria. Lo usan las
// pruebas de casos de uso y de HTTP, y la API con STORE_DRIVER=memory para demos sin base.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
)

type medicineKey struct {
	batchNo  string
	drugName string
}

type seenKey struct {
	empID string
	nid   string
}

// Store datos compartidos por todos los repositorios en memoria.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	employees     map[string]entity.Employee
	medicines     map[medicineKey]entity.Medicine
	rawExpiry     map[medicineKey]*string
	notifications map[string]entity.Notification
	seen          map[seenKey]struct{}
	prescriptions map[string]entity.Prescription
	customers     map[string]struct{}
	orders        map[string]struct{}

	failErr   error
	mutations int
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		employees:     map[string]entity.Employee{},
		medicines:     map[medicineKey]entity.Medicine{},
		rawExpiry:     map[medicineKey]*string{},
		notifications: map[string]entity.Notification{},
		seen:          map[seenKey]struct{}{},
		prescriptions: map[string]entity.Prescription{},
		customers:     map[string]struct{}{},
		orders:        map[string]struct{}{},
	}
}

// Fail hace que toda operación posterior falle como almacén no disponible. nil lo restablece.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

// Mutations número de escrituras aplicadas con éxito.
func (s *Store) Mutations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

// AddCustomer registra un cliente para las validaciones de recetas.
func (s *Store) AddCustomer(cid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[cid] = struct{}{}
}

// AddOrder registra una orden para las validaciones de recetas.
func (s *Store) AddOrder(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[orderID] = struct{}{}
}

// SetRawExpiry fuerza el texto de vencimiento que devuelve el snapshot (nil = NULL),
// como lo haría una fila importada con un formato inesperado.
func (s *Store) SetRawExpiry(batchNo, drugName string, raw *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawExpiry[medicineKey{batchNo, drugName}] = raw
}

// SeenCount filas en is_notified para el par.
func (s *Store) SeenCount(empID, nid string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[seenKey{empID, nid}]; ok {
		return 1
	}
	return 0
}

// check debe llamarse con mu tomado.
func (s *Store) check(op string) error {
	if s.failErr != nil {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, s.failErr)
	}
	return nil
}

func sortedKeys[K comparable, V any](m map[K]V, less func(a, b K) bool) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}
