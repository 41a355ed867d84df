package memory

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.PrescriptionRepository = (*PrescriptionRepo)(nil)

// PrescriptionRepo recetas en memoria.
type PrescriptionRepo struct {
	s *Store
}

// NewPrescriptionRepository construye el repositorio sobre el store.
func NewPrescriptionRepository(s *Store) *PrescriptionRepo {
	return &PrescriptionRepo{s: s}
}

func (r *PrescriptionRepo) Create(_ context.Context, p *entity.Prescription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("insert prescription"); err != nil {
		return err
	}
	if _, ok := r.s.prescriptions[p.PresID]; ok {
		return domain.ErrDuplicate
	}
	r.s.prescriptions[p.PresID] = *p
	r.s.mutations++
	return nil
}

func (r *PrescriptionRepo) List(_ context.Context) ([]*entity.Prescription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("list prescriptions"); err != nil {
		return nil, err
	}
	keys := sortedKeys(r.s.prescriptions, func(a, b string) bool { return a < b })
	out := make([]*entity.Prescription, 0, len(keys))
	for _, k := range keys {
		p := r.s.prescriptions[k]
		out = append(out, &p)
	}
	return out, nil
}

func (r *PrescriptionRepo) Delete(_ context.Context, presID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("delete prescription"); err != nil {
		return err
	}
	if _, ok := r.s.prescriptions[presID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.prescriptions, presID)
	r.s.mutations++
	return nil
}

func (r *PrescriptionRepo) CustomerExists(_ context.Context, cid string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("customer exists"); err != nil {
		return false, err
	}
	_, ok := r.s.customers[cid]
	return ok, nil
}

func (r *PrescriptionRepo) OrderExists(_ context.Context, orderID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("order exists"); err != nil {
		return false, err
	}
	_, ok := r.s.orders[orderID]
	return ok, nil
}
