package notification_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/auth"
	"github.com/jhoicas/farmacia-api/internal/application/notification"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// racySeen simula la carrera: Exists siempre dice que no, y la restricción única decide.
type racySeen struct {
	*memory.SeenRepo
}

func (racySeen) Exists(context.Context, string, string) (bool, error) { return false, nil }

func seedEmployees(t *testing.T, store *memory.Store, ids ...string) {
	t.Helper()
	repo := memory.NewEmployeeRepository(store)
	for _, id := range ids {
		require.NoError(t, repo.Create(context.Background(), &entity.Employee{EmpID: id, Name: id, Role: "Pharmacist"}))
	}
}

func newTracker(store *memory.Store, seen repository.SeenRepository) *notification.SeenTracker {
	return notification.NewSeenTracker(seen, memory.NewNotificationRepository(store), memory.NewEmployeeRepository(store), logger.Nop())
}

func seedNotification(t *testing.T, store *memory.Store, nid string) {
	t.Helper()
	require.NoError(t, memory.NewNotificationRepository(store).Create(context.Background(), &entity.Notification{NID: nid, Message: "m"}))
}

func TestMarkSeen_PrimeraVezYRepetida(t *testing.T) {
	store := memory.NewStore()
	seedNotification(t, store, "N001")
	seedEmployees(t, store, "E1", "E2")
	tracker := newTracker(store, memory.NewSeenRepository(store))

	out, err := tracker.MarkSeen(context.Background(), "E1", "N001")
	require.NoError(t, err)
	assert.Equal(t, notification.OutcomeCreated, out)

	out, err = tracker.MarkSeen(context.Background(), "E1", "N001")
	require.NoError(t, err)
	assert.Equal(t, notification.OutcomeAlreadyMarked, out)
	assert.Equal(t, 1, store.SeenCount("E1", "N001"))
}

func TestMarkSeen_DuplicadoPorCarreraEsAlreadyMarked(t *testing.T) {
	store := memory.NewStore()
	seedNotification(t, store, "N001")
	seedEmployees(t, store, "E1", "E2")
	seen := racySeen{memory.NewSeenRepository(store)}
	tracker := newTracker(store, seen)

	var wg sync.WaitGroup
	outcomes := make([]notification.Outcome, 8)
	for i := range outcomes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := tracker.MarkSeen(context.Background(), "E1", "N001")
			assert.NoError(t, err)
			outcomes[i] = out
		}(i)
	}
	wg.Wait()

	created := 0
	for _, o := range outcomes {
		if o == notification.OutcomeCreated {
			created++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, store.SeenCount("E1", "N001"))
}

func TestMarkSeen_EntradaInvalida(t *testing.T) {
	store := memory.NewStore()
	tracker := newTracker(store, memory.NewSeenRepository(store))

	_, err := tracker.MarkSeen(context.Background(), "", "N001")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = tracker.MarkSeen(context.Background(), "E1", " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarkSeen_NotificacionInexistente(t *testing.T) {
	store := memory.NewStore()
	tracker := newTracker(store, memory.NewSeenRepository(store))

	_, err := tracker.MarkSeen(context.Background(), "E1", "N404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkSeen_EmpleadosDistintosMismaNotificacion(t *testing.T) {
	store := memory.NewStore()
	seedNotification(t, store, "N001")
	seedEmployees(t, store, "E1", "E2")
	tracker := newTracker(store, memory.NewSeenRepository(store))

	for _, emp := range []string{"E1", "E2"} {
		out, err := tracker.MarkSeen(context.Background(), emp, "N001")
		require.NoError(t, err)
		assert.Equal(t, notification.OutcomeCreated, out)
	}
}

func TestMarkSeen_EmpleadoInexistente(t *testing.T) {
	store := memory.NewStore()
	seedNotification(t, store, "N001")
	tracker := newTracker(store, memory.NewSeenRepository(store))
	before := store.Mutations()

	_, err := tracker.MarkSeen(context.Background(), "GHOST-999", "N001")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.SeenCount("GHOST-999", "N001"))
	assert.Equal(t, before, store.Mutations())
}

func TestMarkSeen_AdministradorSinFilaDeEmpleado(t *testing.T) {
	store := memory.NewStore()
	seedNotification(t, store, "N001")
	tracker := newTracker(store, memory.NewSeenRepository(store))

	out, err := tracker.MarkSeen(context.Background(), auth.AdminUserID, "N001")
	require.NoError(t, err)
	assert.Equal(t, notification.OutcomeCreated, out)
}

func TestMarkSeen_AlmacenCaidoAlValidarEmpleado(t *testing.T) {
	store := memory.NewStore()
	seedNotification(t, store, "N001")
	seedEmployees(t, store, "E1")
	tracker := notification.NewSeenTracker(
		memory.NewSeenRepository(store), memory.NewNotificationRepository(store), downEmployees{}, logger.Nop(),
	)

	_, err := tracker.MarkSeen(context.Background(), "E1", "N001")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 0, store.SeenCount("E1", "N001"))
}

// downEmployees simula la tabla de empleados inaccesible.
type downEmployees struct {
	repository.EmployeeRepository
}

func (downEmployees) GetByID(context.Context, string) (*entity.Employee, error) {
	return nil, domain.ErrStoreUnavailable
}
