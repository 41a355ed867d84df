package notification_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/notification"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/infrastructure/memory"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

func session(role access.Role, userID string) access.Session {
	return access.NewSession("s-"+userID, userID, userID, role, time.Now())
}

func newUseCase(store *memory.Store) *notification.NotificationUseCase {
	return notification.NewNotificationUseCase(
		memory.NewTxRunner(store),
		memory.NewNotificationRepository(store),
		memory.NewSeenRepository(store),
		memory.NewEmployeeRepository(store),
		logger.Nop(),
	)
}

func TestCreate_NumeracionSecuencial(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)
	ctx := context.Background()
	pharm := session(access.RolePharmacist, "E1")

	first, err := uc.Create(ctx, pharm, dto.CreateNotificationRequest{Message: "Revisar refrigerador"})
	require.NoError(t, err)
	assert.Equal(t, "N001", first.NID)

	second, err := uc.Create(ctx, pharm, dto.CreateNotificationRequest{Type: "Aviso", Message: "Inventario el lunes"})
	require.NoError(t, err)
	assert.Equal(t, "N002", second.NID)

	list, err := uc.List(ctx, pharm)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "N002", list[0].NID, "el listado va por NID descendente")
}

func TestCreate_ContinuaDesdeElUltimo(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewNotificationRepository(store)
	require.NoError(t, repo.Create(context.Background(), &entity.Notification{NID: "N041", Message: "x"}))

	n, err := newUseCase(store).Publish(context.Background(), "Expiry", "lotes vencidos")
	require.NoError(t, err)
	assert.Equal(t, "N042", n.NID)
	assert.Equal(t, "Expiry", n.Type)
}

func TestCreate_SecuenciaAgotada(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewNotificationRepository(store)
	require.NoError(t, repo.Create(context.Background(), &entity.Notification{NID: "N999", Message: "x"}))

	_, err := newUseCase(store).Publish(context.Background(), "", "otra")
	assert.ErrorIs(t, err, domain.ErrSequenceExhausted)
	assert.Equal(t, 1, store.Mutations())
}

func TestCreate_AltasConcurrentesNoRepitenNID(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Publish(context.Background(), "", fmt.Sprintf("mensaje %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	list, err := memory.NewNotificationRepository(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 20)
	assert.Equal(t, "N020", list[0].NID)
}

func TestCreate_PermisoDenegadoNoTocaElAlmacen(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)

	_, err := uc.Create(context.Background(), session(access.RoleCashier, "E9"), dto.CreateNotificationRequest{Message: "hola"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Equal(t, 0, store.Mutations())
}

func TestCreate_MensajeVacio(t *testing.T) {
	uc := newUseCase(memory.NewStore())
	_, err := uc.Create(context.Background(), session(access.RoleAdmin, "ADMIN"), dto.CreateNotificationRequest{Message: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_AlmacenCaido(t *testing.T) {
	store := memory.NewStore()
	store.Fail(errors.New("connection refused"))

	_, err := newUseCase(store).Create(context.Background(), session(access.RoleAdmin, "ADMIN"), dto.CreateNotificationRequest{Message: "x"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestDelete_SoloConPermiso(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)
	ctx := context.Background()
	n, err := uc.Publish(ctx, "", "borrar")
	require.NoError(t, err)

	err = uc.Delete(ctx, session(access.RolePharmacist, "E1"), n.NID)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	require.NoError(t, uc.Delete(ctx, session(access.RoleSupervisor, "E2"), n.NID))
	assert.ErrorIs(t, uc.Delete(ctx, session(access.RoleSupervisor, "E2"), n.NID), domain.ErrNotFound)
}

func TestMarkSeen_Idempotente(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)
	ctx := context.Background()
	pharm := session(access.RolePharmacist, "E1")
	seedEmployees(t, store, "E1")
	n, err := uc.Publish(ctx, "", "nuevo lote")
	require.NoError(t, err)

	out, err := uc.MarkSeen(ctx, pharm, n.NID, dto.MarkSeenRequest{})
	require.NoError(t, err)
	assert.Equal(t, "created", out.Outcome)
	assert.Equal(t, "E1", out.EmpID, "sin EmpID se usa el usuario de la sesión")

	out, err = uc.MarkSeen(ctx, pharm, n.NID, dto.MarkSeenRequest{EmpID: "E1"})
	require.NoError(t, err)
	assert.Equal(t, "already_marked", out.Outcome)
	assert.Equal(t, 1, store.SeenCount("E1", n.NID))

	unseen, err := uc.UnseenCount(ctx, pharm)
	require.NoError(t, err)
	assert.Equal(t, 0, unseen.Unseen)

	seen, err := uc.SeenList(ctx, pharm)
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "nuevo lote", seen[0].Message)
}

func TestMarkSeen_SinVistaDeNotificaciones(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)
	n, err := uc.Publish(context.Background(), "", "x")
	require.NoError(t, err)

	_, err = uc.MarkSeen(context.Background(), session(access.RoleCashier, "E3"), n.NID, dto.MarkSeenRequest{})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Equal(t, 0, store.SeenCount("E3", n.NID))
}

func TestPublishAll_NIDConsecutivos(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)

	created, err := uc.PublishAll(context.Background(), "Expiry", []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "N001", created[0].NID)
	assert.Equal(t, "N003", created[2].NID)
}

func TestPublishAll_AgotarLaSecuenciaNoDejaNinguna(t *testing.T) {
	store := memory.NewStore()
	seedNotification(t, store, "N998")
	uc := newUseCase(store)
	before := store.Mutations()

	_, err := uc.PublishAll(context.Background(), "Expiry", []string{"vencidos", "por vencer"})
	assert.ErrorIs(t, err, domain.ErrSequenceExhausted)
	assert.Equal(t, before, store.Mutations())

	list, err := uc.List(context.Background(), session(access.RoleAdmin, "ADMIN"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "N998", list[0].NID)
}

func TestPublishAll_MensajeVacioNoTocaElAlmacen(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)

	_, err := uc.PublishAll(context.Background(), "", []string{"ok", " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.Mutations())
}
