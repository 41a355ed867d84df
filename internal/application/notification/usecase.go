// Package notification casos de uso de notificaciones: alta con NID secuencial,
// listado, borrado y registro de vistos.
package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	seq "github.com/jhoicas/farmacia-api/internal/domain/notification"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/pkg/logger"
	"github.com/jhoicas/farmacia-api/pkg/validator"
)

// NotificationUseCase casos de uso de notificaciones.
type NotificationUseCase struct {
	tx      repository.NotificationTxRunner
	repo    repository.NotificationRepository
	seen    repository.SeenRepository
	tracker *SeenTracker
	log     *logger.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(
	tx repository.NotificationTxRunner,
	repo repository.NotificationRepository,
	seen repository.SeenRepository,
	employees repository.EmployeeRepository,
	log *logger.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		tx:      tx,
		repo:    repo,
		seen:    seen,
		tracker: NewSeenTracker(seen, repo, employees, log),
		log:     log,
	}
}

// Create alta manual; requiere permiso de agregar en Notifications.
func (uc *NotificationUseCase) Create(ctx context.Context, s access.Session, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if err := access.Check(s, access.SectionNotifications, access.ActionAdd); err != nil {
		return nil, err
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}
	n, err := uc.Publish(ctx, strings.TrimSpace(in.Type), strings.TrimSpace(in.Message))
	if err != nil {
		return nil, err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("nid", n.NID).Msg("notificación creada")
	return toNotificationResponse(n), nil
}

// Publish crea una notificación con el siguiente NID. La lectura del último NID y la
// inserción van en la misma transacción. Lo usan los flujos internos (vencimientos, recetas).
func (uc *NotificationUseCase) Publish(ctx context.Context, typ, message string) (*entity.Notification, error) {
	created, err := uc.PublishAll(ctx, typ, []string{message})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

// PublishAll crea una notificación por mensaje, con NID consecutivos, en una sola
// transacción: si alguna falla no queda ninguna.
func (uc *NotificationUseCase) PublishAll(ctx context.Context, typ string, messages []string) ([]*entity.Notification, error) {
	if len(messages) == 0 {
		return []*entity.Notification{}, nil
	}
	for _, m := range messages {
		if strings.TrimSpace(m) == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	var created []*entity.Notification
	err := uc.tx.RunNotification(ctx, func(repo repository.NotificationRepository) error {
		created = make([]*entity.Notification, 0, len(messages))
		last, err := repo.LastID(ctx)
		if err != nil {
			return err
		}
		for _, m := range messages {
			nid, err := seq.NextID(last)
			if err != nil {
				return err
			}
			n := &entity.Notification{NID: nid, Type: typ, Message: m}
			if err := repo.Create(ctx, n); err != nil {
				return err
			}
			created = append(created, n)
			last = nid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List notificaciones por NID descendente.
func (uc *NotificationUseCase) List(ctx context.Context, s access.Session) ([]dto.NotificationResponse, error) {
	if err := access.CheckView(s, access.SectionNotifications); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, *toNotificationResponse(n))
	}
	return out, nil
}

// Delete elimina una notificación; requiere permiso de borrar.
func (uc *NotificationUseCase) Delete(ctx context.Context, s access.Session, nid string) error {
	if err := access.Check(s, access.SectionNotifications, access.ActionDelete); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, strings.TrimSpace(nid)); err != nil {
		return err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("nid", nid).Msg("notificación eliminada")
	return nil
}

// UnseenCount notificaciones que ningún empleado ha visto.
func (uc *NotificationUseCase) UnseenCount(ctx context.Context, s access.Session) (*dto.UnseenCountResponse, error) {
	if err := access.CheckView(s, access.SectionNotifications); err != nil {
		return nil, err
	}
	n, err := uc.repo.CountUnseen(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.UnseenCountResponse{Unseen: n}, nil
}

// SeenList quién vio qué.
func (uc *NotificationUseCase) SeenList(ctx context.Context, s access.Session) ([]dto.SeenEntryResponse, error) {
	if err := access.CheckView(s, access.SectionNotifications); err != nil {
		return nil, err
	}
	list, err := uc.seen.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SeenEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.SeenEntryResponse{
			EmpID:        e.EmpID,
			EmployeeName: e.EmployeeName,
			NID:          e.NID,
			Type:         e.Type,
			Message:      e.Message,
		})
	}
	return out, nil
}

// MarkSeen marca la notificación como vista. Sin EmpID explícito se usa el usuario de la sesión.
func (uc *NotificationUseCase) MarkSeen(ctx context.Context, s access.Session, nid string, in dto.MarkSeenRequest) (*dto.MarkSeenResponse, error) {
	if err := access.CheckView(s, access.SectionNotifications); err != nil {
		return nil, err
	}
	empID := strings.TrimSpace(in.EmpID)
	if empID == "" {
		empID = s.UserID
	}
	outcome, err := uc.tracker.MarkSeen(ctx, empID, nid)
	if err != nil {
		return nil, err
	}
	return &dto.MarkSeenResponse{EmpID: empID, NID: strings.TrimSpace(nid), Outcome: string(outcome)}, nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{NID: n.NID, Type: n.Type, Message: n.Message}
}
