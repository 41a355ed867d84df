package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/access"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
	"github.com/jhoicas/farmacia-api/pkg/logger"
)

// TypePrescription tipo de la notificación que acompaña cada receta nueva.
const TypePrescription = "Prescription"

// NotificationPublisher crea notificaciones del sistema con NID secuencial.
type NotificationPublisher interface {
	Publish(ctx context.Context, typ, message string) (*entity.Notification, error)
}

// PrescriptionUseCase alta y baja de recetas.
type PrescriptionUseCase struct {
	repo      repository.PrescriptionRepository
	publisher NotificationPublisher
	log       *logger.Logger
}

// NewPrescriptionUseCase construye el caso de uso.
func NewPrescriptionUseCase(repo repository.PrescriptionRepository, publisher NotificationPublisher, log *logger.Logger) *PrescriptionUseCase {
	return &PrescriptionUseCase{repo: repo, publisher: publisher, log: log}
}

// List lista las recetas.
func (uc *PrescriptionUseCase) List(ctx context.Context, s access.Session) ([]dto.PrescriptionResponse, error) {
	if err := access.CheckView(s, access.SectionPrescriptions); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PrescriptionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPrescriptionResponse(p))
	}
	return out, nil
}

// Create valida cliente y orden (opcional), inserta la receta y publica la notificación
// "Prescription". Si la notificación falla la receta queda creada y el fallo solo se registra.
func (uc *PrescriptionUseCase) Create(ctx context.Context, s access.Session, in dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	if err := access.Check(s, access.SectionPrescriptions, access.ActionAdd); err != nil {
		return nil, err
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	date, err := optionalDate("pres_date", in.PresDate)
	if err != nil {
		return nil, err
	}
	p := &entity.Prescription{
		PresID:   strings.TrimSpace(in.PresID),
		CID:      strings.TrimSpace(in.CID),
		DocID:    strings.TrimSpace(in.DocID),
		PresDate: date,
		OrderID:  strings.TrimSpace(in.OrderID),
	}

	ok, err := uc.repo.CustomerExists(ctx, p.CID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: el cliente %q no existe", domain.ErrInvalidInput, p.CID)
	}
	if p.OrderID != "" {
		ok, err := uc.repo.OrderExists(ctx, p.OrderID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: la orden %q no existe", domain.ErrInvalidInput, p.OrderID)
		}
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	log := uc.log.Session(s.ID, s.UserID)
	out := toPrescriptionResponse(p)

	msg := fmt.Sprintf("New prescription %s for customer %s", p.PresID, p.CID)
	n, err := uc.publisher.Publish(ctx, TypePrescription, msg)
	if err != nil {
		log.Error().Err(err).Str("pres_id", p.PresID).Msg("no se pudo crear la notificación de la receta")
		return &out, nil
	}
	out.NotificationID = n.NID
	log.Info().Str("pres_id", p.PresID).Str("nid", n.NID).Msg("receta creada")
	return &out, nil
}

// Delete elimina una receta.
func (uc *PrescriptionUseCase) Delete(ctx context.Context, s access.Session, presID string) error {
	if err := access.Check(s, access.SectionPrescriptions, access.ActionDelete); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, strings.TrimSpace(presID)); err != nil {
		return err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("pres_id", presID).Msg("receta eliminada")
	return nil
}

func toPrescriptionResponse(p *entity.Prescription) dto.PrescriptionResponse {
	return dto.PrescriptionResponse{
		PresID:   p.PresID,
		CID:      p.CID,
		DocID:    p.DocID,
		PresDate: formatDate(p.PresDate),
		OrderID:  p.OrderID,
	}
}
