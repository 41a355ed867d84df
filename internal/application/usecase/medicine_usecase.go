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

// MedicineUseCase alta, edición y baja de lotes, sujetas a la compuerta de permisos.
type MedicineUseCase struct {
	repo repository.MedicineRepository
	log  *logger.Logger
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(repo repository.MedicineRepository, log *logger.Logger) *MedicineUseCase {
	return &MedicineUseCase{repo: repo, log: log}
}

// List lista el inventario.
func (uc *MedicineUseCase) List(ctx context.Context, s access.Session) ([]dto.MedicineResponse, error) {
	if err := access.CheckView(s, access.SectionMedicines); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MedicineResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMedicineResponse(m))
	}
	return out, nil
}

// Create da de alta un lote.
func (uc *MedicineUseCase) Create(ctx context.Context, s access.Session, in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if err := access.Check(s, access.SectionMedicines, access.ActionAdd); err != nil {
		return nil, err
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	exp, err := optionalDate("expiry_date", in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	m := &entity.Medicine{
		BatchNo:       strings.TrimSpace(in.BatchNo),
		DrugName:      strings.TrimSpace(in.DrugName),
		ExpiryDate:    exp,
		StockQuantity: in.StockQuantity,
		Price:         in.Price,
		SupplierID:    strings.TrimSpace(in.SupplierID),
		Type:          strings.TrimSpace(in.Type),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("batch_no", m.BatchNo).Str("drug_name", m.DrugName).Msg("lote creado")
	out := toMedicineResponse(m)
	return &out, nil
}

// Update edita vencimiento, stock, precio, proveedor y tipo de un lote existente.
func (uc *MedicineUseCase) Update(ctx context.Context, s access.Session, batchNo, drugName string, in dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	if err := access.Check(s, access.SectionMedicines, access.ActionEdit); err != nil {
		return nil, err
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	exp, err := optionalDate("expiry_date", in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	m := &entity.Medicine{
		BatchNo:       strings.TrimSpace(batchNo),
		DrugName:      strings.TrimSpace(drugName),
		ExpiryDate:    exp,
		StockQuantity: in.StockQuantity,
		Price:         in.Price,
		SupplierID:    strings.TrimSpace(in.SupplierID),
		Type:          strings.TrimSpace(in.Type),
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("batch_no", m.BatchNo).Str("drug_name", m.DrugName).Msg("lote actualizado")
	out := toMedicineResponse(m)
	return &out, nil
}

// Delete da de baja un lote.
func (uc *MedicineUseCase) Delete(ctx context.Context, s access.Session, batchNo, drugName string) error {
	if err := access.Check(s, access.SectionMedicines, access.ActionDelete); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, strings.TrimSpace(batchNo), strings.TrimSpace(drugName)); err != nil {
		return err
	}
	uc.log.Session(s.ID, s.UserID).Info().Str("batch_no", batchNo).Str("drug_name", drugName).Msg("lote eliminado")
	return nil
}

func toMedicineResponse(m *entity.Medicine) dto.MedicineResponse {
	return dto.MedicineResponse{
		BatchNo:       m.BatchNo,
		DrugName:      m.DrugName,
		ExpiryDate:    formatDate(m.ExpiryDate),
		StockQuantity: m.StockQuantity,
		Price:         m.Price,
		SupplierID:    m.SupplierID,
		Type:          m.Type,
	}
}
