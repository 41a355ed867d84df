package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/expiry"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo inventario en memoria.
type MedicineRepo struct {
	s *Store
}

// NewMedicineRepository construye el repositorio sobre el store.
func NewMedicineRepository(s *Store) *MedicineRepo {
	return &MedicineRepo{s: s}
}

func lessMedicine(a, b medicineKey) bool {
	if a.batchNo != b.batchNo {
		return a.batchNo < b.batchNo
	}
	return a.drugName < b.drugName
}

func (r *MedicineRepo) Create(_ context.Context, m *entity.Medicine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("insert medicine"); err != nil {
		return err
	}
	k := medicineKey{m.BatchNo, m.DrugName}
	if _, ok := r.s.medicines[k]; ok {
		return domain.ErrDuplicate
	}
	r.s.medicines[k] = *m
	r.s.mutations++
	return nil
}

func (r *MedicineRepo) Get(_ context.Context, batchNo, drugName string) (*entity.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("get medicine"); err != nil {
		return nil, err
	}
	m, ok := r.s.medicines[medicineKey{batchNo, drugName}]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MedicineRepo) Update(_ context.Context, m *entity.Medicine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("update medicine"); err != nil {
		return err
	}
	k := medicineKey{m.BatchNo, m.DrugName}
	if _, ok := r.s.medicines[k]; !ok {
		return domain.ErrNotFound
	}
	r.s.medicines[k] = *m
	delete(r.s.rawExpiry, k)
	r.s.mutations++
	return nil
}

func (r *MedicineRepo) Delete(_ context.Context, batchNo, drugName string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("delete medicine"); err != nil {
		return err
	}
	k := medicineKey{batchNo, drugName}
	if _, ok := r.s.medicines[k]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.medicines, k)
	delete(r.s.rawExpiry, k)
	r.s.mutations++
	return nil
}

func (r *MedicineRepo) List(_ context.Context) ([]*entity.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("list medicines"); err != nil {
		return nil, err
	}
	keys := sortedKeys(r.s.medicines, lessMedicine)
	out := make([]*entity.Medicine, 0, len(keys))
	for _, k := range keys {
		m := r.s.medicines[k]
		out = append(out, &m)
	}
	return out, nil
}

// ExpirySnapshot entrega las fechas como texto ISO, o el texto forzado con SetRawExpiry.
func (r *MedicineRepo) ExpirySnapshot(_ context.Context) ([]expiry.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("expiry snapshot"); err != nil {
		return nil, err
	}
	keys := sortedKeys(r.s.medicines, lessMedicine)
	out := make([]expiry.Record, 0, len(keys))
	for _, k := range keys {
		m := r.s.medicines[k]
		rec := expiry.Record{BatchNo: m.BatchNo, DrugName: m.DrugName, Quantity: m.StockQuantity}
		if raw, forced := r.s.rawExpiry[k]; forced {
			rec.Expiry = raw
		} else if m.ExpiryDate != nil {
			text := m.ExpiryDate.Format("2006-01-02")
			rec.Expiry = &text
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *MedicineRepo) TotalStockValue(_ context.Context) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("total stock value"); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, m := range r.s.medicines {
		total = total.Add(m.Price.Mul(decimal.NewFromInt(int64(m.StockQuantity))))
	}
	return total, nil
}
