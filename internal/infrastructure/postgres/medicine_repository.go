package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/expiry"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

const medicineColumns = `batch_no, drug_name, expiry_date, stock_quantity, price, sup_id, type`

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL.
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

func scanMedicine(row pgx.Row) (*entity.Medicine, error) {
	var m entity.Medicine
	var supID, typ *string
	if err := row.Scan(&m.BatchNo, &m.DrugName, &m.ExpiryDate, &m.StockQuantity, &m.Price, &supID, &typ); err != nil {
		return nil, err
	}
	m.SupplierID = derefString(supID)
	m.Type = derefString(typ)
	return &m, nil
}

// Create persiste un lote nuevo.
func (r *MedicineRepo) Create(ctx context.Context, m *entity.Medicine) error {
	query := `
		INSERT INTO medicine (` + medicineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.BatchNo, m.DrugName, dateOnly(m.ExpiryDate), m.StockQuantity, m.Price, nullIfEmpty(m.SupplierID), nullIfEmpty(m.Type),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput // proveedor inexistente
		}
		return storeErr("insert medicine", err)
	}
	return nil
}

// Get obtiene un lote por (BatchNo, DrugName). Devuelve nil, nil si no existe.
func (r *MedicineRepo) Get(ctx context.Context, batchNo, drugName string) (*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicine WHERE batch_no = $1 AND drug_name = $2`
	m, err := scanMedicine(r.q.QueryRow(ctx, query, batchNo, drugName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get medicine", err)
	}
	return m, nil
}

// Update actualiza vencimiento, stock, precio, proveedor y tipo.
func (r *MedicineRepo) Update(ctx context.Context, m *entity.Medicine) error {
	query := `
		UPDATE medicine SET expiry_date = $3, stock_quantity = $4, price = $5, sup_id = $6, type = $7
		WHERE batch_no = $1 AND drug_name = $2`
	cmd, err := r.q.Exec(ctx, query,
		m.BatchNo, m.DrugName, dateOnly(m.ExpiryDate), m.StockQuantity, m.Price, nullIfEmpty(m.SupplierID), nullIfEmpty(m.Type),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return storeErr("update medicine", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lote.
func (r *MedicineRepo) Delete(ctx context.Context, batchNo, drugName string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM medicine WHERE batch_no = $1 AND drug_name = $2`, batchNo, drugName)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return storeErr("delete medicine", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todo el inventario.
func (r *MedicineRepo) List(ctx context.Context) ([]*entity.Medicine, error) {
	rows, err := r.q.Query(ctx, `SELECT `+medicineColumns+` FROM medicine ORDER BY batch_no, drug_name`)
	if err != nil {
		return nil, storeErr("list medicines", err)
	}
	defer rows.Close()
	list := []*entity.Medicine{}
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, storeErr("scan medicine", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list medicines", err)
	}
	return list, nil
}

// expirySnapshotSQL formatea el vencimiento con to_char para no depender del
// DateStyle de la sesión.
const expirySnapshotSQL = `SELECT batch_no, drug_name, to_char(expiry_date, 'YYYY-MM-DD'), stock_quantity FROM medicine`

// ExpirySnapshot lee el vencimiento como texto; la clasificación lo normaliza.
func (r *MedicineRepo) ExpirySnapshot(ctx context.Context) ([]expiry.Record, error) {
	rows, err := r.q.Query(ctx, expirySnapshotSQL)
	if err != nil {
		return nil, storeErr("expiry snapshot", err)
	}
	defer rows.Close()
	out := []expiry.Record{}
	for rows.Next() {
		var rec expiry.Record
		if err := rows.Scan(&rec.BatchNo, &rec.DrugName, &rec.Expiry, &rec.Quantity); err != nil {
			return nil, storeErr("scan expiry snapshot", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("expiry snapshot", err)
	}
	return out, nil
}

// TotalStockValue suma stock_quantity * price de todo el inventario.
func (r *MedicineRepo) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(stock_quantity * price), 0) FROM medicine`).Scan(&total)
	if err != nil {
		return decimal.Zero, storeErr("total stock value", err)
	}
	return total, nil
}
