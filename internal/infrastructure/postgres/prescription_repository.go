package postgres

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.PrescriptionRepository = (*PrescriptionRepo)(nil)

// PrescriptionRepo implementación del puerto PrescriptionRepository sobre PostgreSQL.
type PrescriptionRepo struct {
	q Querier
}

// NewPrescriptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPrescriptionRepository(q Querier) *PrescriptionRepo {
	return &PrescriptionRepo{q: q}
}

// Create inserta la receta.
func (r *PrescriptionRepo) Create(ctx context.Context, p *entity.Prescription) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO prescription (pres_id, cid, doc_id, pres_date, order_id) VALUES ($1, $2, $3, $4, $5)`,
		p.PresID, p.CID, nullIfEmpty(p.DocID), dateOnly(p.PresDate), nullIfEmpty(p.OrderID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return storeErr("insert prescription", err)
	}
	return nil
}

// List lista las recetas por PresID.
func (r *PrescriptionRepo) List(ctx context.Context) ([]*entity.Prescription, error) {
	rows, err := r.q.Query(ctx, `SELECT pres_id, cid, doc_id, pres_date, order_id FROM prescription ORDER BY pres_id`)
	if err != nil {
		return nil, storeErr("list prescriptions", err)
	}
	defer rows.Close()
	list := []*entity.Prescription{}
	for rows.Next() {
		var p entity.Prescription
		var docID, orderID *string
		if err := rows.Scan(&p.PresID, &p.CID, &docID, &p.PresDate, &orderID); err != nil {
			return nil, storeErr("scan prescription", err)
		}
		p.DocID = derefString(docID)
		p.OrderID = derefString(orderID)
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list prescriptions", err)
	}
	return list, nil
}

// Delete elimina la receta.
func (r *PrescriptionRepo) Delete(ctx context.Context, presID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM prescription WHERE pres_id = $1`, presID)
	if err != nil {
		return storeErr("delete prescription", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CustomerExists comprueba la referencia a customer.
func (r *PrescriptionRepo) CustomerExists(ctx context.Context, cid string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customer WHERE cid = $1)`, cid)
}

// OrderExists comprueba la referencia a orders.
func (r *PrescriptionRepo) OrderExists(ctx context.Context, orderID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = $1)`, orderID)
}

func (r *PrescriptionRepo) exists(ctx context.Context, query, id string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, query, id).Scan(&ok); err != nil {
		return false, storeErr("exists", err)
	}
	return ok, nil
}
