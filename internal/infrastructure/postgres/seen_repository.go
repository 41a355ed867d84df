package postgres

import (
	"context"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.SeenRepository = (*SeenRepo)(nil)

// SeenRepo implementación del puerto SeenRepository sobre la tabla is_notified.
type SeenRepo struct {
	q Querier
}

// NewSeenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSeenRepository(q Querier) *SeenRepo {
	return &SeenRepo{q: q}
}

// Exists indica si el par (emp_id, nid) ya está registrado.
func (r *SeenRepo) Exists(ctx context.Context, empID, nid string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM is_notified WHERE nid = $1 AND emp_id = $2)`, nid, empID,
	).Scan(&exists)
	if err != nil {
		return false, storeErr("seen exists", err)
	}
	return exists, nil
}

// Insert registra el par. La restricción única del par devuelve domain.ErrDuplicate.
func (r *SeenRepo) Insert(ctx context.Context, rec entity.SeenRecord) error {
	_, err := r.q.Exec(ctx, `INSERT INTO is_notified (emp_id, nid) VALUES ($1, $2)`, rec.EmpID, rec.NID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return storeErr("insert seen", err)
	}
	return nil
}

// List quién vio qué notificación, por NID descendente.
func (r *SeenRepo) List(ctx context.Context) ([]entity.SeenEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT i.emp_id, e.ename, i.nid, n.type, n.message
		FROM is_notified i
		LEFT JOIN employee e ON i.emp_id = e.emp_id
		LEFT JOIN notification n ON i.nid = n.nid
		ORDER BY i.nid DESC, i.emp_id`)
	if err != nil {
		return nil, storeErr("list seen", err)
	}
	defer rows.Close()
	out := []entity.SeenEntry{}
	for rows.Next() {
		var s entity.SeenEntry
		var name, typ, msg *string
		if err := rows.Scan(&s.EmpID, &name, &s.NID, &typ, &msg); err != nil {
			return nil, storeErr("scan seen", err)
		}
		s.EmployeeName = derefString(name)
		s.Type = derefString(typ)
		s.Message = derefString(msg)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list seen", err)
	}
	return out, nil
}
