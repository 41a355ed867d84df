package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create inserta la notificación con el NID ya calculado.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO notification (nid, type, message) VALUES ($1, $2, $3)`,
		n.NID, nullIfEmpty(n.Type), n.Message,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert notification", err)
	}
	return nil
}

// GetByID obtiene una notificación. Devuelve nil, nil si no existe.
func (r *NotificationRepo) GetByID(ctx context.Context, nid string) (*entity.Notification, error) {
	var n entity.Notification
	var typ *string
	err := r.q.QueryRow(ctx, `SELECT nid, type, message FROM notification WHERE nid = $1`, nid).
		Scan(&n.NID, &typ, &n.Message)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get notification", err)
	}
	n.Type = derefString(typ)
	return &n, nil
}

// Delete elimina una notificación (las marcas de visto se borran en cascada).
func (r *NotificationRepo) Delete(ctx context.Context, nid string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM notification WHERE nid = $1`, nid)
	if err != nil {
		return storeErr("delete notification", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List ordena por NID descendente.
func (r *NotificationRepo) List(ctx context.Context) ([]*entity.Notification, error) {
	rows, err := r.q.Query(ctx, `SELECT nid, type, message FROM notification ORDER BY nid DESC`)
	if err != nil {
		return nil, storeErr("list notifications", err)
	}
	defer rows.Close()
	list := []*entity.Notification{}
	for rows.Next() {
		var n entity.Notification
		var typ *string
		if err := rows.Scan(&n.NID, &typ, &n.Message); err != nil {
			return nil, storeErr("scan notification", err)
		}
		n.Type = derefString(typ)
		list = append(list, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list notifications", err)
	}
	return list, nil
}

// LastID primer NID en orden descendente; "" si la tabla está vacía.
func (r *NotificationRepo) LastID(ctx context.Context) (string, error) {
	var nid *string
	err := r.q.QueryRow(ctx, `SELECT nid FROM notification ORDER BY nid DESC LIMIT 1`).Scan(&nid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", storeErr("last notification id", err)
	}
	return derefString(nid), nil
}

// CountUnseen notificaciones sin ninguna marca en is_notified.
func (r *NotificationRepo) CountUnseen(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM notification n
		WHERE NOT EXISTS (SELECT 1 FROM is_notified i WHERE i.nid = n.nid)`).Scan(&n)
	if err != nil {
		return 0, storeErr("count unseen notifications", err)
	}
	return n, nil
}
