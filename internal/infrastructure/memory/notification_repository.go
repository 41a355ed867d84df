package memory

import (
	"context"
	"maps"

	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/internal/domain/entity"
	"github.com/jhoicas/farmacia-api/internal/domain/repository"
)

var (
	_ repository.NotificationRepository = (*NotificationRepo)(nil)
	_ repository.NotificationTxRunner   = (*TxRunner)(nil)
	_ repository.SeenRepository         = (*SeenRepo)(nil)
)

// NotificationRepo notificaciones en memoria.
type NotificationRepo struct {
	s *Store
}

// NewNotificationRepository construye el repositorio sobre el store.
func NewNotificationRepository(s *Store) *NotificationRepo {
	return &NotificationRepo{s: s}
}

func (r *NotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("insert notification"); err != nil {
		return err
	}
	if _, ok := r.s.notifications[n.NID]; ok {
		return domain.ErrDuplicate
	}
	r.s.notifications[n.NID] = *n
	r.s.mutations++
	return nil
}

func (r *NotificationRepo) GetByID(_ context.Context, nid string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("get notification"); err != nil {
		return nil, err
	}
	n, ok := r.s.notifications[nid]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

// Delete borra también las marcas de visto (como ON DELETE CASCADE).
func (r *NotificationRepo) Delete(_ context.Context, nid string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("delete notification"); err != nil {
		return err
	}
	if _, ok := r.s.notifications[nid]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.notifications, nid)
	for k := range r.s.seen {
		if k.nid == nid {
			delete(r.s.seen, k)
		}
	}
	r.s.mutations++
	return nil
}

func (r *NotificationRepo) List(_ context.Context) ([]*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("list notifications"); err != nil {
		return nil, err
	}
	keys := sortedKeys(r.s.notifications, func(a, b string) bool { return a > b })
	out := make([]*entity.Notification, 0, len(keys))
	for _, k := range keys {
		n := r.s.notifications[k]
		out = append(out, &n)
	}
	return out, nil
}

func (r *NotificationRepo) LastID(_ context.Context) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("last notification id"); err != nil {
		return "", err
	}
	last := ""
	for nid := range r.s.notifications {
		if nid > last {
			last = nid
		}
	}
	return last, nil
}

func (r *NotificationRepo) CountUnseen(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("count unseen notifications"); err != nil {
		return 0, err
	}
	seen := map[string]bool{}
	for k := range r.s.seen {
		seen[k.nid] = true
	}
	n := 0
	for nid := range r.s.notifications {
		if !seen[nid] {
			n++
		}
	}
	return n, nil
}

// TxRunner serializa las altas de notificación y deshace los cambios si fn falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (t *TxRunner) RunNotification(ctx context.Context, fn func(repo repository.NotificationRepository) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	t.s.mu.Lock()
	if err := t.s.check("begin transaction"); err != nil {
		t.s.mu.Unlock()
		return err
	}
	snapshot := maps.Clone(t.s.notifications)
	mutations := t.s.mutations
	t.s.mu.Unlock()

	if err := fn(NewNotificationRepository(t.s)); err != nil {
		t.s.mu.Lock()
		t.s.notifications = snapshot
		t.s.mutations = mutations
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// SeenRepo marcas de visto en memoria.
type SeenRepo struct {
	s *Store
}

// NewSeenRepository construye el repositorio sobre el store.
func NewSeenRepository(s *Store) *SeenRepo {
	return &SeenRepo{s: s}
}

func (r *SeenRepo) Exists(_ context.Context, empID, nid string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("seen exists"); err != nil {
		return false, err
	}
	_, ok := r.s.seen[seenKey{empID, nid}]
	return ok, nil
}

func (r *SeenRepo) Insert(_ context.Context, rec entity.SeenRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("insert seen"); err != nil {
		return err
	}
	if _, ok := r.s.notifications[rec.NID]; !ok {
		return domain.ErrNotFound
	}
	k := seenKey{rec.EmpID, rec.NID}
	if _, ok := r.s.seen[k]; ok {
		return domain.ErrDuplicate
	}
	r.s.seen[k] = struct{}{}
	r.s.mutations++
	return nil
}

func (r *SeenRepo) List(_ context.Context) ([]entity.SeenEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check("list seen"); err != nil {
		return nil, err
	}
	keys := sortedKeys(r.s.seen, func(a, b seenKey) bool {
		if a.nid != b.nid {
			return a.nid > b.nid
		}
		return a.empID < b.empID
	})
	out := make([]entity.SeenEntry, 0, len(keys))
	for _, k := range keys {
		e := entity.SeenEntry{EmpID: k.empID, NID: k.nid}
		if emp, ok := r.s.employees[k.empID]; ok {
			e.EmployeeName = emp.Name
		}
		if n, ok := r.s.notifications[k.nid]; ok {
			e.Type, e.Message = n.Type, n.Message
		}
		out = append(out, e)
	}
	return out, nil
}
