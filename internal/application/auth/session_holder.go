package auth

import (
	"sync"

	"github.com/jhoicas/farmacia-api/internal/domain/access"
)

// SessionHolder guarda en memoria la única sesión de la ventana y el estado transitorio
// asociado a ella (resultados de consultas, último reporte). No persiste nada.
type SessionHolder struct {
	mu      sync.RWMutex
	current *access.Session
	stash   map[string]any
}

// NewSessionHolder construye el holder vacío (pantalla de login).
func NewSessionHolder() *SessionHolder {
	return &SessionHolder{stash: map[string]any{}}
}

// Current devuelve la sesión activa.
func (h *SessionHolder) Current() (access.Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return access.Session{}, false
	}
	return *h.current, true
}

// begin instala la sesión si no hay otra activa.
func (h *SessionHolder) begin(s access.Session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current != nil {
		return false
	}
	h.current = &s
	h.stash = map[string]any{}
	return true
}

// end descarta la sesión y todo el estado transitorio. Devuelve la sesión cerrada.
func (h *SessionHolder) end() (access.Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return access.Session{}, false
	}
	s := *h.current
	h.current = nil
	h.stash = map[string]any{}
	return s, true
}

// Stash guarda estado transitorio de la sesión sessionID. Si esa sesión ya no es la
// activa (logout o nuevo login entre medio) no guarda nada y devuelve false.
func (h *SessionHolder) Stash(sessionID, key string, v any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil || h.current.ID != sessionID {
		return false
	}
	h.stash[key] = v
	return true
}

// Stashed lee estado transitorio de la sesión sessionID.
func (h *SessionHolder) Stashed(sessionID, key string) (any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil || h.current.ID != sessionID {
		return nil, false
	}
	v, ok := h.stash[key]
	return v, ok
}
