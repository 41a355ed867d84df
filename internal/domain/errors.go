package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrPermissionDenied   = errors.New("permiso denegado")
	ErrStoreUnavailable   = errors.New("almacén de datos no disponible")

	// ErrUnrecognizedRole: las credenciales son válidas pero el rol no tiene perfil de privilegios.
	// Requiere intervención del administrador; nunca se asigna un perfil por defecto.
	ErrUnrecognizedRole = errors.New("rol no reconocido")

	ErrSessionActive = errors.New("ya existe una sesión activa")
	ErrNoSession     = errors.New("no hay sesión activa")

	// ErrSequenceExhausted: el espacio N001..N999 de identificadores de notificación se agotó.
	ErrSequenceExhausted = errors.New("secuencia de notificaciones agotada")
)
