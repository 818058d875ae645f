package domain

import "errors"

// Errores de dominio (sin dependencias externas). La ausencia de un recurso
// no es un error: los repos la reportan como (nil, nil).
var (
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrUnavailable envuelve los fallos del backend de almacenamiento, para
	// distinguirlos de la ausencia en los callers.
	ErrUnavailable = errors.New("almacenamiento no disponible")
)
