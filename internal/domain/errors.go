package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son síncronos e inmediatos: el núcleo no reintenta ni se recupera solo;
// la recuperación, si existe, es asunto de la capa que llama.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)
