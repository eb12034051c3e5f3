package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrEmailExists   = errors.New("el email ya está registrado")
	ErrInvalidMonth  = errors.New("mes inválido, formato esperado YYYY-MM")
	ErrInvalidStatus = errors.New("estado de transferencia inválido")
)
