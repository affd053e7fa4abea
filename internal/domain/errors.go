package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrCategoryNotFound    = errors.New("categoría no encontrada")
	ErrDuplicateName       = errors.New("ya existe una categoría con ese nombre")
	ErrHasDependents       = errors.New("la categoría tiene productos asociados")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrInvalidQuantity     = errors.New("cantidad inválida")
	ErrInvalidMovementKind = errors.New("tipo de movimiento inválido")
	ErrInvalidInput        = errors.New("entrada inválida")
)
