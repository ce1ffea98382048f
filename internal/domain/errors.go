package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrCategoryNotEmpty = errors.New("la categoría todavía tiene productos asociados")
	ErrImageProcessing  = errors.New("no se pudo procesar la imagen")
	ErrReconciliation   = errors.New("no se pudo actualizar el set de items de la categoría")
)
