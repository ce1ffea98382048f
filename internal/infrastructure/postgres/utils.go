package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que este esquema puede producir en escrituras: nombre de
// producto / email de usuario únicos (23505) y category_id hacia categories
// (23503).
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de clave
// foránea (referencia a una fila inexistente).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}
