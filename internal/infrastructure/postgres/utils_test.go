package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClasificacionDeCodigosPg(t *testing.T) {
	unique := fmt.Errorf("insert product: %w", &pgconn.PgError{Code: codeUniqueViolation})
	assert.True(t, isUniqueViolation(unique), "23505 envuelto debe detectarse")
	assert.False(t, isForeignKeyViolation(unique))

	fk := fmt.Errorf("insert product: %w", &pgconn.PgError{Code: codeForeignKeyViolation})
	assert.True(t, isForeignKeyViolation(fk), "23503 envuelto debe detectarse")
	assert.False(t, isUniqueViolation(fk))
}

func TestClasificacion_ErroresNoPg(t *testing.T) {
	err := errors.New("conexión cerrada")
	assert.False(t, isUniqueViolation(err))
	assert.False(t, isForeignKeyViolation(err))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isForeignKeyViolation(nil))
}
