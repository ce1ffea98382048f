package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate chequea las etiquetas `validate` de un request una sola vez en el
// borde de la aplicación. Devuelve domain.ErrInvalidInput envuelto con los
// campos que fallaron.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(fields, ", "))
}
