package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// messages maps "<StructField>.<tag>" to the user-facing message for that violation.
var messages = map[string]string{
	"ID.required": "El ID es requerido",
	"ID.gt":       "El ID debe ser mayor a 0",

	"Codigo.required": "El código es requerido",
	"Codigo.gt":       "El código debe ser mayor a 0",

	"Descripcion.required": "La descripción es requerida",
	"Descripcion.notblank": "La descripción es requerida",
	"Descripcion.max":      "La descripción no puede exceder 250 caracteres",

	"Direccion.required": "La dirección es requerida",
	"Direccion.notblank": "La dirección es requerida",
	"Direccion.max":      "La dirección no puede exceder 250 caracteres",

	"Identificacion.required": "La identificación es requerida",
	"Identificacion.notblank": "La identificación es requerida",
	"Identificacion.max":      "La identificación no puede exceder 50 caracteres",

	"FechaCreacion.required": "La fecha de creación es requerida",
	"FechaCreacion.notpast":  "La fecha de creación no puede ser anterior a la fecha actual",

	"MonedaID.required": "La moneda es requerida",
	"MonedaID.gt":       "Debe seleccionar una moneda válida",

	"Usuario.required": "El usuario es requerido",
	"Usuario.notblank": "El usuario es requerido",
	"Usuario.max":      "El usuario no puede exceder 50 caracteres",

	"Password.required": "La contraseña es requerida",
	"Password.min":      "La contraseña debe tener al menos 6 caracteres",
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("El campo %s no cumple la regla %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("El campo %s no cumple la regla %s", fe.Field(), fe.Tag())
}
