package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quala/sucursales_api/internal/apperrors"
	"github.com/quala/sucursales_api/internal/dto"
)

var fixedNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func validCreate() dto.CreateSucursalRequest {
	return dto.CreateSucursalRequest{
		Codigo:         100,
		Descripcion:    "Main",
		Direccion:      "St 1",
		Identificacion: "ID1",
		FechaCreacion:  dto.NewDate(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)),
		MonedaID:       1,
	}
}

func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	return verr.Messages
}

func TestStruct_ValidCreate(t *testing.T) {
	assert.NoError(t, newTestValidator().Struct(validCreate()))
}

func TestStruct_CollectsEveryViolationInFieldOrder(t *testing.T) {
	req := dto.CreateSucursalRequest{
		Codigo:         0,
		Descripcion:    "   ",
		Direccion:      strings.Repeat("a", 251),
		Identificacion: "",
		MonedaID:       -1,
	}

	msgs := messagesOf(t, newTestValidator().Struct(req))

	assert.Equal(t, []string{
		"El código es requerido",
		"La descripción es requerida",
		"La dirección no puede exceder 250 caracteres",
		"La identificación es requerida",
		"La fecha de creación es requerida",
		"Debe seleccionar una moneda válida",
	}, msgs)
}

func TestStruct_PastCreationDate(t *testing.T) {
	req := validCreate()
	req.FechaCreacion = dto.NewDate(fixedNow.AddDate(0, 0, -1))

	msgs := messagesOf(t, newTestValidator().Struct(req))
	assert.Equal(t, []string{"La fecha de creación no puede ser anterior a la fecha actual"}, msgs)
}

func TestStruct_LoginRules(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.Struct(dto.LoginRequest{Usuario: "admin", Password: "secreto"}))

	msgs := messagesOf(t, v.Struct(dto.LoginRequest{Usuario: strings.Repeat("u", 51), Password: "123"}))
	assert.Equal(t, []string{
		"El usuario no puede exceder 50 caracteres",
		"La contraseña debe tener al menos 6 caracteres",
	}, msgs)
}

func TestStruct_UpdateRequiresID(t *testing.T) {
	req := dto.UpdateSucursalRequest{
		Codigo:         1,
		Descripcion:    "d",
		Direccion:      "d",
		Identificacion: "i",
		MonedaID:       1,
	}
	msgs := messagesOf(t, newTestValidator().Struct(req))
	assert.Equal(t, []string{"El ID es requerido"}, msgs)
}

func TestIsNotPast(t *testing.T) {
	now := time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC)

	assert.True(t, IsNotPast(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), now), "today")
	assert.True(t, IsNotPast(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), now), "tomorrow")
	assert.False(t, IsNotPast(time.Date(2026, 10, 14, 23, 59, 59, 0, time.UTC), now), "yesterday")
}

func TestStruct_OneMessagePerField(t *testing.T) {
	req := validCreate()
	req.MonedaID = 0

	msgs := messagesOf(t, newTestValidator().Struct(req))
	assert.Equal(t, []string{"La moneda es requerida"}, msgs)
}
