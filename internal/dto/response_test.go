package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess_HasNoErrors(t *testing.T) {
	resp := Success([]int{1, 2}, "Sucursales obtenidas exitosamente")

	assert.True(t, resp.Success)
	assert.Equal(t, "Sucursales obtenidas exitosamente", resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, []int{1, 2}, *resp.Data)
	assert.Nil(t, resp.Errors)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Sucursales obtenidas exitosamente","data":[1,2]}`, string(raw))
}

func TestSuccess_DefaultMessage(t *testing.T) {
	resp := Success(true, "")
	assert.Equal(t, DefaultSuccessMessage, resp.Message)
}

func TestError_HasNoData(t *testing.T) {
	resp := Error[SucursalResponse]("Sucursal no encontrada")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.NotNil(t, resp.Errors)
	assert.Empty(t, resp.Errors)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Sucursal no encontrada"}`, string(raw))
}

func TestValidationError_KeepsOrder(t *testing.T) {
	errs := []string{"uno", "dos", "tres"}
	resp := ValidationError[any](errs)

	assert.False(t, resp.Success)
	assert.Equal(t, ValidationErrorMessage, resp.Message)
	assert.Equal(t, errs, resp.Errors)
	assert.Nil(t, resp.Data)
}
