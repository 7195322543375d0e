package apiclient

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Resolution(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"errors list wins", parseError(400, []byte(`{"errors":["El correo ya existe","otro"],"message":"Bad"}`)), "El correo ya existe"},
		{"non-string entry", parseError(400, []byte(`{"errors":[42]}`)), "42"},
		{"message next", parseError(400, []byte(`{"errors":[],"message":"Datos inválidos"}`)), "Datos inválidos"},
		{"status text", parseError(404, []byte(`not json`)), "Not Found"},
		{"wrapped api error", fmt.Errorf("update: %w", parseError(409, []byte(`{"message":"Cupo lleno"}`))), "Cupo lleno"},
		{"plain error", errors.New("boom"), "boom"},
		{"nil error", nil, DefaultMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Message(tc.err, ""))
		})
	}
}

func TestMessage_CustomFallback(t *testing.T) {
	assert.Equal(t, "No se pudo cargar", Message(nil, "No se pudo cargar"))
}

func TestAPIError_ErrorString(t *testing.T) {
	assert.Equal(t, "request failed with status code 500", parseError(500, nil).Error())
	assert.Equal(t, "x", (&APIError{StatusCode: 400, Message: "x"}).Error())
}
