package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/infrastructure/apiclient"
)

func TestResolveError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "correo es obligatorio"), http.StatusBadRequest, "correo es obligatorio"},
		{"api error relays status and text", fmt.Errorf("get /x: %w", &apiclient.APIError{StatusCode: http.StatusConflict, Errors: []string{"ya inscrito"}}), http.StatusConflict, "ya inscrito"},
		{"stale view", domain.ErrStaleView, http.StatusConflict, "superseded"},
		{"not authenticated", domain.ErrNotAuthenticated, http.StatusUnauthorized, "sesión no iniciada"},
		{"invalid id", fmt.Errorf("x: %w", domain.ErrInvalidID), http.StatusBadRequest, "identificador inválido"},
		{"invalid auth response", domain.ErrInvalidAuthResponse, http.StatusBadGateway, domain.ErrInvalidAuthResponse.Error()},
		{"transport", fmt.Errorf("GET /x: %w: %w", apiclient.ErrTransport, errors.New("dial tcp")), http.StatusBadGateway, apiclient.DefaultMessage},
		{"deadline", context.DeadlineExceeded, http.StatusBadGateway, apiclient.DefaultMessage},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, apiclient.DefaultMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())

			code, msg := resolveError(tt.err, zerolog.Nop(), c)
			if code != tt.code || msg != tt.msg {
				t.Fatalf("expected %d %q, got %d %q", tt.code, tt.msg, code, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusAccepted || rec.Body.Len() != 0 {
		t.Fatalf("committed response was rewritten: %d %s", rec.Code, rec.Body.String())
	}
}
