package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/infrastructure/apiclient"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain and upstream errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, validation, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// The district API answered with an error: relay its status and text.
	if apiErr, ok := apiclient.AsAPIError(err); ok {
		return apiErr.StatusCode, apiclient.Message(apiErr, "")
	}

	switch {
	case errors.Is(err, domain.ErrStaleView):
		return http.StatusConflict, "superseded"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "sesión no iniciada"
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "identificador inválido"
	case errors.Is(err, domain.ErrInvalidAuthResponse):
		return http.StatusBadGateway, domain.ErrInvalidAuthResponse.Error()
	case errors.Is(err, apiclient.ErrTransport), errors.Is(err, context.DeadlineExceeded):
		log.Warn().Err(err).Str("path", c.Path()).Msg("district api unreachable")
		return http.StatusBadGateway, apiclient.DefaultMessage
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, apiclient.DefaultMessage
}
