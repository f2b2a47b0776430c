package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quiz-deck/internal/domain"
	"quiz-deck/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger_LogsResponseStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"session not found", domain.NewSessionNotFoundError("01HZY7Q9V6N3X8T2J4K5M6P7R8"), http.StatusNotFound},
		{"invalid phase", domain.NewInvalidPhaseError("s", domain.PhaseResults, "answer"), http.StatusConflict},
		{"validation errors", domain.ValidationErrors{domain.NewMissingFieldError("choice")}, http.StatusBadRequest},
		{"invalid count", &domain.InvalidCountError{Requested: 6, Available: 5}, http.StatusBadRequest},
		{"internal", domain.NewInternalError("boom", nil), http.StatusInternalServerError},
		{"fiber error", fiber.NewError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"unknown", errors.New("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			restore := logger.ReplaceGlobal(zap.New(core))
			defer restore()

			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
			app.Use(RequestLogger())
			app.Get("/", func(c *fiber.Ctx) error {
				if tt.err != nil {
					return tt.err
				}
				return c.SendString("ok")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			entries := logs.FilterMessage("HTTP request").All()
			require.Len(t, entries, 1)
			assert.Equal(t, int64(tt.status), entries[0].ContextMap()["status"])
		})
	}
}

func TestStatusForError_MatchesErrorHandler(t *testing.T) {
	errs := []error{
		domain.NewPoolNotFoundError("p"),
		domain.NewUnsupportedFileError("a.csv"),
		domain.ValidationErrors{domain.NewInvalidFormatError("pool_id", "x")},
		&domain.InvalidCountError{Requested: -1, Available: 3},
		fiber.ErrMethodNotAllowed,
		errors.New("plain"),
	}
	for _, e := range errs {
		resp, err := appReturning(e).Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, resp.StatusCode, StatusForError(e), "%v", e)
	}
}
