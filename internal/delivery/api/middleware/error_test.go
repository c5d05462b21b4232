package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name:       "client error keeps details",
			err:        errors.Wrap(domainerrors.ErrInvalidFilter.WithDetails("maxCalories must not be negative"), "filter"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "maxCalories must not be negative",
		},
		{
			name:       "query failure is logged and hidden",
			err:        domainerrors.NewQueryFailure(errors.New("database is locked"), "insert recipe"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "QUERY_FAILED",
			wantLogged: true,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   "HTTP_ERROR",
		},
		{
			name:       "unclassified error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "database is locked")
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}
