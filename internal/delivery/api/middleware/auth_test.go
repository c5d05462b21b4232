package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"
	mockservice "recipefinder/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthEcho(t *testing.T, identity service.IdentityProvider) *echo.Echo {
	t.Helper()

	m := NewAuthMiddleware(identity)
	e := echo.New()
	e.GET("/optional", func(c echo.Context) error {
		userID, _ := GetUserID(c)

		return c.String(http.StatusOK, "caller="+userID)
	}, m.Identify)
	e.GET("/required", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, m.Identify, m.RequireUser)

	return e
}

func serve(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestIdentify_Anonymous(t *testing.T) {
	e := newAuthEcho(t, mockservice.NewMockIdentityProvider(t))

	rec := serve(e, "/optional", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "caller=", rec.Body.String())
}

func TestIdentify_ValidToken(t *testing.T) {
	identity := mockservice.NewMockIdentityProvider(t)
	identity.EXPECT().Verify(mock.Anything, "good-token").Return(&service.Identity{UserID: "user-1"}, nil).Twice()
	e := newAuthEcho(t, identity)

	rec := serve(e, "/optional", "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "caller=user-1", rec.Body.String())

	rec = serve(e, "/required", "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentify_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		wantCode      string
	}{
		{name: "basic scheme", authorization: "Basic dXNlcjpwdw==", wantCode: "INVALID_TOKEN"},
		{name: "empty bearer", authorization: "Bearer   ", wantCode: "INVALID_TOKEN"},
		{name: "rejected token", authorization: "Bearer bad", wantCode: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := mockservice.NewMockIdentityProvider(t)
			identity.EXPECT().Verify(mock.Anything, "bad").Return(nil, domainerrors.ErrInvalidToken).Maybe()
			e := newAuthEcho(t, identity)

			rec := serve(e, "/optional", tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestRequireUser_Anonymous(t *testing.T) {
	e := newAuthEcho(t, mockservice.NewMockIdentityProvider(t))

	rec := serve(e, "/required", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}
