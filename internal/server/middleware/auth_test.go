package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	identity Identity
	err      error
}

func (v *stubValidator) ValidateToken(token string) (Identity, error) {
	if v.err != nil {
		return Identity{}, v.err
	}
	return v.identity, nil
}

func protected(t *testing.T, validator TokenValidator) (http.Handler, *Identity) {
	t.Helper()
	var seen Identity
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := GetIdentity(r)
		require.NoError(t, err)
		seen = identity
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &seen
}

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	handler, seen := protected(t, &stubValidator{identity: Identity{UserID: userID, Role: "employer"}})

	req := httptest.NewRequest("GET", "/dashboard/employer", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, "employer", seen.Role)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler, _ := protected(t, &stubValidator{})

	req := httptest.NewRequest("GET", "/dashboard/employer", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	handler, _ := protected(t, &stubValidator{})

	for _, header := range []string{"good-token", "Basic abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/dashboard/employer", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	handler, _ := protected(t, &stubValidator{identity: Identity{UserID: uuid.New()}})

	req := httptest.NewRequest("GET", "/dashboard/employer", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	handler, _ := protected(t, &stubValidator{err: fmt.Errorf("token expired")})

	req := httptest.NewRequest("GET", "/dashboard/employer", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetIdentity_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetIdentity(req)
	assert.Error(t, err)
}
