package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyagr/payment-service/internal/middleware"
)

func TestTokenIssuer_Issue(t *testing.T) {
	var gotUser, gotRole string
	protected := middleware.Auth("ops-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = middleware.UserID(r.Context())
		gotRole = middleware.Role(r.Context())
	}))

	t.Run("accepted by the auth middleware", func(t *testing.T) {
		token, err := NewTokenIssuer("ops-secret", time.Hour).Issue("ops-1", middleware.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ops-1", gotUser)
		assert.Equal(t, "admin", gotRole)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		issuer := NewTokenIssuer("ops-secret", time.Minute)
		issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

		token, err := issuer.Issue("ops-1", middleware.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := NewTokenIssuer("other-secret", time.Hour).Issue("ops-1", "")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := NewTokenIssuer("", 0).Issue("ops-1", "")
		assert.ErrorIs(t, err, ErrMissingSigningKey)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := NewTokenIssuer("ops-secret", 0).Issue("", "")
		assert.Error(t, err)
	})
}
