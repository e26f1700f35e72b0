package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueCookie(t *testing.T, m *SessionManager) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestIssueAndAuthenticate(t *testing.T) {
	m := NewSessionManager("test-secret", 24*time.Hour, false)
	cookie := issueCookie(t, m)

	assert.Equal(t, SessionCookie, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 24*60*60, cookie.MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	req.AddCookie(cookie)
	assert.True(t, m.IsAuthenticated(req))
}

func TestAuthenticateRejections(t *testing.T) {
	m := NewSessionManager("test-secret", 24*time.Hour, false)

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.False(t, m.IsAuthenticated(req))
	})

	t.Run("tampered token", func(t *testing.T) {
		cookie := issueCookie(t, m)
		cookie.Value += "x"

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		assert.False(t, m.IsAuthenticated(req))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewSessionManager("other-secret", 24*time.Hour, false)
		cookie := issueCookie(t, other)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		assert.False(t, m.IsAuthenticated(req))
	})

	t.Run("expired session", func(t *testing.T) {
		expired := NewSessionManager("test-secret", -time.Minute, false)
		cookie := issueCookie(t, expired)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		assert.False(t, m.IsAuthenticated(req))
	})
}

func TestClear(t *testing.T) {
	m := NewSessionManager("test-secret", 24*time.Hour, false)

	rec := httptest.NewRecorder()
	m.Clear(rec)
	m.Clear(rec) // idempotent

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestRequireAdmin(t *testing.T) {
	m := NewSessionManager("test-secret", 24*time.Hour, false)

	var sawAdmin bool
	handler := m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("rejects without session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Admin authentication required")
	})

	t.Run("passes with session and marks context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
		req.AddCookie(issueCookie(t, m))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, sawAdmin)
	})
}
