package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"events-marketplace/internal/models"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserLoader struct {
	users map[int]*models.User
}

func (s *stubUserLoader) GetUser(ctx context.Context, id int) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func withUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	m := NewAuthMiddleware(&stubUserLoader{}, sessions.NewCookieStore([]byte("test-secret")))
	handler := m.RequireAuth(okHandler())

	t.Run("anonymous request is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withUser(httptest.NewRequest(http.MethodGet, "/", nil), &models.User{ID: 1, Role: models.RoleClient})
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(&stubUserLoader{}, sessions.NewCookieStore([]byte("test-secret")))
	handler := m.RequireRole(models.RoleAdmin)(okHandler())

	t.Run("matching role passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withUser(httptest.NewRequest(http.MethodGet, "/", nil), &models.User{ID: 1, Role: models.RoleAdmin})
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := withUser(httptest.NewRequest(http.MethodGet, "/", nil), &models.User{ID: 1, Role: models.RoleClient})
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous request is unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_SessionRoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Role: models.RoleClient, IsActive: true}
	loader := &stubUserLoader{users: map[int]*models.User{user.ID: user}}
	m := NewAuthMiddleware(loader, sessions.NewCookieStore([]byte("test-secret")))

	// Sign in to capture the session cookie
	signInRec := httptest.NewRecorder()
	require.NoError(t, m.SignIn(signInRec, httptest.NewRequest(http.MethodPost, "/login", nil), user))
	cookies := signInRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	t.Run("cookie loads the user into the context", func(t *testing.T) {
		var loaded *models.User
		handler := m.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loaded = GetUserFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, loaded)
		assert.Equal(t, user.ID, loaded.ID)
	})

	t.Run("deactivated user stays anonymous", func(t *testing.T) {
		user.IsActive = false
		defer func() { user.IsActive = true }()

		var loaded *models.User
		handler := m.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loaded = GetUserFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Nil(t, loaded)
	})

	t.Run("request without a cookie stays anonymous", func(t *testing.T) {
		var loaded *models.User
		handler := m.LoadUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loaded = GetUserFromContext(r.Context())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Nil(t, loaded)
	})
}
