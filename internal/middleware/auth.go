package middleware

import (
	"context"
	"net/http"

	"events-marketplace/internal/models"

	"github.com/gorilla/sessions"
)

type contextKey string

const (
	// UserContextKey holds the authenticated user in the request context
	UserContextKey contextKey = "user"

	sessionName = "session"
)

// UserLoader resolves a session's user id to a full user record
type UserLoader interface {
	GetUser(ctx context.Context, id int) (*models.User, error)
}

// AuthMiddleware provides session-based authentication
type AuthMiddleware struct {
	users UserLoader
	store sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(users UserLoader, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{users: users, store: store}
}

// LoadUser loads the current user from the session cookie into the request
// context. Requests without a valid session continue anonymously.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, sessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values["user_id"].(int)
		if !ok || userID == 0 {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.users.GetUser(r.Context(), userID)
		if err != nil || !user.IsActive {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests without an authenticated user
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects authenticated users lacking one of the given roles
func (m *AuthMiddleware) RequireRole(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r.Context())
			if user == nil {
				http.Error(w, `{"error":"authentication required"}`, http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
		})
	}
}

// GetUserFromContext returns the authenticated user, or nil for anonymous
// requests
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserContextKey).(*models.User)
	return user
}

// SignIn stores the user id in the session cookie
func (m *AuthMiddleware) SignIn(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		// A corrupt cookie still yields a fresh session
		session, _ = m.store.New(r, sessionName)
	}

	session.Values["user_id"] = user.ID
	return session.Save(r, w)
}

// SignOut clears the session cookie
func (m *AuthMiddleware) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	delete(session.Values, "user_id")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
