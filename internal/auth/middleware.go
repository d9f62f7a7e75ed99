package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"usermgmt-backend/internal/models"
	"usermgmt-backend/internal/storage"
)

type contextKey string

const currentUserKey contextKey = "usermgmt_current_user"

// UserResolver is the slice of the store the gates need.
type UserResolver interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetRoleName(ctx context.Context, id int) (string, error)
}

// RequireAuth verifies the bearer token and re-resolves the user from the
// store on every request. Tokens carry no revocation mechanism, so
// deactivation and deletion are only caught here, not at issuance.
func RequireAuth(tokens *TokenManager, store UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeFailure(w, http.StatusUnauthorized, "Access token required")
				return
			}

			claims, err := tokens.Parse(token)
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					writeFailure(w, http.StatusUnauthorized, "Token expired")
					return
				}
				writeFailure(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := store.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					writeFailure(w, http.StatusUnauthorized, "User not found")
					return
				}
				log.Printf("auth middleware: load user %d: %v", claims.UserID, err)
				writeFailure(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if user.IsDeleted {
				writeFailure(w, http.StatusUnauthorized, "User account has been deleted")
				return
			}
			if !user.IsActive {
				writeFailure(w, http.StatusUnauthorized, "User account is inactive")
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on an exact role name. It composes after
// RequireAuth; without an identity in the context it rejects outright.
func RequireRole(store UserResolver, required string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				writeFailure(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			roleName, err := store.GetRoleName(r.Context(), user.RoleID)
			if err != nil {
				if errors.Is(err, storage.ErrRoleNotFound) {
					writeFailure(w, http.StatusForbidden, "Invalid role")
					return
				}
				log.Printf("role middleware: resolve role %d: %v", user.RoleID, err)
				writeFailure(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if roleName != required {
				writeFailure(w, http.StatusForbidden, fmt.Sprintf("Access denied. Required role: %s", required))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the user attached by RequireAuth. The record is the
// freshly loaded row, never the token claims.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*models.User)
	return user, ok
}

// WithUser is a test seam for handlers that run behind RequireAuth.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Response{Success: false, Message: message})
}
