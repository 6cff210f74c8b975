package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID   = contextKey("userID")
	ContextKeyIdentity = contextKey("identity")
)

// AuthMiddleware guards API endpoints. Missing or invalid sessions get 401.
func AuthMiddleware(secret []byte, issuer string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolveIdentity(r, secret, issuer)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, err,
					)
					return
				}
				if errors.Is(err, errMissingToken) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil, utils.ErrUnauthenticated,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, err,
				)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// AdminMiddleware must run after AuthMiddleware. Emails outside the
// allow-list get 403.
func AdminMiddleware(adminDomains []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := IdentityFromContext(r.Context())
			if id.IsZero() {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing identity in context", nil,
				)
				return
			}
			if !services.IsAdminEmail(id.Email, adminDomains) {
				utils.RespondErrorWithCode(
					w, http.StatusForbidden, utils.ErrCodeForbidden, "Insufficient permissions", nil, utils.ErrNotAdmin,
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUserID, id.UserID)
	return context.WithValue(ctx, ContextKeyIdentity, id)
}

func IdentityFromContext(ctx context.Context) models.Identity {
	id, _ := ctx.Value(ContextKeyIdentity).(models.Identity)
	return id
}
