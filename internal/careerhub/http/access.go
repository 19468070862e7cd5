package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

type ctxKey struct{}

// requireAccess is the single authorization gate. It runs after
// AuthnMiddleware, reloads the caller and applies domain.Authorize, so role
// and status changes take effect on the next request rather than at token
// expiry.
func (r *Router) requireAccess(required domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			userID, ok := httpx.UserIDFromContext(ctx)
			if !ok {
				hubsdk.ErrInvalidToken.WriteError(w)
				return
			}

			u, err := r.UserService.GetUserByID(ctx, userID)
			if errors.Is(err, service.ErrUserNotFound) {
				hubsdk.ErrUserGone.WriteError(w)
				return
			}
			if err != nil {
				slogx.FromContext(ctx).Error("failed to load caller", "user_id", userID, "err", err)
				hubsdk.ErrServerError.WriteError(w)
				return
			}

			if claimed := httpx.RoleFromContext(ctx); claimed != string(u.Role) {
				slogx.FromContext(ctx).Info("role changed since token was issued",
					"user_id", u.ID, "token_role", claimed, "role", u.Role)
			}

			switch domain.Authorize(u.Role, u.Status, required) {
			case domain.Allow:
			case domain.DenyInactive:
				hubsdk.ErrAccountInactive.WriteError(w)
				return
			default:
				hubsdk.ErrForbidden.WriteError(w)
				return
			}

			ctx = slogx.WithUserID(ctx, u.ID)
			ctx = context.WithValue(ctx, ctxKey{}, u)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// currentUser returns the caller loaded by requireAccess.
func currentUser(ctx context.Context) domain.User {
	u, _ := ctx.Value(ctxKey{}).(domain.User)
	return u
}
