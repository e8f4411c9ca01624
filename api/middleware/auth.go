package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lokoloapp/lokolo-backend/api/responses"
	pkgAuth "github.com/lokoloapp/lokolo-backend/pkg/auth"
	"github.com/lokoloapp/lokolo-backend/pkg/config"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

// Identity validates a bearer token and seeds the request context with the
// caller's Firebase UID. When no auth secret is configured the middleware is
// a pass-through: handlers then trust identifiers from the request itself.
func Identity(cfg config.AuthConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseIdentityToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxFirebaseUID, claims.FirebaseUID())
			ctx = context.WithValue(ctx, ctxRole, string(claims.Role))

			if logg != nil {
				fields := map[string]any{"firebase_uid": claims.FirebaseUID()}
				if claims.Role != "" {
					fields["role"] = string(claims.Role)
				}
				ctx = logg.WithFields(ctx, fields)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
