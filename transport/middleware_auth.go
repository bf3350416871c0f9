package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mnmsi/Lara-api/application/user"
	"github.com/mnmsi/Lara-api/constant"
	utilsContext "github.com/mnmsi/Lara-api/utils/context"
	"github.com/mnmsi/Lara-api/utils/errors"
	"github.com/mnmsi/Lara-api/utils/logger"
	"go.uber.org/zap"
)

var publicRoutes = map[string]struct{}{
	apiPrefix + "/signup": {},
	apiPrefix + "/login":  {},
}

// AuthMiddleware resolves the bearer token into the caller identity.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			identity, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("rejected token",
					zap.String("request_id", utilsContext.GetRequestID(r.Context())),
					zap.String("path", r.URL.Path),
					zap.String("error", err.Error()),
				)
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithIdentity(r.Context(), identity.UserID, identity.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken accepts the scheme in any case, e.g. "bearer abc".
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	_, ok := publicRoutes[path]
	return ok
}
