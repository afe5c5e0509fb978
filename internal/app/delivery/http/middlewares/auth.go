package middlewares

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// AdminAuthenticate requires a valid admin session token in the Authorization header.
func (m *Middlewares) AdminAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))

		subject, err := m.AuthUsecase.VerifyAdminToken(r.Context(), token)
		if err != nil {
			requestID := utils.GetRequestID(r.Context())
			m.Log.Warn("Middlewares.AdminAuthenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_SUBJECT_KEY, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
