package middleware

import (
	"context"
	"net/http"
	"slot_engine/pkg/resp"
	"slot_engine/pkg/token"
	"strings"

	log "github.com/sirupsen/logrus"
)

type ctxKey struct{}

var userIDKey = ctxKey{}

// Auth - проверяет Bearer токен и кладёт идентификатор игрока в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				log.WithError(err).Debug("rejected access token")
				writeUnauthorized(w, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	resp.WriteJSONResponse(w, http.StatusUnauthorized, map[string]string{
		"error":   "unauthorized",
		"message": message,
	})
}

// WithUserID - контекст с идентификатором игрока
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext - идентификатор игрока, положенный Auth
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
