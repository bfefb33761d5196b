package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKeyOwnerID struct{}

// OwnerID returns the authenticated account ID from the request context, or
// "" when the request did not pass through RequireAuth.
func OwnerID(ctx context.Context) string {
	ownerID, ok := ctx.Value(contextKeyOwnerID{}).(string)
	if !ok {
		return ""
	}
	return ownerID
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved owner ID on the context for handlers downstream.
func RequireAuth(tokens *TokenService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				logger.Warn("unauthorized request, missing bearer token",
					zap.String("path", r.URL.Path))
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				logger.Warn("unauthorized request, invalid token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyOwnerID{}, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"` + description + `"}}`))
}
