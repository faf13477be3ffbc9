package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser        contextKey = "user"
	ContextKeyAccessToken contextKey = "access_token"

	// SessionCookie guarda o JWT de sessão quando o cliente não usa o header Authorization
	SessionCookie = "ads_session"
)

var publicPaths = map[string]bool{
	"/healthcheck":               true,
	"/v1/auth/facebook/login":    true,
	"/v1/auth/facebook/callback": true,
	"/v1/auth/token":             true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := sessionToken(r)
			if tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não informada", nil)
				return
			}

			claims, accessToken, err := authService.ValidateSession(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					code = authErr.Code
				}

				log.ForContext(r.Context()).WithError(err).Warn("Sessão inválida")
				apiErrors.WriteError(w, code, "Sessão inválida ou expirada", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			ctx = context.WithValue(ctx, ContextKeyAccessToken, accessToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionToken lê o Bearer token e, na falta dele, o cookie de sessão
func sessionToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return ""
		}
		return strings.TrimSpace(tokenString)
	}

	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}

	return ""
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}

func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ContextKeyAccessToken).(string)
	return token
}
