package admin_auth

import (
	"net/http"

	"tracking/internal/pkg/auth"
	"tracking/internal/pkg/httpjson"
	"tracking/pkg/logger"
)

const (
	messageUnauthorized  = "Unauthorized"
	messageAdminRequired = "Admin access required"
)

// RequireAdmin пропускает только запросы с валидным токеном роли администратора.
// Нет токена или он невалиден: 401. Роль без прав: 403.
func RequireAdmin(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				_ = httpjson.Error(w, http.StatusUnauthorized, messageUnauthorized)
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				log.Warn("rejected bearer token",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				_ = httpjson.Error(w, http.StatusUnauthorized, messageUnauthorized)
				return
			}

			if !principal.IsAdmin() {
				log.Warn("admin access denied",
					logger.NewField("path", r.URL.Path),
					logger.NewField("subject", principal.Subject),
					logger.NewField("role", principal.Role),
				)
				_ = httpjson.Error(w, http.StatusForbidden, messageAdminRequired)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}

// Attach кладёт в контекст вызывающего, если токен передан. Запрос без токена
// проходит анонимно, с невалидным токеном получает 401.
func Attach(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				log.Warn("rejected bearer token",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				_ = httpjson.Error(w, http.StatusUnauthorized, messageUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}
