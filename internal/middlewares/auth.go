package middlewares

import (
	"net/http"
	"strings"

	"github.com/Renal37/canteen-admin/internal/models"
)

// LoginPath точка повторного входа, куда отправляется UI при отсутствии сессии.
const LoginPath = "/admin/login"

// AuthMiddlewareConfig представляет конфигурацию middleware для проверки сессии администратора.
type AuthMiddlewareConfig struct {
	excludePaths []string // Пути, которые будут исключены из проверки сессии.
}

// AuthMiddleware создает новую конфигурацию middleware для проверки сессии.
func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

// WithExcludedPaths устанавливает пути, которые будут исключены из проверки сессии.
func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// Middleware пропускает запрос только при активной сессии.
// Иначе отвечает 401 и указывает в Location путь повторного входа.
func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем, является ли текущий путь исключенным из проверки.
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		authService := GetServiceFromContext[models.AuthService](w, r, AuthServiceKey)
		if authService == nil {
			return
		}

		if !(*authService).Session().Active {
			w.Header().Set("Location", LoginPath)
			http.Error(w, "Требуется вход администратора", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
