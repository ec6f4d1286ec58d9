package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/services"
)

// Login обрабатывает запрос на вход администратора и начинает сессию консоли.
func Login(w http.ResponseWriter, r *http.Request) {
	// Извлекаем данные администратора из тела запроса.
	data, ok := middlewares.GetParsedJSONData[models.Credentials](w, r)
	if !ok {
		return
	}

	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	if authService == nil {
		return
	}

	if err := (*authService).Login(r.Context(), data); err != nil {
		if errors.Is(err, services.ErrCredentialsRequired) {
			http.Error(w, "Запрос не содержит email или пароль", http.StatusBadRequest)
			return
		}

		if errors.Is(err, services.ErrLoginRejected) {
			http.Error(w, fmt.Sprintf("Вход отклонен: %s", err.Error()), http.StatusUnauthorized)
			return
		}

		writeUpstreamError(w, r, "Произошла ошибка при входе", err)
		return
	}

	middlewares.EncodeJSONResponse(w, (*authService).Session())
}

// Logout завершает сессию администратора.
func Logout(w http.ResponseWriter, r *http.Request) {
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	if authService == nil {
		return
	}

	(*authService).Logout()
	w.WriteHeader(http.StatusOK)
}

// GetSession возвращает состояние сессии.
func GetSession(w http.ResponseWriter, r *http.Request) {
	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	if authService == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, (*authService).Session())
}
