package router

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Renal37/canteen-admin/internal/backend"
	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/middlewares"
)

// writeUpstreamError переводит ошибку обращения к бэкенду столовой в ответ консоли.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, action string, err error) {
	logger.Log.Warn("backend call failed",
		zap.String("action", action),
		zap.String("uri", r.RequestURI),
		zap.Error(err),
	)

	var apiErr *backend.APIError

	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		w.Header().Set("Location", middlewares.LoginPath)
		http.Error(w, "Сессия истекла, требуется повторный вход", http.StatusUnauthorized)
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		http.Error(w, fmt.Sprintf("%s: %s", action, apiErr.Message), http.StatusNotFound)
	case errors.Is(err, backend.ErrTransport), errors.Is(err, backend.ErrDecode), errors.As(err, &apiErr):
		http.Error(w, fmt.Sprintf("%s: %s", action, err.Error()), http.StatusBadGateway)
	default:
		http.Error(w, fmt.Sprintf("%s: %s", action, err.Error()), http.StatusInternalServerError)
	}
}
