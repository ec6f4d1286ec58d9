package router

import (
	"net/http"
	"strconv"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
)

// GetNotifications отдает накопленные уведомления; каждое отдается один раз.
func GetNotifications(w http.ResponseWriter, r *http.Request) {
	notificationService := middlewares.GetServiceFromContext[models.NotificationService](w, r, middlewares.NotificationServiceKey)
	if notificationService == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, (*notificationService).Drain())
}

// GetJournal возвращает журнал переходов, опционально по одному заказу (order) и с ограничением (limit).
func GetJournal(w http.ResponseWriter, r *http.Request) {
	journalService, ok := middlewares.LookupServiceFromContext[models.JournalService](r, middlewares.JournalServiceKey)
	if !ok {
		http.Error(w, "Журнал переходов не настроен", http.StatusNotFound)
		return
	}

	limit := 0
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			http.Error(w, "limit должен быть неотрицательным числом", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := journalService.FindTransitions(r.Context(), r.URL.Query().Get("order"), limit)
	if err != nil {
		http.Error(w, "Произошла ошибка при чтении журнала: "+err.Error(), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, records)
}
