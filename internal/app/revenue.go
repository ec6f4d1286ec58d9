package router

import (
	"net/http"
	"time"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
)

// GetDailySummary возвращает выручку за дату date (YYYY-MM-DD), по умолчанию за сегодня.
func GetDailySummary(w http.ResponseWriter, r *http.Request) {
	date := utils.NewLocalDate(time.Now())

	if value := r.URL.Query().Get("date"); value != "" {
		parsed, err := utils.ParseLocalDate(value)
		if err != nil {
			http.Error(w, "Дата должна быть в формате YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	revenueService := middlewares.GetServiceFromContext[models.RevenueService](w, r, middlewares.RevenueServiceKey)
	if revenueService == nil {
		return
	}

	summary, err := (*revenueService).DailySummary(r.Context(), date)
	if err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при получении сводки", err)
		return
	}

	middlewares.EncodeJSONResponse(w, summary)
}
