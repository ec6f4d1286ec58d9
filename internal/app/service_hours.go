package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/services"
)

// GetServiceHours доступен без входа, как и статус столовой.
func GetServiceHours(w http.ResponseWriter, r *http.Request) {
	hoursService := middlewares.GetServiceFromContext[models.ServiceHoursService](w, r, middlewares.ServiceHoursServiceKey)
	if hoursService == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, (*hoursService).Hours(r.Context()))
}

func UpdateServiceHours(w http.ResponseWriter, r *http.Request) {
	hours, ok := middlewares.GetParsedJSONData[models.ServiceHours](w, r)
	if !ok {
		return
	}

	hoursService := middlewares.GetServiceFromContext[models.ServiceHoursService](w, r, middlewares.ServiceHoursServiceKey)
	if hoursService == nil {
		return
	}

	saved, err := (*hoursService).Update(r.Context(), hours)
	if err != nil {
		if errors.Is(err, services.ErrInvalidServiceHours) {
			http.Error(w, fmt.Sprintf("Ошибка в часах работы: %s", err.Error()), http.StatusBadRequest)
			return
		}

		writeUpstreamError(w, r, "Произошла ошибка при сохранении часов работы", err)
		return
	}

	middlewares.EncodeJSONResponse(w, saved)
}

// ResetServiceHours возвращает часы работы по умолчанию.
func ResetServiceHours(w http.ResponseWriter, r *http.Request) {
	hoursService := middlewares.GetServiceFromContext[models.ServiceHoursService](w, r, middlewares.ServiceHoursServiceKey)
	if hoursService == nil {
		return
	}

	saved, err := (*hoursService).Reset(r.Context())
	if err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при сбросе часов работы", err)
		return
	}

	middlewares.EncodeJSONResponse(w, saved)
}
