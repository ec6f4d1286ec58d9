package router

import (
	"net/http"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
)

// GetCanteenStatus доступен без входа: статус показывается студентам.
func GetCanteenStatus(w http.ResponseWriter, r *http.Request) {
	canteenService := middlewares.GetServiceFromContext[models.CanteenService](w, r, middlewares.CanteenServiceKey)
	if canteenService == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, (*canteenService).Status())
}

func ToggleCanteenStatus(w http.ResponseWriter, r *http.Request) {
	canteenService := middlewares.GetServiceFromContext[models.CanteenService](w, r, middlewares.CanteenServiceKey)
	if canteenService == nil {
		return
	}

	status, err := (*canteenService).Toggle(r.Context())
	if err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при переключении статуса столовой", err)
		return
	}

	middlewares.EncodeJSONResponse(w, status)
}
