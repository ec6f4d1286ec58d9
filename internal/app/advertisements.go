package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
)

func GetAdvertisements(w http.ResponseWriter, r *http.Request) {
	adService := middlewares.GetServiceFromContext[models.AdvertisementService](w, r, middlewares.AdvertisementServiceKey)
	if adService == nil {
		return
	}

	ads, err := (*adService).List(r.Context())
	if err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при получении рекламы", err)
		return
	}

	middlewares.EncodeJSONResponse(w, ads)
}

// UploadAdvertisement принимает изображение баннера в поле image.
func UploadAdvertisement(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r) {
		return
	}

	image, closeImage, err := formImage(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Ошибка чтения изображения: %s", err.Error()), http.StatusBadRequest)
		return
	}
	defer closeImage()

	if image == nil {
		http.Error(w, "Изображение не передано", http.StatusBadRequest)
		return
	}

	adService := middlewares.GetServiceFromContext[models.AdvertisementService](w, r, middlewares.AdvertisementServiceKey)
	if adService == nil {
		return
	}

	if err := (*adService).Upload(r.Context(), *image); err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при загрузке рекламы", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func ToggleAdvertisement(w http.ResponseWriter, r *http.Request) {
	adService := middlewares.GetServiceFromContext[models.AdvertisementService](w, r, middlewares.AdvertisementServiceKey)
	if adService == nil {
		return
	}

	if err := (*adService).Toggle(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при переключении рекламы", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func DeleteAdvertisement(w http.ResponseWriter, r *http.Request) {
	adService := middlewares.GetServiceFromContext[models.AdvertisementService](w, r, middlewares.AdvertisementServiceKey)
	if adService == nil {
		return
	}

	if err := (*adService).Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при удалении рекламы", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
