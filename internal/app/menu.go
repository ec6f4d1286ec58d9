package router

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/services"
)

// GetMenu возвращает меню с фильтром по категории (category) и поиском по названию (q).
func GetMenu(w http.ResponseWriter, r *http.Request) {
	menuService := middlewares.GetServiceFromContext[models.MenuService](w, r, middlewares.MenuServiceKey)
	if menuService == nil {
		return
	}

	items, err := (*menuService).List(r.Context(), r.URL.Query().Get("category"), r.URL.Query().Get("q"))
	if err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при получении меню", err)
		return
	}

	middlewares.EncodeJSONResponse(w, items)
}

func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	menuService := middlewares.GetServiceFromContext[models.MenuService](w, r, middlewares.MenuServiceKey)
	if menuService == nil {
		return
	}

	item, err := (*menuService).Item(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при получении блюда", err)
		return
	}

	middlewares.EncodeJSONResponse(w, item)
}

// CreateMenuItem принимает форму блюда с необязательным изображением.
func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	saveMenuItem(w, r, http.StatusCreated, func(menu models.MenuService, input models.MenuItemInput, image *models.Upload) error {
		return menu.Create(r.Context(), input, image)
	})
}

func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	saveMenuItem(w, r, http.StatusOK, func(menu models.MenuService, input models.MenuItemInput, image *models.Upload) error {
		return menu.Update(r.Context(), itemID, input, image)
	})
}

func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	menuService := middlewares.GetServiceFromContext[models.MenuService](w, r, middlewares.MenuServiceKey)
	if menuService == nil {
		return
	}

	if err := (*menuService).Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при удалении блюда", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func saveMenuItem(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	save func(menu models.MenuService, input models.MenuItemInput, image *models.Upload) error,
) {
	if !parseMultipart(w, r) {
		return
	}

	input, err := menuItemInput(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Ошибка в данных блюда: %s", err.Error()), http.StatusBadRequest)
		return
	}

	image, closeImage, err := formImage(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Ошибка чтения изображения: %s", err.Error()), http.StatusBadRequest)
		return
	}
	defer closeImage()

	menuService := middlewares.GetServiceFromContext[models.MenuService](w, r, middlewares.MenuServiceKey)
	if menuService == nil {
		return
	}

	if err := save(*menuService, input, image); err != nil {
		if errors.Is(err, services.ErrInvalidMenuItem) {
			http.Error(w, fmt.Sprintf("Ошибка в данных блюда: %s", err.Error()), http.StatusBadRequest)
			return
		}

		writeUpstreamError(w, r, "Произошла ошибка при сохранении блюда", err)
		return
	}

	w.WriteHeader(status)
}

// menuItemInput собирает поля формы. Категория по умолчанию Snacks.
func menuItemInput(r *http.Request) (models.MenuItemInput, error) {
	input := models.MenuItemInput{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Category:    r.FormValue("category"),
		SubCategory: r.FormValue("subCategory"),
	}
	if input.Category == "" {
		input.Category = models.CategorySnacks
	}

	if raw := r.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return input, fmt.Errorf("цена %q не является числом", raw)
		}
		input.Price = &price
	}

	if raw := r.FormValue("stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return input, fmt.Errorf("остаток %q не является целым числом", raw)
		}
		input.Stock = &stock
	}

	return input, nil
}
