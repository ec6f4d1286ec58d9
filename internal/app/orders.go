package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/services"
)

// StaleDataHeader выставляется, если последний фоновый запрос очереди не удался.
const StaleDataHeader = "X-Data-Stale"

// GetOrders возвращает очередь заказов с фильтром по статусу (status) и поиском по номеру чека (q).
func GetOrders(w http.ResponseWriter, r *http.Request) {
	filter, ok := models.ParseStatusFilter(r.URL.Query().Get("status"))
	if !ok {
		http.Error(w, "Неизвестный фильтр статуса", http.StatusBadRequest)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	orders, state := (*orderService).Orders(filter, r.URL.Query().Get("q"))

	// Первая загрузка еще не удалась: показывать нечего.
	if !state.Loaded {
		message := "Очередь заказов еще не загружена"
		if state.LastError != "" {
			message = fmt.Sprintf("%s: %s", message, state.LastError)
		}
		http.Error(w, message, http.StatusServiceUnavailable)
		return
	}

	if state.Stale {
		w.Header().Set(StaleDataHeader, "true")
	}

	// Если заказов нет, возвращаем статус "Нет контента".
	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

// MarkReady переводит заказ в Ready.
func MarkReady(w http.ResponseWriter, r *http.Request) {
	submitTransition(w, r, models.StatusReady)
}

// MarkDelivered переводит заказ в Delivered.
func MarkDelivered(w http.ResponseWriter, r *http.Request) {
	submitTransition(w, r, models.StatusDelivered)
}

func submitTransition(w http.ResponseWriter, r *http.Request, target models.OrderStatus) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		http.Error(w, "Идентификатор заказа не указан", http.StatusBadRequest)
		return
	}

	transitionService := middlewares.GetServiceFromContext[models.TransitionService](w, r, middlewares.TransitionServiceKey)
	if transitionService == nil {
		return
	}

	if err := (*transitionService).Submit(orderID, target); err != nil {
		if errors.Is(err, services.ErrTransitionInProgress) {
			http.Error(w, "Для заказа уже выполняется другой переход", http.StatusConflict)
			return
		}

		if errors.Is(err, services.ErrTransitionSkipsStatus) {
			http.Error(w, "Заказ нельзя перевести через статус", http.StatusConflict)
			return
		}

		if errors.Is(err, services.ErrJobQueueIsFull) || errors.Is(err, services.ErrJobQueueClosed) {
			http.Error(w, "Консоль перегружена, повторите позже", http.StatusServiceUnavailable)
			return
		}

		http.Error(w, fmt.Sprintf("Произошла ошибка при смене статуса: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	// Подтверждение бэкендом выполняется в фоне.
	w.WriteHeader(http.StatusAccepted)
}
