package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
)

func GetFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackService := middlewares.GetServiceFromContext[models.FeedbackService](w, r, middlewares.FeedbackServiceKey)
	if feedbackService == nil {
		return
	}

	feedback, err := (*feedbackService).List(r.Context())
	if err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при получении отзывов", err)
		return
	}

	middlewares.EncodeJSONResponse(w, feedback)
}

func MarkFeedbackRead(w http.ResponseWriter, r *http.Request) {
	feedbackService := middlewares.GetServiceFromContext[models.FeedbackService](w, r, middlewares.FeedbackServiceKey)
	if feedbackService == nil {
		return
	}

	if err := (*feedbackService).MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при отметке отзыва", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func MarkAllFeedbackRead(w http.ResponseWriter, r *http.Request) {
	feedbackService := middlewares.GetServiceFromContext[models.FeedbackService](w, r, middlewares.FeedbackServiceKey)
	if feedbackService == nil {
		return
	}

	if err := (*feedbackService).MarkAllRead(r.Context()); err != nil {
		writeUpstreamError(w, r, "Произошла ошибка при отметке отзывов", err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
