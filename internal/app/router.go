package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/models"
)

type Config struct {
	// Endpoint адрес и порт, на которых сервер будет слушать входящие запросы.
	Endpoint string
	// CORSOrigins источники браузерного UI; пустой список отключает CORS.
	CORSOrigins []string
}

type Router struct {
	config   Config
	services middlewares.Services
	server   *http.Server
}

// New создает новый экземпляр Router с заданными зависимостями.
func New(config Config, services middlewares.Services) *Router {
	router := &Router{
		config:   config,
		services: services,
	}
	router.server = &http.Server{
		Addr:              config.Endpoint,
		Handler:           router.get(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return router
}

// get возвращает настроенный роутер.
func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		// Логгер для регистрации запросов.
		logger.RequestLogger,
		middleware.Recoverer,
	)

	if len(router.config.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   router.config.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Location", StaleDataHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(
		// Инжектор сервисов для предоставления сервисов в обработчиках.
		middlewares.ServiceInjectorMiddleware(router.services),
		// Проверка сессии администратора, кроме входа и публичных статуса и часов работы столовой.
		middlewares.AuthMiddleware().WithExcludedPaths(
			middlewares.LoginPath,
			"/canteen-status/public",
			"/service-hours/public",
		).Middleware,
	)

	r.Route("/admin", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.Credentials]).Post("/login", Login)
		r.Post("/logout", Logout)
		r.Get("/session", GetSession)

		r.Get("/orders", GetOrders)
		r.Patch("/orders/{id}/mark-ready", MarkReady)
		r.Patch("/orders/{id}/mark-delivered", MarkDelivered)

		r.Get("/daily-summary", GetDailySummary)

		r.Get("/feedback", GetFeedback)
		r.Patch("/feedback/{id}/read", MarkFeedbackRead)
		r.Post("/feedback/mark-all-read", MarkAllFeedbackRead)

		r.Patch("/canteen-status", ToggleCanteenStatus)

		r.Get("/menu", GetMenu)
		r.Post("/menu", CreateMenuItem)
		r.Get("/menu/{id}", GetMenuItem)
		r.Put("/menu/{id}", UpdateMenuItem)
		r.Delete("/menu/{id}", DeleteMenuItem)

		r.Get("/advertisements", GetAdvertisements)
		r.Post("/advertisements", UploadAdvertisement)
		r.Patch("/advertisements/{id}/toggle", ToggleAdvertisement)
		r.Delete("/advertisements/{id}", DeleteAdvertisement)

		r.With(middlewares.JSONMiddleware[models.ServiceHours]).Patch("/service-hours", UpdateServiceHours)
		r.Post("/service-hours/reset", ResetServiceHours)

		r.Get("/notifications", GetNotifications)
		r.Get("/journal", GetJournal)
	})

	r.Get("/canteen-status/public", GetCanteenStatus)
	r.Get("/service-hours/public", GetServiceHours)

	return r
}

// Run запускает HTTP сервер на заданном endpoint и блокируется до его остановки.
func (router *Router) Run() error {
	logger.Log.Info("console is listening", zap.String("address", router.config.Endpoint))

	if err := router.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown останавливает сервер, дожидаясь текущих запросов.
func (router *Router) Shutdown(ctx context.Context) error {
	return router.server.Shutdown(ctx)
}
