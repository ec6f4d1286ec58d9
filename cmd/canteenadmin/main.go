package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	router "github.com/Renal37/canteen-admin/internal/app"
	"github.com/Renal37/canteen-admin/internal/backend"
	"github.com/Renal37/canteen-admin/internal/database"
	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/middlewares"
	"github.com/Renal37/canteen-admin/internal/services"
	"github.com/Renal37/canteen-admin/internal/session"
	"github.com/Renal37/canteen-admin/internal/store"
	"github.com/Renal37/canteen-admin/internal/utils"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf(".env wasn't loaded due to %s", err)
	}

	config, err := NewConfig()
	if err != nil {
		log.Fatalf("Config wasn't parsed due to %s", err)
	}

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	sess := session.New()
	client := backend.New(config.backendURL, sess, backend.WithTimeout(config.requestTimeout))

	orders := store.NewOrderStore()
	orderService := services.NewOrderService(orders, client, config.ordersPollInterval)
	notificationService := services.NewNotificationService()
	jobQueueService := services.NewJobQueueService(ctx, 100, 2)

	var transitionOptions []services.TransitionOption
	consoleServices := middlewares.Services{}

	// Журнал переходов включается только при заданном DATABASE_URI.
	var db *database.Database
	if config.dsn != "" {
		db, err = database.New(ctx, config.dsn)
		if err != nil {
			log.Fatalf("Database wasn't initialized due to %s", err)
		}

		if err := db.RunMigrations(); err != nil {
			log.Fatalf("Migrations weren't run due to %s", err)
		}

		transitionOptions = append(transitionOptions, services.WithJournal(db))
		consoleServices.Journal = db
	}

	transitionService := services.NewTransitionService(
		orders,
		client,
		orderService,
		notificationService,
		jobQueueService,
		transitionOptions...,
	)

	feedbackService := services.NewFeedbackService(client)
	menuService := services.NewMenuService(client)
	adService := services.NewAdvertisementService(client)

	serviceHoursService := services.NewServiceHoursService(client)
	if err := serviceHoursService.Refresh(ctx); err != nil {
		logger.Log.Warn("service hours weren't loaded, defaults are used", zap.Error(err))
	}

	// Статус столовой публичный и опрашивается независимо от сессии администратора.
	canteenService := services.NewCanteenService(client, config.canteenPollInterval)
	if err := canteenService.Start(ctx); err != nil {
		logger.Log.Warn("initial canteen status wasn't loaded", zap.Error(err))
	}

	authService := services.NewAuthService(
		client,
		sess,
		notificationService,
		services.WithSessionPoller(orderService),
		services.WithSessionCleanup(orderService.Clear),
		services.WithSessionCleanup(feedbackService.Clear),
		services.WithSessionCleanup(menuService.Clear),
		services.WithSessionCleanup(adService.Clear),
	)

	consoleServices.Auth = authService
	consoleServices.Orders = orderService
	consoleServices.Transitions = transitionService
	consoleServices.Revenue = services.NewRevenueService(client)
	consoleServices.Feedback = feedbackService
	consoleServices.Canteen = canteenService
	consoleServices.Notification = notificationService
	consoleServices.Menu = menuService
	consoleServices.Ads = adService
	consoleServices.ServiceHours = serviceHoursService

	consoleRouter := router.New(
		router.Config{Endpoint: config.endpoint, CORSOrigins: config.corsOrigins},
		consoleServices,
	)

	// Выполняются в обратном порядке: сначала сервер, в конце сброс логов.
	utils.HandleTerminationProcess(
		logger.Sync,
		func() {
			if db != nil {
				db.Close()
			}
		},
		jobQueueService.Shutdown,
		func() {
			canteenService.Stop()
			orderService.Stop()
		},
		func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			if err := consoleRouter.Shutdown(shutdownCtx); err != nil {
				logger.Log.Error("console shutdown failed", zap.Error(err))
			}
		},
	)

	if err := consoleRouter.Run(); err != nil {
		logger.Log.Fatal("console stopped", zap.Error(err))
	}
}
