package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
)

var ErrInvalidServiceHours = errors.New("некорректные часы работы")

// ServiceHoursService часы завтрака и обеда.
// Пока часы не прочитаны с бэкенда, отдаются часы по умолчанию.
type ServiceHoursService struct {
	backend  serviceHoursBackend
	validate *validator.Validate

	mu      sync.Mutex
	loaded  bool
	hours   models.ServiceHours
	version uint64
}

type serviceHoursBackend interface {
	ServiceHours(ctx context.Context) (models.ServiceHours, error)
	UpdateServiceHours(ctx context.Context, hours models.ServiceHours) (models.ServiceHours, error)
}

func NewServiceHoursService(backend serviceHoursBackend) *ServiceHoursService {
	return &ServiceHoursService{
		backend:  backend,
		validate: validator.New(),
		hours:    models.DefaultServiceHours,
	}
}

// Refresh перечитывает публичные часы работы
func (hs *ServiceHoursService) Refresh(ctx context.Context) error {
	hs.mu.Lock()
	version := hs.version
	hs.mu.Unlock()

	hours, err := hs.backend.ServiceHours(ctx)
	if err != nil {
		logger.Log.Warn("failed to fetch service hours", zap.Error(err))
		return fmt.Errorf("ошибка получения часов работы: %w", err)
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()

	// Изменение, сделанное во время запроса, новее ответа.
	if hs.version == version {
		hs.hours = hours
		hs.loaded = true
	}

	return nil
}

// Hours возвращает часы работы. Если бэкенд недоступен, возвращаются последние известные
// или часы по умолчанию, а следующее обращение снова пробует бэкенд.
func (hs *ServiceHoursService) Hours(ctx context.Context) models.ServiceHours {
	hs.mu.Lock()
	loaded := hs.loaded
	hs.mu.Unlock()

	if !loaded {
		_ = hs.Refresh(ctx)
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()

	return hs.hours
}

// Update сразу показывает новые часы и сохраняет их на бэкенде.
// Если бэкенд не принял изменение, возвращаются прежние часы и они перечитываются.
func (hs *ServiceHoursService) Update(ctx context.Context, hours models.ServiceHours) (models.ServiceHours, error) {
	if err := hs.check(hours); err != nil {
		return models.ServiceHours{}, err
	}

	hs.mu.Lock()
	previous := hs.hours
	hs.hours = hours
	hs.version++
	version := hs.version
	hs.mu.Unlock()

	saved, err := hs.backend.UpdateServiceHours(ctx, hours)
	if err != nil {
		logger.Log.Warn("failed to update service hours", zap.Error(err))

		hs.mu.Lock()
		if hs.version == version {
			hs.hours = previous
			hs.version++
		}
		hs.mu.Unlock()

		if rerr := hs.Refresh(ctx); rerr != nil {
			logger.Log.Warn("failed to restore service hours", zap.Error(rerr))
		}

		return models.ServiceHours{}, fmt.Errorf("ошибка сохранения часов работы: %w", err)
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()

	if hs.version == version {
		hs.hours = saved
		hs.loaded = true
		hs.version++
	}

	return saved, nil
}

// Reset возвращает часы по умолчанию
func (hs *ServiceHoursService) Reset(ctx context.Context) (models.ServiceHours, error) {
	return hs.Update(ctx, models.DefaultServiceHours)
}

func (hs *ServiceHoursService) check(hours models.ServiceHours) error {
	if err := hs.validate.Struct(hours); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServiceHours, err)
	}

	meals := []struct {
		name       string
		start, end string
	}{
		{"breakfast", hours.BreakfastStart, hours.BreakfastEnd},
		{"lunch", hours.LunchStart, hours.LunchEnd},
	}
	for _, meal := range meals {
		start, _ := time.Parse("15:04", meal.start)
		end, _ := time.Parse("15:04", meal.end)
		if !end.After(start) {
			return fmt.Errorf("%w: %s ends at %s before it starts at %s", ErrInvalidServiceHours, meal.name, meal.end, meal.start)
		}
	}

	return nil
}
