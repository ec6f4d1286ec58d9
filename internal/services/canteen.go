package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
	"go.uber.org/zap"
)

// CanteenService признак открытой столовой. Неудачный запрос считается закрытой столовой.
type CanteenService struct {
	backend canteenBackend
	poller  *Poller[models.CanteenStatus]

	mu     sync.RWMutex
	status models.CanteenStatus
}

type canteenBackend interface {
	CanteenStatus(ctx context.Context) (models.CanteenStatus, error)
	ToggleCanteen(ctx context.Context) (models.CanteenStatus, error)
}

func NewCanteenService(backend canteenBackend, interval time.Duration) *CanteenService {
	cs := &CanteenService{backend: backend}
	cs.poller = NewPoller(PollerConfig[models.CanteenStatus]{
		Name:     "canteen-status",
		Interval: interval,
		Fetch:    backend.CanteenStatus,
		Apply:    cs.set,
		Fail: func(error) {
			cs.set(models.CanteenStatus{IsOpen: false})
		},
	})

	return cs
}

func (cs *CanteenService) Start(ctx context.Context) error {
	return cs.poller.Start(ctx)
}

func (cs *CanteenService) Stop() {
	cs.poller.Stop()
}

// Status последнее известное состояние
func (cs *CanteenService) Status() models.CanteenStatus {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	return cs.status
}

// Toggle переключает состояние на бэкенде; ответ бэкенда заменяет кэш
func (cs *CanteenService) Toggle(ctx context.Context) (models.CanteenStatus, error) {
	status, err := cs.backend.ToggleCanteen(ctx)
	if err != nil {
		logger.Log.Warn("failed to toggle canteen status", zap.Error(err))
		return models.CanteenStatus{}, fmt.Errorf("ошибка переключения статуса столовой: %w", err)
	}

	cs.poller.Supersede(status)
	logger.Log.Info("canteen status toggled", zap.Bool("isOpen", status.IsOpen))

	return status, nil
}

func (cs *CanteenService) set(status models.CanteenStatus) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.status = status
}
