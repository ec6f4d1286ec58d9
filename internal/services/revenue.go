package services

import (
	"context"
	"fmt"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
	"go.uber.org/zap"
)

// RevenueService отчет о выручке за день
type RevenueService struct {
	backend revenueBackend
}

type revenueBackend interface {
	DailySummary(ctx context.Context, date utils.LocalDate) (*models.DailySummary, error)
}

func NewRevenueService(backend revenueBackend) *RevenueService {
	return &RevenueService{backend: backend}
}

// DailySummary возвращает сводку за локальную календарную дату
func (rs *RevenueService) DailySummary(ctx context.Context, date utils.LocalDate) (*models.DailySummary, error) {
	summary, err := rs.backend.DailySummary(ctx, date)
	if err != nil {
		logger.Log.Warn("failed to fetch daily summary", zap.String("date", date.String()), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения сводки за %s: %w", date, err)
	}

	return summary, nil
}
