package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
)

// AdvertisementService рекламные баннеры столовой
type AdvertisementService struct {
	backend advertisementBackend
	ads     *listCache[models.Advertisement]
}

type advertisementBackend interface {
	ListAdvertisements(ctx context.Context) ([]models.Advertisement, error)
	CreateAdvertisement(ctx context.Context, image models.Upload) error
	ToggleAdvertisement(ctx context.Context, adID string) error
	DeleteAdvertisement(ctx context.Context, adID string) error
}

func NewAdvertisementService(backend advertisementBackend) *AdvertisementService {
	return &AdvertisementService{
		backend: backend,
		ads:     newListCache(func(ad models.Advertisement) string { return ad.ID }),
	}
}

func (as *AdvertisementService) Refresh(ctx context.Context) error {
	ticket := as.ads.ticket()

	ads, err := as.backend.ListAdvertisements(ctx)
	if err != nil {
		logger.Log.Warn("failed to fetch advertisements", zap.Error(err))
		return fmt.Errorf("ошибка получения рекламы: %w", err)
	}

	as.ads.replace(ads, ticket)
	return nil
}

// List возвращает баннеры, при первом обращении загружая их
func (as *AdvertisementService) List(ctx context.Context) ([]models.Advertisement, error) {
	if _, loaded := as.ads.snapshot(); !loaded {
		if err := as.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	ads, _ := as.ads.snapshot()
	return ads, nil
}

// Upload загружает новый баннер и перечитывает список
func (as *AdvertisementService) Upload(ctx context.Context, image models.Upload) error {
	if err := as.backend.CreateAdvertisement(ctx, image); err != nil {
		logger.Log.Warn("failed to upload advertisement", zap.String("filename", image.Filename), zap.Error(err))
		return fmt.Errorf("ошибка загрузки рекламы: %w", err)
	}

	as.refreshAfter(ctx, "upload")
	return nil
}

// Toggle сразу меняет активность баннера, затем переключает его на бэкенде и перечитывает список.
// Баннер, которого нет в списке, переключается только на бэкенде.
func (as *AdvertisementService) Toggle(ctx context.Context, adID string) error {
	if current, ok := as.ads.find(adID); ok {
		active := !current.IsActive
		as.ads.edit(adID, func(ad models.Advertisement) (models.Advertisement, bool) {
			ad.IsActive = active
			return ad, true
		})
	}

	err := as.backend.ToggleAdvertisement(ctx, adID)
	as.ads.resolve(adID, err == nil)
	as.refreshAfter(ctx, "toggle")

	if err != nil {
		logger.Log.Warn("failed to toggle advertisement", zap.String("adID", adID), zap.Error(err))
		return fmt.Errorf("ошибка переключения рекламы %s: %w", adID, err)
	}

	return nil
}

// Delete сразу убирает баннер, затем удаляет его на бэкенде и перечитывает список
func (as *AdvertisementService) Delete(ctx context.Context, adID string) error {
	as.ads.edit(adID, func(ad models.Advertisement) (models.Advertisement, bool) {
		return ad, false
	})

	err := as.backend.DeleteAdvertisement(ctx, adID)
	as.ads.resolve(adID, err == nil)
	as.refreshAfter(ctx, "delete")

	if err != nil {
		logger.Log.Warn("failed to delete advertisement", zap.String("adID", adID), zap.Error(err))
		return fmt.Errorf("ошибка удаления рекламы %s: %w", adID, err)
	}

	return nil
}

// Clear сбрасывает список при завершении сессии
func (as *AdvertisementService) Clear() {
	as.ads.clear()
}

func (as *AdvertisementService) refreshAfter(ctx context.Context, action string) {
	if err := as.Refresh(ctx); err != nil {
		logger.Log.Warn("advertisements refresh after change failed", zap.String("action", action), zap.Error(err))
	}
}
