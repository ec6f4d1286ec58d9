package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
)

var ErrInvalidMenuItem = errors.New("некорректные данные блюда")

// MenuService меню столовой. Изменения видны сразу, затем меню перечитывается с бэкенда.
type MenuService struct {
	backend  menuBackend
	validate *validator.Validate
	items    *listCache[models.MenuItem]
}

type menuBackend interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, itemID string) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, input models.MenuItemInput, image *models.Upload) error
	UpdateMenuItem(ctx context.Context, itemID string, input models.MenuItemInput, image *models.Upload) error
	DeleteMenuItem(ctx context.Context, itemID string) error
}

func NewMenuService(backend menuBackend) *MenuService {
	return &MenuService{
		backend:  backend,
		validate: validator.New(),
		items:    newListCache(func(item models.MenuItem) string { return item.ID }),
	}
}

// Refresh перечитывает меню
func (ms *MenuService) Refresh(ctx context.Context) error {
	ticket := ms.items.ticket()

	items, err := ms.backend.ListMenu(ctx)
	if err != nil {
		logger.Log.Warn("failed to fetch menu", zap.Error(err))
		return fmt.Errorf("ошибка получения меню: %w", err)
	}

	ms.items.replace(items, ticket)
	return nil
}

// List возвращает блюда категории (пустая означает все), название которых содержит search без учета регистра
func (ms *MenuService) List(ctx context.Context, category, search string) ([]models.MenuItem, error) {
	if _, loaded := ms.items.snapshot(); !loaded {
		if err := ms.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	items, _ := ms.items.snapshot()
	search = strings.ToLower(strings.TrimSpace(search))

	result := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		result = append(result, item)
	}

	return result, nil
}

// Item читает одно блюдо напрямую с бэкенда
func (ms *MenuService) Item(ctx context.Context, itemID string) (*models.MenuItem, error) {
	return ms.backend.GetMenuItem(ctx, itemID)
}

// Create добавляет блюдо и перечитывает меню
func (ms *MenuService) Create(ctx context.Context, input models.MenuItemInput, image *models.Upload) error {
	if err := ms.check(input); err != nil {
		return err
	}

	if err := ms.backend.CreateMenuItem(ctx, input, image); err != nil {
		logger.Log.Warn("failed to create menu item", zap.String("name", input.Name), zap.Error(err))
		return fmt.Errorf("ошибка добавления блюда: %w", err)
	}

	ms.refreshAfter(ctx, "create")
	return nil
}

// Update сразу показывает новые поля блюда, затем сохраняет их на бэкенде и перечитывает меню
func (ms *MenuService) Update(ctx context.Context, itemID string, input models.MenuItemInput, image *models.Upload) error {
	if err := ms.check(input); err != nil {
		return err
	}

	ms.items.edit(itemID, func(item models.MenuItem) (models.MenuItem, bool) {
		item.Name = input.Name
		item.Price = *input.Price
		item.Category = input.Category
		item.Stock = *input.Stock
		if input.SubCategory == "" {
			item.SubCategory = nil
		} else if item.SubCategory == nil || item.SubCategory.ID != input.SubCategory {
			item.SubCategory = &models.MenuSubCategory{ID: input.SubCategory}
		}
		return item, true
	})

	err := ms.backend.UpdateMenuItem(ctx, itemID, input, image)
	ms.items.resolve(itemID, err == nil)
	ms.refreshAfter(ctx, "update")

	if err != nil {
		logger.Log.Warn("failed to update menu item", zap.String("itemID", itemID), zap.Error(err))
		return fmt.Errorf("ошибка изменения блюда %s: %w", itemID, err)
	}

	return nil
}

// Delete сразу убирает блюдо из меню, затем удаляет его на бэкенде и перечитывает меню
func (ms *MenuService) Delete(ctx context.Context, itemID string) error {
	ms.items.edit(itemID, func(item models.MenuItem) (models.MenuItem, bool) {
		return item, false
	})

	err := ms.backend.DeleteMenuItem(ctx, itemID)
	ms.items.resolve(itemID, err == nil)
	ms.refreshAfter(ctx, "delete")

	if err != nil {
		logger.Log.Warn("failed to delete menu item", zap.String("itemID", itemID), zap.Error(err))
		return fmt.Errorf("ошибка удаления блюда %s: %w", itemID, err)
	}

	return nil
}

// Clear сбрасывает меню при завершении сессии
func (ms *MenuService) Clear() {
	ms.items.clear()
}

func (ms *MenuService) check(input models.MenuItemInput) error {
	if err := ms.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMenuItem, err)
	}
	return nil
}

func (ms *MenuService) refreshAfter(ctx context.Context, action string) {
	if err := ms.Refresh(ctx); err != nil {
		logger.Log.Warn("menu refresh after change failed", zap.String("action", action), zap.Error(err))
	}
}
