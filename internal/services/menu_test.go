package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/canteen-admin/internal/models"
)

type stubMenuBackend struct {
	mu        sync.Mutex
	items     []models.MenuItem
	writeErr  error
	listCalls int
	created   []models.MenuItemInput

	// beforeWrite вызывается до того, как бэкенд применит изменение
	beforeWrite func()
}

func (s *stubMenuBackend) ListMenu(context.Context) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listCalls++
	return append([]models.MenuItem(nil), s.items...), nil
}

func (s *stubMenuBackend) GetMenuItem(_ context.Context, itemID string) (*models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == itemID {
			return &item, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubMenuBackend) write(apply func()) error {
	s.mu.Lock()
	hook := s.beforeWrite
	s.mu.Unlock()

	if hook != nil {
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	apply()
	return nil
}

func (s *stubMenuBackend) CreateMenuItem(_ context.Context, input models.MenuItemInput, _ *models.Upload) error {
	return s.write(func() {
		s.created = append(s.created, input)
		s.items = append(s.items, models.MenuItem{ID: "new", Name: input.Name, Price: *input.Price, Category: input.Category, Stock: *input.Stock})
	})
}

func (s *stubMenuBackend) UpdateMenuItem(_ context.Context, itemID string, input models.MenuItemInput, _ *models.Upload) error {
	return s.write(func() {
		for i := range s.items {
			if s.items[i].ID == itemID {
				s.items[i].Name = input.Name
				s.items[i].Price = *input.Price
			}
		}
	})
}

func (s *stubMenuBackend) DeleteMenuItem(_ context.Context, itemID string) error {
	return s.write(func() {
		kept := s.items[:0]
		for _, item := range s.items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		s.items = kept
	})
}

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: "m1", Name: "Samosa", Price: 15, Category: models.CategorySnacks, Stock: 20, SubCategory: &models.MenuSubCategory{ID: "s1"}},
		{ID: "m2", Name: "Masala Tea", Price: 10, Category: models.CategoryDrinks, Stock: 50},
		{ID: "m3", Name: "Veg Thali", Price: 60, Category: models.CategoryLunch, Stock: 10},
	}
}

func menuIDs(items []models.MenuItem) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.ID)
	}
	return result
}

func validInput(name string) models.MenuItemInput {
	price := 25.0
	stock := 5
	return models.MenuItemInput{Name: name, Price: &price, Category: models.CategoryDrinks, Stock: &stock}
}

func TestMenuService_ListFilters(t *testing.T) {
	stub := &stubMenuBackend{items: testMenu()}
	ms := NewMenuService(stub)

	tests := []struct {
		name     string
		category string
		search   string
		expected []string
	}{
		{name: "Все блюда", expected: []string{"m1", "m2", "m3"}},
		{name: "Только категория", category: models.CategoryDrinks, expected: []string{"m2"}},
		{name: "Поиск без учета регистра", search: "  TEA ", expected: []string{"m2"}},
		{name: "Категория и поиск без совпадений", category: models.CategoryLunch, search: "tea", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ms.List(context.Background(), tt.category, tt.search)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, menuIDs(items))
		})
	}

	assert.Equal(t, 1, stub.listCalls, "меню загружается один раз")
}

func TestMenuService_CreateValidatesInput(t *testing.T) {
	price := 10.0
	negative := -1

	tests := []struct {
		name  string
		input models.MenuItemInput
		valid bool
	}{
		{name: "Корректное блюдо", input: validInput("Coffee"), valid: true},
		{name: "Без названия", input: validInput("")},
		{name: "Без цены", input: models.MenuItemInput{Name: "Coffee", Category: models.CategoryDrinks, Stock: &negative}},
		{name: "Отрицательный остаток", input: models.MenuItemInput{Name: "Coffee", Price: &price, Category: models.CategoryDrinks, Stock: &negative}},
		{name: "Неизвестная категория", input: func() models.MenuItemInput {
			input := validInput("Coffee")
			input.Category = "Dinner"
			return input
		}()},
		{name: "Закуска без подкатегории", input: func() models.MenuItemInput {
			input := validInput("Samosa")
			input.Category = models.CategorySnacks
			return input
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubMenuBackend{}
			ms := NewMenuService(stub)

			err := ms.Create(context.Background(), tt.input, nil)
			if tt.valid {
				require.NoError(t, err)
				assert.Len(t, stub.created, 1)
				assert.Equal(t, 1, stub.listCalls, "после создания меню перечитывается")
				return
			}

			assert.ErrorIs(t, err, ErrInvalidMenuItem)
			assert.Empty(t, stub.created)
		})
	}
}

func TestMenuService_DeleteIsVisibleBeforeBackendCall(t *testing.T) {
	stub := &stubMenuBackend{items: testMenu()}
	ms := NewMenuService(stub)
	require.NoError(t, ms.Refresh(context.Background()))

	stub.beforeWrite = func() {
		// Перечитывание во время удаления не возвращает блюдо.
		assert.NoError(t, ms.Refresh(context.Background()))

		items, _ := ms.List(context.Background(), "", "")
		assert.Equal(t, []string{"m2", "m3"}, menuIDs(items))
	}

	require.NoError(t, ms.Delete(context.Background(), "m1"))

	items, _ := ms.List(context.Background(), "", "")
	assert.Equal(t, []string{"m2", "m3"}, menuIDs(items))
	assert.Equal(t, 3, stub.listCalls)
}

func TestMenuService_FailedChangesAreRestored(t *testing.T) {
	tests := []struct {
		name   string
		change func(ms *MenuService) error
	}{
		{
			name:   "Удаление",
			change: func(ms *MenuService) error { return ms.Delete(context.Background(), "m1") },
		},
		{
			name:   "Изменение",
			change: func(ms *MenuService) error { return ms.Update(context.Background(), "m2", validInput("Coffee"), nil) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubMenuBackend{items: testMenu(), writeErr: errors.New("boom")}
			ms := NewMenuService(stub)
			require.NoError(t, ms.Refresh(context.Background()))

			require.Error(t, tt.change(ms))

			items, _ := ms.List(context.Background(), "", "")
			assert.Equal(t, testMenu(), items)
		})
	}
}

func TestMenuService_UpdateIsVisibleBeforeBackendCall(t *testing.T) {
	stub := &stubMenuBackend{items: testMenu()}
	ms := NewMenuService(stub)
	require.NoError(t, ms.Refresh(context.Background()))

	var seen models.MenuItem
	stub.beforeWrite = func() {
		items, _ := ms.List(context.Background(), models.CategoryDrinks, "")
		require.Len(t, items, 1)
		seen = items[0]
	}

	require.NoError(t, ms.Update(context.Background(), "m2", validInput("Coffee"), nil))

	assert.Equal(t, "Coffee", seen.Name)
	assert.Equal(t, 25.0, seen.Price)
	assert.Equal(t, 5, seen.Stock)

	items, _ := ms.List(context.Background(), "", "coffee")
	assert.Equal(t, []string{"m2"}, menuIDs(items))
}

func TestMenuService_ClearForcesReload(t *testing.T) {
	stub := &stubMenuBackend{items: testMenu()}
	ms := NewMenuService(stub)
	require.NoError(t, ms.Refresh(context.Background()))

	ms.Clear()

	items, err := ms.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 2, stub.listCalls)
}
