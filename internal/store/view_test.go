package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Renal37/canteen-admin/internal/models"
)

func ids(orders []models.Order) []string {
	result := make([]string, 0, len(orders))
	for _, order := range orders {
		result = append(result, order.ID)
	}
	return result
}

func TestProject(t *testing.T) {
	orders := append(testOrders(),
		models.Order{ID: "4", BillNumber: "", Status: models.StatusPaid},
		models.Order{ID: "5", BillNumber: "b-777", Status: models.OrderStatus("Cancelled")},
	)

	tests := []struct {
		name   string
		filter models.StatusFilter
		search string
		want   []string
	}{
		{name: "Все заказы без поиска", filter: models.FilterAll, want: []string{"1", "2", "3", "4", "5"}},
		{name: "Только Paid", filter: models.FilterPaid, want: []string{"1", "4"}},
		{name: "Только Ready", filter: models.FilterReady, want: []string{"2"}},
		{name: "Только Delivered", filter: models.FilterDelivered, want: []string{"3"}},
		{name: "Поиск без учета регистра", filter: models.FilterAll, search: "b-0", want: []string{"1", "2"}},
		{name: "Поиск по подстроке", filter: models.FilterAll, search: "77", want: []string{"5"}},
		{name: "Поиск и фильтр вместе", filter: models.FilterPaid, search: "B", want: []string{"1"}},
		{name: "Пустой номер чека не находится", filter: models.FilterAll, search: "x", want: []string{}},
		{name: "Ничего не найдено", filter: models.FilterReady, search: "C-", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(orders, tt.filter, tt.search)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestProject_IsSubsetInOrder(t *testing.T) {
	orders := testOrders()

	for _, filter := range []models.StatusFilter{models.FilterAll, models.FilterPaid, models.FilterReady, models.FilterDelivered} {
		for _, search := range []string{"", "b", "0", "zzz"} {
			got := Project(orders, filter, search)

			j := 0
			for _, order := range got {
				for j < len(orders) && orders[j].ID != order.ID {
					j++
				}
				assert.Less(t, j, len(orders), "результат должен быть подпоследовательностью снимка")
				assert.True(t, filter.Matches(order.Status))
			}
		}
	}
}

func TestProject_EmptySnapshot(t *testing.T) {
	got := Project(nil, models.FilterAll, "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
