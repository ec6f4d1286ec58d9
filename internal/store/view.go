package store

import (
	"strings"

	"github.com/Renal37/canteen-admin/internal/models"
)

// Project возвращает заказы, прошедшие фильтр по статусу и поиск по номеру чека.
// Порядок исходного снимка сохраняется. Поиск регистронезависимый, по подстроке;
// заказ без номера чека не находится непустым запросом.
func Project(orders []models.Order, filter models.StatusFilter, search string) []models.Order {
	term := strings.ToLower(search)
	result := make([]models.Order, 0, len(orders))

	for _, order := range orders {
		if !filter.Matches(order.Status) {
			continue
		}

		if term != "" && !strings.Contains(strings.ToLower(order.BillNumber), term) {
			continue
		}

		result = append(result, order)
	}

	return result
}
