package models

import (
	"github.com/Renal37/canteen-admin/internal/utils"
)

type OrderStatus string

const (
	StatusPaid      OrderStatus = "Paid"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
)

// Rank возвращает позицию статуса в жизненном цикле заказа.
// Для неизвестных статусов возвращается 0.
func (s OrderStatus) Rank() int {
	switch s {
	case StatusPaid:
		return 1
	case StatusReady:
		return 2
	case StatusDelivered:
		return 3
	default:
		return 0
	}
}

// Known сообщает, является ли статус одним из трех канонических.
func (s OrderStatus) Known() bool {
	return s.Rank() > 0
}

// Terminal сообщает, что из статуса больше нет переходов.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered
}

// CanAdvanceTo проверяет, что переход из s в target допустим: только на один шаг вперед.
func (s OrderStatus) CanAdvanceTo(target OrderStatus) bool {
	return s.Known() && target.Known() && target.Rank() == s.Rank()+1
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID            string            `json:"_id"`
	BillNumber    string            `json:"billNumber"`
	StudentName   string            `json:"studentName"`
	OrderDate     utils.RFC3339Date `json:"orderDate"`
	Items         []OrderItem       `json:"items"`
	TotalAmount   float64           `json:"totalAmount"`
	PaymentMethod string            `json:"paymentMethod"`
	Status        OrderStatus       `json:"status"`
}

// StatusFilter фильтр очереди заказов по статусу.
type StatusFilter string

const (
	FilterAll       StatusFilter = "All"
	FilterPaid      StatusFilter = StatusFilter(StatusPaid)
	FilterReady     StatusFilter = StatusFilter(StatusReady)
	FilterDelivered StatusFilter = StatusFilter(StatusDelivered)
)

// ParseStatusFilter разбирает значение фильтра. Пустая строка означает All.
func ParseStatusFilter(value string) (StatusFilter, bool) {
	switch StatusFilter(value) {
	case "", FilterAll:
		return FilterAll, true
	case FilterPaid, FilterReady, FilterDelivered:
		return StatusFilter(value), true
	default:
		return "", false
	}
}

// Matches проверяет, проходит ли статус через фильтр.
func (f StatusFilter) Matches(status OrderStatus) bool {
	if f == FilterAll {
		return true
	}

	return status.Known() && OrderStatus(f) == status
}
