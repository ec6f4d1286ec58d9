// Package store хранит последний известный снимок очереди заказов.
package store

import (
	"sync"

	"github.com/Renal37/canteen-admin/internal/models"
)

// pendingTransition оптимистичный переход, еще не подтвержденный бэкендом.
type pendingTransition struct {
	from models.OrderStatus
	to   models.OrderStatus
}

// floor подтвержденный бэкендом статус, ниже которого не опускают ответы,
// запрошенные до подтверждения.
type floor struct {
	status models.OrderStatus
	ticket uint64
}

// OrderStore снимок заказов, видимых администратору.
// Снимок заменяется целиком; читатели всегда получают либо старое, либо новое состояние.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []models.Order
	index   map[string]int
	pending map[string]pendingTransition
	floors  map[string]floor
	tickets uint64
	version uint64
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		index:   map[string]int{},
		pending: map[string]pendingTransition{},
		floors:  map[string]floor{},
	}
}

// Ticket отмечает начало запроса списка. Значение передается в ReplaceAllSince.
func (s *OrderStore) Ticket() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets++
	return s.tickets
}

// ReplaceAll атомарно заменяет снимок списком, момент запроса которого неизвестен.
// Повторяющийся id сохраняется только в первом вхождении.
// Оптимистичные и подтвержденные статусы не опускаются, пока бэкенд не догонит их.
func (s *OrderStore) ReplaceAll(orders []models.Order) {
	s.replace(orders, 0)
}

// ReplaceAllSince заменяет снимок списком, запрошенным после Ticket() == ticket.
// Подтвержденные до этого момента переходы бэкенд уже отражает, их статус берется из списка.
func (s *OrderStore) ReplaceAllSince(orders []models.Order, ticket uint64) {
	s.replace(orders, ticket)
}

func (s *OrderStore) replace(orders []models.Order, ticket uint64) {
	next := make([]models.Order, 0, len(orders))
	index := make(map[string]int, len(orders))

	for _, order := range orders {
		if _, ok := index[order.ID]; ok {
			continue
		}
		index[order.ID] = len(next)
		next = append(next, order)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, confirmed := range s.floors {
		if confirmed.ticket < ticket {
			delete(s.floors, id)
			continue
		}

		i, ok := index[id]
		if !ok {
			continue
		}
		if next[i].Status.Rank() < confirmed.status.Rank() {
			next[i].Status = confirmed.status
		} else {
			delete(s.floors, id)
		}
	}

	for id, transition := range s.pending {
		i, ok := index[id]
		if !ok {
			continue
		}
		if next[i].Status.Rank() < transition.to.Rank() {
			next[i].Status = transition.to
		}
	}

	s.orders = next
	s.index = index
	s.version++
}

// ApplyLocalTransition оптимистично меняет статус одного заказа.
// Если заказа нет в снимке, ничего не происходит и возвращается false.
func (s *OrderStore) ApplyLocalTransition(id string, status models.OrderStatus) (models.OrderStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return "", false
	}

	previous := s.orders[i].Status
	if previous == status {
		return previous, true
	}

	// Снимок могут читать вне блокировки, поэтому заказы копируются, а не меняются на месте.
	next := make([]models.Order, len(s.orders))
	copy(next, s.orders)
	next[i].Status = status

	s.orders = next
	s.pending[id] = pendingTransition{from: previous, to: status}
	s.version++

	return previous, true
}

// ResolveTransition снимает отметку о неподтвержденном переходе.
// Подтвержденный статус держится до списка, запрошенного после подтверждения.
// Если бэкенд переход отклонил, а заказ все еще в оптимистичном статусе, возвращается прежний статус.
func (s *OrderStore) ResolveTransition(id string, confirmed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transition, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)

	if confirmed {
		s.floors[id] = floor{status: transition.to, ticket: s.tickets}
		return
	}

	i, ok := s.index[id]
	if !ok || s.orders[i].Status != transition.to {
		return
	}

	next := make([]models.Order, len(s.orders))
	copy(next, s.orders)
	next[i].Status = transition.from

	s.orders = next
	s.version++
}

// GetAll возвращает текущий снимок в порядке последнего ReplaceAll.
func (s *OrderStore) GetAll() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Order, len(s.orders))
	copy(result, s.orders)

	return result
}

// Get возвращает заказ по id.
func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Order{}, false
	}

	return s.orders[i], true
}

// Pending сообщает, есть ли у заказа неподтвержденный переход.
func (s *OrderStore) Pending(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.pending[id]
	return ok
}

// Version растет при каждом изменении снимка.
func (s *OrderStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Clear очищает снимок при завершении сессии.
func (s *OrderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = nil
	s.index = map[string]int{}
	s.pending = map[string]pendingTransition{}
	s.floors = map[string]floor{}
	s.version++
}
