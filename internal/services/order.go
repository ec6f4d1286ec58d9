package services

import (
	"context"
	"time"

	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/store"
)

// OrderService представляет очередь заказов администратора: снимок и его фоновую синхронизацию.
type OrderService struct {
	store  *store.OrderStore
	poller *Poller[fetchedOrders]
}

// fetchedOrders список заказов и отметка снимка, взятая до запроса
type fetchedOrders struct {
	orders []models.Order
	ticket uint64
}

// Интерфейс бэкенда для чтения заказов
type orderBackend interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// NewOrderService создает новый экземпляр OrderService с опросом бэкенда раз в interval.
func NewOrderService(orders *store.OrderStore, backend orderBackend, interval time.Duration) *OrderService {
	return &OrderService{
		store: orders,
		poller: NewPoller(PollerConfig[fetchedOrders]{
			Name:     "orders",
			Interval: interval,
			Fetch: func(ctx context.Context) (fetchedOrders, error) {
				ticket := orders.Ticket()
				list, err := backend.ListOrders(ctx)
				return fetchedOrders{orders: list, ticket: ticket}, err
			},
			Apply: func(fetched fetchedOrders) {
				orders.ReplaceAllSince(fetched.orders, fetched.ticket)
			},
		}),
	}
}

// Orders возвращает видимые заказы с учетом фильтра и поиска по номеру чека
func (o *OrderService) Orders(filter models.StatusFilter, search string) ([]models.Order, models.SyncState) {
	return store.Project(o.store.GetAll(), filter, search), o.poller.State()
}

// Start запускает опрос очереди заказов
func (o *OrderService) Start(ctx context.Context) error {
	return o.poller.Start(ctx)
}

// Stop останавливает опрос
func (o *OrderService) Stop() {
	o.poller.Stop()
}

// Reconcile перечитывает очередь после изменения на бэкенде
func (o *OrderService) Reconcile(ctx context.Context) error {
	return o.poller.Reconcile(ctx)
}

// Clear сбрасывает снимок при завершении сессии
func (o *OrderService) Clear() {
	o.store.Clear()
}
