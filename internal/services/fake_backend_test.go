package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Renal37/canteen-admin/internal/backend"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/session"
	"github.com/Renal37/canteen-admin/internal/store"
	"github.com/Renal37/canteen-admin/internal/utils"
)

// fixtureOrderDate дата, которую получают заказы фейка без своей даты
var fixtureOrderDate = utils.RFC3339Date{Time: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}

// fakeCanteenAPI минимальный бэкенд столовой для тестов синхронизации
type fakeCanteenAPI struct {
	mu     sync.Mutex
	orders []models.Order

	// rejectStatus ненулевой, если переходы должны отклоняться с этим кодом
	rejectStatus int
	// applyTransitions определяет, меняет ли бэкенд статус при успешном переходе
	applyTransitions bool
	// beforeTransition вызывается в обработчике перехода до ответа
	beforeTransition func(orderID string)
	// afterList вызывается с номером вызова списка, когда ответ уже собран, но еще не отправлен
	afterList func(call int32)

	listCalls       atomic.Int32
	transitionCalls atomic.Int32
}

func newFakeCanteenAPI(orders ...models.Order) *fakeCanteenAPI {
	for i := range orders {
		if orders[i].OrderDate.IsZero() {
			orders[i].OrderDate = fixtureOrderDate
		}
	}
	return &fakeCanteenAPI{orders: orders, applyTransitions: true}
}

func (f *fakeCanteenAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")

	switch {
	case r.Method == http.MethodGet && path == "/admin/orders":
		call := f.listCalls.Add(1)

		f.mu.Lock()
		data, _ := json.Marshal(f.orders)
		hook := f.afterList
		f.mu.Unlock()

		if hook != nil {
			hook(call)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)

	case r.Method == http.MethodPatch && strings.HasPrefix(path, "/admin/orders/"):
		f.transitionCalls.Add(1)

		parts := strings.Split(strings.TrimPrefix(path, "/admin/orders/"), "/")
		id, action := parts[0], parts[1]

		f.mu.Lock()
		hook := f.beforeTransition
		f.mu.Unlock()

		if hook != nil {
			hook(id)
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		if f.rejectStatus != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.rejectStatus)
			_, _ = w.Write([]byte(`{"msg":"transition rejected"}`))
			return
		}

		for i := range f.orders {
			if f.orders[i].ID != id {
				continue
			}

			if f.applyTransitions {
				if action == "mark-ready" {
					f.orders[i].Status = models.StatusReady
				} else {
					f.orders[i].Status = models.StatusDelivered
				}
			}

			data, _ := json.Marshal(f.orders[i])
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(data)
			return
		}

		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"msg":"order not found"}`))

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeCanteenAPI) rejectTransitions(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rejectStatus = status
}

func (f *fakeCanteenAPI) ignoreTransitions() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.applyTransitions = false
}

func (f *fakeCanteenAPI) onTransition(hook func(orderID string)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.beforeTransition = hook
}

func (f *fakeCanteenAPI) onList(hook func(call int32)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.afterList = hook
}

func (f *fakeCanteenAPI) status(id string) models.OrderStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, order := range f.orders {
		if order.ID == id {
			return order.Status
		}
	}
	return ""
}

// syncFixture связка store, poller и executor поверх фейкового бэкенда
type syncFixture struct {
	api         *fakeCanteenAPI
	session     *session.Session
	client      *backend.Client
	store       *store.OrderStore
	orders      *OrderService
	notifier    *NotificationService
	transitions *TransitionService
}

func newSyncFixture(t *testing.T, api *fakeCanteenAPI, opts ...TransitionOption) *syncFixture {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	sess := session.New()
	require.NoError(t, sess.Begin("token"))

	client := backend.New(server.URL+"/api", sess, backend.WithHTTPClient(server.Client()))
	orders := store.NewOrderStore()
	orderService := NewOrderService(orders, client, time.Hour)
	notifier := NewNotificationService()

	queue := NewJobQueueService(context.Background(), 10, 1)
	t.Cleanup(queue.Shutdown)

	sess.OnEnd(func(error) {
		orderService.Stop()
		orderService.Clear()
	})

	transitions := NewTransitionService(orders, client, orderService, notifier, queue, opts...)

	require.NoError(t, orderService.Start(context.Background()))
	t.Cleanup(orderService.Stop)

	return &syncFixture{
		api:         api,
		session:     sess,
		client:      client,
		store:       orders,
		orders:      orderService,
		notifier:    notifier,
		transitions: transitions,
	}
}

func (f *syncFixture) statusOf(t *testing.T, id string) models.OrderStatus {
	t.Helper()

	order, ok := f.store.Get(id)
	require.True(t, ok, "заказ %s должен быть в снимке", id)
	return order.Status
}

func statuses(orders []models.Order) map[string]models.OrderStatus {
	result := make(map[string]models.OrderStatus, len(orders))
	for _, order := range orders {
		result[order.ID] = order.Status
	}
	return result
}
