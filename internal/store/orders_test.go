package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/canteen-admin/internal/models"
)

func testOrders() []models.Order {
	return []models.Order{
		{ID: "1", BillNumber: "B-001", StudentName: "Анна", TotalAmount: 120, Status: models.StatusPaid},
		{ID: "2", BillNumber: "B-002", StudentName: "Борис", TotalAmount: 80, Status: models.StatusReady},
		{ID: "3", BillNumber: "C-100", StudentName: "Вера", TotalAmount: 45.5, Status: models.StatusDelivered},
	}
}

func TestOrderStore_ReplaceAllRoundTrip(t *testing.T) {
	s := NewOrderStore()
	assert.Empty(t, s.GetAll())

	orders := testOrders()
	s.ReplaceAll(orders)
	assert.Equal(t, orders, s.GetAll())

	s.ReplaceAll(nil)
	assert.Empty(t, s.GetAll())
}

func TestOrderStore_ReplaceAllKeepsFirstDuplicate(t *testing.T) {
	s := NewOrderStore()
	s.ReplaceAll([]models.Order{
		{ID: "1", Status: models.StatusPaid},
		{ID: "1", Status: models.StatusDelivered},
	})

	all := s.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusPaid, all[0].Status)
}

func TestOrderStore_GetAllReturnsCopy(t *testing.T) {
	s := NewOrderStore()
	s.ReplaceAll(testOrders())

	all := s.GetAll()
	all[0].Status = models.StatusDelivered

	order, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, models.StatusPaid, order.Status)
}

func TestOrderStore_ApplyLocalTransition(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		status       models.OrderStatus
		wantOK       bool
		wantPrevious models.OrderStatus
		wantPending  bool
	}{
		{
			name:         "Paid переводится в Ready",
			id:           "1",
			status:       models.StatusReady,
			wantOK:       true,
			wantPrevious: models.StatusPaid,
			wantPending:  true,
		},
		{
			name:         "Ready переводится в Delivered",
			id:           "2",
			status:       models.StatusDelivered,
			wantOK:       true,
			wantPrevious: models.StatusReady,
			wantPending:  true,
		},
		{
			name:         "Тот же статус не создает перехода",
			id:           "3",
			status:       models.StatusDelivered,
			wantOK:       true,
			wantPrevious: models.StatusDelivered,
		},
		{
			name:   "Отсутствующий заказ игнорируется",
			id:     "404",
			status: models.StatusReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewOrderStore()
			s.ReplaceAll(testOrders())
			before := s.GetAll()

			previous, ok := s.ApplyLocalTransition(tt.id, tt.status)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPending, s.Pending(tt.id))

			if !tt.wantOK {
				assert.Equal(t, before, s.GetAll())
				return
			}

			assert.Equal(t, tt.wantPrevious, previous)

			after := s.GetAll()
			require.Len(t, after, len(before))
			for i := range after {
				if after[i].ID == tt.id {
					assert.Equal(t, tt.status, after[i].Status)
					continue
				}
				assert.Equal(t, before[i], after[i])
			}
		})
	}
}

func TestOrderStore_PendingSurvivesStaleReplace(t *testing.T) {
	s := NewOrderStore()
	s.ReplaceAll(testOrders())

	_, ok := s.ApplyLocalTransition("1", models.StatusReady)
	require.True(t, ok)

	// Снимок получен до того, как бэкенд применил переход.
	s.ReplaceAll(testOrders())

	order, _ := s.Get("1")
	assert.Equal(t, models.StatusReady, order.Status)

	s.ResolveTransition("1", true)
	assert.False(t, s.Pending("1"))

	s.ReplaceAllSince(testOrders(), s.Ticket())
	order, _ = s.Get("1")
	assert.Equal(t, models.StatusPaid, order.Status, "снимок, запрошенный после подтверждения, авторитетен")
}

func TestOrderStore_ConfirmedStatusAndEarlierFetch(t *testing.T) {
	tests := []struct {
		name     string
		replace  func(s *OrderStore, before uint64)
		expected models.OrderStatus
	}{
		{
			name:     "Список без отметки времени не опускает подтвержденный статус",
			replace:  func(s *OrderStore, _ uint64) { s.ReplaceAll(testOrders()) },
			expected: models.StatusReady,
		},
		{
			name:     "Список, запрошенный до подтверждения, не опускает статус",
			replace:  func(s *OrderStore, before uint64) { s.ReplaceAllSince(testOrders(), before) },
			expected: models.StatusReady,
		},
		{
			name:     "Список, запрошенный после подтверждения, авторитетен",
			replace:  func(s *OrderStore, _ uint64) { s.ReplaceAllSince(testOrders(), s.Ticket()) },
			expected: models.StatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewOrderStore()
			s.ReplaceAll(testOrders())

			before := s.Ticket()
			s.ApplyLocalTransition("1", models.StatusReady)
			s.ResolveTransition("1", true)

			tt.replace(s, before)

			order, _ := s.Get("1")
			assert.Equal(t, tt.expected, order.Status)
		})
	}
}

func TestOrderStore_ConfirmedStatusReleasedOnceBackendCatchesUp(t *testing.T) {
	s := NewOrderStore()
	s.ReplaceAll(testOrders())

	before := s.Ticket()
	s.ApplyLocalTransition("1", models.StatusReady)
	s.ResolveTransition("1", true)

	caughtUp := testOrders()
	caughtUp[0].Status = models.StatusReady
	s.ReplaceAllSince(caughtUp, before)

	// Бэкенд догнал статус, дальше его ответы не поднимаются.
	s.ReplaceAllSince(testOrders(), before)
	order, _ := s.Get("1")
	assert.Equal(t, models.StatusPaid, order.Status)
}

func TestOrderStore_PendingDoesNotHideNewerBackendStatus(t *testing.T) {
	s := NewOrderStore()
	s.ReplaceAll(testOrders())
	s.ApplyLocalTransition("1", models.StatusReady)

	fresh := testOrders()
	fresh[0].Status = models.StatusDelivered
	s.ReplaceAll(fresh)

	order, _ := s.Get("1")
	assert.Equal(t, models.StatusDelivered, order.Status)
}

func TestOrderStore_ResolveRejectedRestoresPrevious(t *testing.T) {
	s := NewOrderStore()
	s.ReplaceAll(testOrders())
	s.ApplyLocalTransition("2", models.StatusDelivered)

	s.ResolveTransition("2", false)

	order, _ := s.Get("2")
	assert.Equal(t, models.StatusReady, order.Status)
	assert.False(t, s.Pending("2"))
}

func TestOrderStore_ResolveRejectedKeepsNewerSnapshot(t *testing.T) {
	s := NewOrderStore()
	s.ReplaceAll(testOrders())
	s.ApplyLocalTransition("1", models.StatusReady)

	fresh := testOrders()
	fresh[0].Status = models.StatusDelivered
	s.ReplaceAll(fresh)

	s.ResolveTransition("1", false)

	order, _ := s.Get("1")
	assert.Equal(t, models.StatusDelivered, order.Status)
}

func TestOrderStore_ClearDropsEverything(t *testing.T) {
	s := NewOrderStore()
	s.ReplaceAll(testOrders())
	s.ApplyLocalTransition("1", models.StatusReady)
	version := s.Version()

	s.Clear()

	assert.Empty(t, s.GetAll())
	assert.False(t, s.Pending("1"))
	assert.Greater(t, s.Version(), version)

	_, ok := s.Get("1")
	assert.False(t, ok)

	s.ReplaceAll(testOrders())
	s.ApplyLocalTransition("1", models.StatusReady)
	s.ResolveTransition("1", true)
	s.Clear()

	s.ReplaceAll(testOrders())
	order, _ := s.Get("1")
	assert.Equal(t, models.StatusPaid, order.Status, "подтвержденные статусы прошлой сессии забыты")
}

func TestOrderStore_ConcurrentReaders(t *testing.T) {
	s := NewOrderStore()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.ReplaceAll([]models.Order{
					{ID: fmt.Sprintf("%d-%d", i, j), Status: models.StatusPaid},
					{ID: "shared", Status: models.StatusPaid},
				})
				s.ApplyLocalTransition("shared", models.StatusReady)
				s.ResolveTransition("shared", j%2 == 0)
			}
		}(i)
	}

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				all := s.GetAll()
				assert.True(t, len(all) == 0 || len(all) == 2)
			}
		}()
	}

	wg.Wait()
}
