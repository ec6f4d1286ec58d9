package services

import (
	"sync"
	"time"

	"github.com/Renal37/canteen-admin/internal/logger"
	"github.com/Renal37/canteen-admin/internal/models"
	"github.com/Renal37/canteen-admin/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultNotificationLimit = 100

// NotificationService накапливает уведомления для администратора до следующего чтения.
// При переполнении вытесняются самые старые.
type NotificationService struct {
	mu      sync.Mutex
	entries []models.Notification
	limit   int
}

func NewNotificationService() *NotificationService {
	return &NotificationService{limit: defaultNotificationLimit}
}

// Push добавляет уведомление
func (n *NotificationService) Push(level models.NotificationLevel, message string) models.Notification {
	notification := models.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: utils.RFC3339Date{Time: time.Now()},
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.entries) >= n.limit {
		dropped := len(n.entries) - n.limit + 1
		n.entries = append(n.entries[:0:0], n.entries[dropped:]...)
		logger.Log.Debug("notifications dropped", zap.Int("count", dropped))
	}
	n.entries = append(n.entries, notification)

	return notification
}

// Drain возвращает накопленные уведомления в порядке поступления и очищает список
func (n *NotificationService) Drain() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	result := n.entries
	n.entries = nil

	if result == nil {
		return []models.Notification{}
	}

	return result
}
