package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/canteen-admin/internal/models"
)

func TestNotificationService_PushAndDrain(t *testing.T) {
	ns := NewNotificationService()

	first := ns.Push(models.NotificationError, "Заказ 1 не переведен")
	ns.Push(models.NotificationInfo, "Сессия начата")

	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	drained := ns.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, "Заказ 1 не переведен", drained[0].Message)
	assert.Equal(t, models.NotificationInfo, drained[1].Level)

	assert.Empty(t, ns.Drain())
	assert.NotNil(t, ns.Drain())
}

func TestNotificationService_DropsOldestWhenFull(t *testing.T) {
	ns := NewNotificationService()

	for i := 0; i < defaultNotificationLimit+5; i++ {
		ns.Push(models.NotificationInfo, fmt.Sprintf("message %d", i))
	}

	drained := ns.Drain()
	require.Len(t, drained, defaultNotificationLimit)
	assert.Equal(t, "message 5", drained[0].Message)
	assert.Equal(t, fmt.Sprintf("message %d", defaultNotificationLimit+4), drained[len(drained)-1].Message)
}
