package models

import "github.com/Renal37/canteen-admin/internal/utils"

type CanteenStatus struct {
	IsOpen bool `json:"isOpen"`
}

type Feedback struct {
	ID           string            `json:"_id"`
	StudentName  string            `json:"studentName"`
	FeedbackText string            `json:"feedbackText"`
	IsRead       bool              `json:"isRead"`
	CreatedAt    utils.RFC3339Date `json:"createdAt"`
}

type NotificationLevel string

const (
	NotificationInfo  NotificationLevel = "info"
	NotificationError NotificationLevel = "error"
)

type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt utils.RFC3339Date `json:"createdAt"`
}
