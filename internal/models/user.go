package models

import "github.com/Renal37/canteen-admin/internal/utils"

// Credentials данные для входа администратора.
type Credentials struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type SessionInfo struct {
	Active    bool               `json:"active"`
	ExpiresAt *utils.RFC3339Date `json:"expiresAt,omitempty"`
}

type TransitionOutcome string

const (
	OutcomeConfirmed TransitionOutcome = "confirmed"
	OutcomeRejected  TransitionOutcome = "rejected"
)

// TransitionRecord запись журнала переходов статусов.
type TransitionRecord struct {
	ID        string            `json:"id"`
	OrderID   string            `json:"orderId"`
	From      OrderStatus       `json:"from"`
	To        OrderStatus       `json:"to"`
	Outcome   TransitionOutcome `json:"outcome"`
	Error     string            `json:"error,omitempty"`
	CreatedAt utils.RFC3339Date `json:"createdAt"`
}
