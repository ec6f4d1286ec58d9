package models

import "time"

// SyncState состояние фоновой синхронизации одного ресурса.
type SyncState struct {
	Running     bool      `json:"running"`
	Loaded      bool      `json:"loaded"`
	Stale       bool      `json:"stale"`
	LastError   string    `json:"lastError,omitempty"`
	LastSuccess time.Time `json:"lastSuccess"`
}
