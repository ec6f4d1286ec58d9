package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// RFC3339Date метка времени в JSON в формате RFC 3339.
// Бэкенд столовой отдает даты с миллисекундами, консоль отдает их с точностью до секунды.
type RFC3339Date struct {
	time.Time
}

func (d RFC3339Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}

func (d *RFC3339Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("дата должна быть строкой: %w", err)
	}

	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return fmt.Errorf("дата не в формате RFC 3339: %w", err)
	}

	d.Time = parsed
	return nil
}
