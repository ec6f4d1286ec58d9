package utils

import (
	"encoding/json"
	"time"
)

// LocalDateLayout формат календарной даты, который ожидает бэкенд (YYYY-MM-DD).
const LocalDateLayout = "2006-01-02"

// LocalDate календарная дата в локальной зоне без приведения к UTC.
type LocalDate struct {
	time.Time
}

// NewLocalDate отбрасывает время суток, сохраняя локальную календарную дату.
func NewLocalDate(t time.Time) LocalDate {
	local := t.In(time.Local)
	return LocalDate{time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)}
}

// ParseLocalDate разбирает дату в формате YYYY-MM-DD в локальной зоне.
func ParseLocalDate(value string) (LocalDate, error) {
	t, err := time.ParseInLocation(LocalDateLayout, value, time.Local)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{t}, nil
}

func (d LocalDate) String() string {
	return d.Time.Format(LocalDateLayout)
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *LocalDate) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseLocalDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
