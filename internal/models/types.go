package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

// Date is a calendar date stored as YYYY-MM-DD text. The driver hands DATE
// columns back as time.Time, so Scan accepts both forms.
type Date string

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case string:
		*d = Date(trimDate(v))
	case []byte:
		*d = Date(trimDate(string(v)))
	default:
		return fmt.Errorf("models: cannot scan %T into Date", value)
	}
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

func (d Date) String() string { return string(d) }

func trimDate(s string) string {
	if len(s) > len(DateLayout) {
		if _, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			return s[:len(DateLayout)]
		}
	}
	return s
}

// TimeOfDay is an HH:MM time stored as text.
type TimeOfDay string

func (t *TimeOfDay) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = ""
	case time.Time:
		*t = TimeOfDay(v.Format(TimeOfDayLayout))
	case string:
		*t = TimeOfDay(v)
	case []byte:
		*t = TimeOfDay(string(v))
	default:
		return fmt.Errorf("models: cannot scan %T into TimeOfDay", value)
	}
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return string(t), nil
}

func (t TimeOfDay) String() string { return string(t) }
