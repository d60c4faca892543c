package utils

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"eldercare_booking/config"
)

// CustomDate nhận cả "YYYY-MM-DD" (hiểu theo giờ ICT) lẫn RFC3339 từ form đặt lịch
type CustomDate struct {
	time.Time
}

var customDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func ParseCustomDate(s string) (CustomDate, error) {
	s = strings.TrimSpace(s)
	for _, layout := range customDateLayouts {
		if t, err := time.ParseInLocation(layout, s, config.BusinessLocation); err == nil {
			return CustomDate{t}, nil
		}
	}
	return CustomDate{}, fmt.Errorf("invalid date format: %s", s)
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	parsed, err := ParseCustomDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d CustomDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *CustomDate) Scan(value interface{}) error {
	if value == nil {
		*d = CustomDate{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = CustomDate{v}
		return nil
	case string:
		parsed, err := ParseCustomDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseCustomDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("unsupported scan type for CustomDate: %T", value)
	}
}

func DatePtr(t time.Time) *CustomDate {
	return &CustomDate{t}
}
