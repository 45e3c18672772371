package dto

import (
	"fmt"
	"strings"
	"time"
)

// DateTime принимает метки времени как с зоной (RFC3339), так и без нее
// ("2025-01-01T00:00:00") - фронт мини-аппа шлет локальное время без зоны.
// Наружу всегда отдается RFC3339.
type DateTime struct {
	time.Time
}

const noZoneLayout = "2006-01-02T15:04:05"

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(noZoneLayout, s)
	if err != nil {
		return fmt.Errorf("invalid datetime %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(time.RFC3339) + `"`), nil
}
