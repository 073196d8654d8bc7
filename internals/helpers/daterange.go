package helper

import (
	"fmt"
	"strings"
	"time"
)

var dayLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// DayStart = 00:00:00.000 pada tanggal t di loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayEnd = 23:59:59.999 pada tanggal t di loc.
func DayEnd(t time.Time, loc *time.Location) time.Time {
	return DayStart(t, loc).AddDate(0, 0, 1).Add(-time.Millisecond)
}

func ParseDay(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", raw)
}

// ParseDateRange returns inclusive day bounds; an empty side stays nil.
func ParseDateRange(startRaw, endRaw string, loc *time.Location) (from, to *time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	if strings.TrimSpace(startRaw) != "" {
		t, err := ParseDay(startRaw, loc)
		if err != nil {
			return nil, nil, err
		}
		start := DayStart(t, loc)
		from = &start
	}
	if strings.TrimSpace(endRaw) != "" {
		t, err := ParseDay(endRaw, loc)
		if err != nil {
			return nil, nil, err
		}
		end := DayEnd(t, loc)
		to = &end
	}
	return from, to, nil
}
