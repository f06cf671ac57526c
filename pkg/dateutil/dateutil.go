package dateutil

import (
	"fmt"
	"time"
)

const ISOLayout = "2006-01-02"

// ParseISO разбирает дату строго в формате YYYY-MM-DD.
func ParseISO(s string) (time.Time, error) {
	if len(s) != len(ISOLayout) {
		return time.Time{}, fmt.Errorf("некоректна дата: %q", s)
	}
	t, err := time.ParseInLocation(ISOLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("некоректна дата: %q", s)
	}
	return t, nil
}

func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// DatesBetween возвращает все дни диапазона, включая границы.
func DatesBetween(start, end time.Time) ([]time.Time, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("кінцева дата %s раніше початкової %s", FormatISO(end), FormatISO(start))
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// DayOnly обрезает значение даты из хранилища до дня.
// Хранилище может присылать и "2025-06-01", и "2025-06-01T00:00:00.000Z".
func DayOnly(v string) (time.Time, bool) {
	if len(v) < len(ISOLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(ISOLayout, v[:len(ISOLayout)], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
