package utils

import (
	"errors"
	"time"
)

var ErrEmptyDate = errors.New("empty date")

func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}

	return time.Parse(time.DateOnly, dateStr)
}

// DaysAgo devolve a data (sem horário) de n dias antes de now
func DaysAgo(now time.Time, n int) time.Time {
	y, m, d := now.AddDate(0, 0, -n).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
