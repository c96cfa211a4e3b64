package itinerary

import (
	"errors"
	"fmt"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("end date is before start date")
)

// DurationDays counts the calendar days from start to end, both inclusive.
func DurationDays(start, end string) (int, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0, fmt.Errorf("%w: start_date %q: expected YYYY-MM-DD", ErrInvalidDate, start)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("%w: end_date %q: expected YYYY-MM-DD", ErrInvalidDate, end)
	}
	if e.Before(s) {
		return 0, fmt.Errorf("%w: %s < %s", ErrInvalidDateRange, end, start)
	}
	// Unix seconds; time.Duration saturates past ~292 years.
	return int((e.Unix()-s.Unix())/secondsPerDay) + 1, nil
}
