package query

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrBadWindow indicates a month outside 1-12 after defaulting.
var ErrBadWindow = errors.New("month out of range")

// Window is a half-open date range [Start, End) at midnight UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// Filter returns the store condition matching dates inside the window.
func (w Window) Filter() bson.M {
	return bson.M{"date": bson.M{"$gte": w.Start, "$lt": w.End}}
}

// ResolveWindow computes the month window for the given month and year.
// A zero month or year defaults to the current UTC month or year; December
// rolls the end of the window into January of the following year. Months
// outside 1-12 return ErrBadWindow.
func ResolveWindow(month, year int, now time.Time) (Window, error) {
	now = now.UTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return Window{}, ErrBadWindow
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil
}
