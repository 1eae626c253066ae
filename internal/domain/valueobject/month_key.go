package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MonthKey identifies a calendar month as a sortable "YYYY-MM" string with a
// one-based, zero-padded month. It is the single month identifier scheme used
// across recurring items, budgets and dashboards.
type MonthKey string

var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// NewMonthKey builds a MonthKey from a year and month.
func NewMonthKey(year int, month time.Month) MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", year, int(month)))
}

// MonthKeyFor returns the MonthKey of the month containing t.
func MonthKeyFor(t time.Time) MonthKey {
	return NewMonthKey(t.Year(), t.Month())
}

// ParseMonthKey validates and returns a MonthKey from its string form.
func ParseMonthKey(s string) (MonthKey, error) {
	if !monthKeyRegex.MatchString(s) {
		return "", fmt.Errorf("invalid month key %q: expected YYYY-MM", s)
	}
	return MonthKey(s), nil
}

// Valid reports whether the key is a well-formed YYYY-MM identifier.
func (k MonthKey) Valid() bool {
	return monthKeyRegex.MatchString(string(k))
}

// Year returns the calendar year of the key.
func (k MonthKey) Year() int {
	y, _ := strconv.Atoi(string(k)[:4])
	return y
}

// Month returns the calendar month of the key.
func (k MonthKey) Month() time.Month {
	m, _ := strconv.Atoi(string(k)[5:])
	return time.Month(m)
}

// Start returns midnight UTC of the first day of the month.
func (k MonthKey) Start() time.Time {
	return time.Date(k.Year(), k.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight UTC of the last day of the month.
func (k MonthKey) End() time.Time {
	return k.Start().AddDate(0, 1, -1)
}

// DateOnDay returns the given day-of-month within this month, clamped to the
// month's last day (a day 31 item falls due on Feb 28/29).
func (k MonthKey) DateOnDay(day int) time.Time {
	last := k.End().Day()
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(k.Year(), k.Month(), day, 0, 0, 0, 0, time.UTC)
}

// String returns the canonical string form.
func (k MonthKey) String() string {
	return string(k)
}
