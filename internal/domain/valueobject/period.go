// Package valueobject defines immutable domain value types and the date
// arithmetic shared by the habit streak engine and the recurring reconciler.
package valueobject

import "time"

// Frequency represents how often a habit is expected to be completed.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether the frequency is one of the known values.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// DayStart returns midnight of the calendar day containing t, in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Monday of the week containing t.
// Sunday belongs to the week that started the previous Monday.
func WeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return time.Date(t.Year(), t.Month(), t.Day()-(weekday-1), 0, 0, 0, 0, t.Location())
}

// MonthStart returns midnight of the first day of the month containing t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PeriodStart returns the start of the frequency-sized period containing t.
func PeriodStart(f Frequency, t time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return WeekStart(t)
	case FrequencyMonthly:
		return MonthStart(t)
	default:
		return DayStart(t)
	}
}

// SamePeriod reports whether a and b fall within the same frequency-sized
// period (same day, same Monday-start week, or same calendar month).
func SamePeriod(f Frequency, a, b time.Time) bool {
	return PeriodStart(f, a).Equal(PeriodStart(f, b))
}

// PreviousPeriodStart returns the start of the period immediately preceding
// the one containing t. Month arithmetic wraps through year boundaries.
func PreviousPeriodStart(f Frequency, t time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return WeekStart(t).AddDate(0, 0, -7)
	case FrequencyMonthly:
		return MonthStart(t).AddDate(0, -1, 0)
	default:
		return DayStart(t).AddDate(0, 0, -1)
	}
}

// IsPreviousPeriod reports whether last falls in the period immediately
// preceding the period containing ref.
func IsPreviousPeriod(f Frequency, last, ref time.Time) bool {
	return PeriodStart(f, last).Equal(PreviousPeriodStart(f, ref))
}
