package valueobject

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday maps to itself", date(2024, time.June, 10), date(2024, time.June, 10)},
		{"wednesday maps to monday", date(2024, time.June, 12), date(2024, time.June, 10)},
		{"sunday belongs to previous monday", date(2024, time.June, 16), date(2024, time.June, 10)},
		{"week spanning month boundary", date(2024, time.July, 2), date(2024, time.July, 1)},
		{"week spanning year boundary", date(2025, time.January, 1), date(2024, time.December, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSamePeriod(t *testing.T) {
	tests := []struct {
		name string
		freq Frequency
		a, b time.Time
		want bool
	}{
		{"same day", FrequencyDaily, date(2024, time.June, 10), time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC), true},
		{"adjacent days differ", FrequencyDaily, date(2024, time.June, 10), date(2024, time.June, 11), false},
		{"monday and sunday share a week", FrequencyWeekly, date(2024, time.June, 10), date(2024, time.June, 16), true},
		{"sunday and next monday differ", FrequencyWeekly, date(2024, time.June, 16), date(2024, time.June, 17), false},
		{"first and last of month", FrequencyMonthly, date(2024, time.June, 1), date(2024, time.June, 30), true},
		{"same month different year", FrequencyMonthly, date(2023, time.June, 15), date(2024, time.June, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SamePeriod(tt.freq, tt.a, tt.b); got != tt.want {
				t.Errorf("SamePeriod(%s, %v, %v) = %v, want %v", tt.freq, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsPreviousPeriod(t *testing.T) {
	tests := []struct {
		name      string
		freq      Frequency
		last, ref time.Time
		want      bool
	}{
		{"yesterday", FrequencyDaily, date(2024, time.June, 10), date(2024, time.June, 11), true},
		{"two days ago is a gap", FrequencyDaily, date(2024, time.June, 10), date(2024, time.June, 12), false},
		{"same day is not previous", FrequencyDaily, date(2024, time.June, 10), date(2024, time.June, 10), false},
		{"previous week any weekday", FrequencyWeekly, date(2024, time.June, 5), date(2024, time.June, 14), true},
		{"two weeks back is a gap", FrequencyWeekly, date(2024, time.June, 5), date(2024, time.June, 21), false},
		{"previous month", FrequencyMonthly, date(2024, time.May, 31), date(2024, time.June, 1), true},
		{"december precedes january", FrequencyMonthly, date(2023, time.December, 15), date(2024, time.January, 2), true},
		{"skipped month is a gap", FrequencyMonthly, date(2024, time.April, 15), date(2024, time.June, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPreviousPeriod(tt.freq, tt.last, tt.ref); got != tt.want {
				t.Errorf("IsPreviousPeriod(%s, %v, %v) = %v, want %v", tt.freq, tt.last, tt.ref, got, tt.want)
			}
		})
	}
}

func TestFrequencyValid(t *testing.T) {
	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly} {
		if !f.Valid() {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if Frequency("yearly").Valid() {
		t.Error("expected unknown frequency to be invalid")
	}
}
