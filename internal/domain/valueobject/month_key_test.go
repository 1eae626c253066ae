package valueobject

import (
	"testing"
	"time"
)

func TestMonthKeyRoundTrip(t *testing.T) {
	key := NewMonthKey(2024, time.June)
	if key.String() != "2024-06" {
		t.Fatalf("expected 2024-06, got %s", key)
	}
	if key.Year() != 2024 || key.Month() != time.June {
		t.Errorf("expected 2024/June, got %d/%s", key.Year(), key.Month())
	}

	parsed, err := ParseMonthKey("2024-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != key {
		t.Errorf("expected %s, got %s", key, parsed)
	}
}

func TestParseMonthKeyRejectsLegacyForms(t *testing.T) {
	// The zero-padded one-based scheme is canonical; unpadded and
	// zero-based forms must be rejected.
	for _, s := range []string{"2024-5", "2024-00", "2024-13", "2024/06", "24-06", ""} {
		if _, err := ParseMonthKey(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestMonthKeySortable(t *testing.T) {
	a := NewMonthKey(2024, time.September)
	b := NewMonthKey(2024, time.October)
	if !(a.String() < b.String()) {
		t.Errorf("expected %s to sort before %s", a, b)
	}
}

func TestMonthKeyDateOnDay(t *testing.T) {
	tests := []struct {
		name string
		key  MonthKey
		day  int
		want time.Time
	}{
		{"regular day", NewMonthKey(2024, time.June), 5, date(2024, time.June, 5)},
		{"day 31 clamped in february", NewMonthKey(2024, time.February), 31, date(2024, time.February, 29)},
		{"day 31 clamped in non leap year", NewMonthKey(2023, time.February), 31, date(2023, time.February, 28)},
		{"day 31 in a 30 day month", NewMonthKey(2024, time.April), 31, date(2024, time.April, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.DateOnDay(tt.day); !got.Equal(tt.want) {
				t.Errorf("DateOnDay(%d) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestMonthKeyBounds(t *testing.T) {
	key := NewMonthKey(2024, time.June)
	if !key.Start().Equal(date(2024, time.June, 1)) {
		t.Errorf("unexpected start: %v", key.Start())
	}
	if !key.End().Equal(date(2024, time.June, 30)) {
		t.Errorf("unexpected end: %v", key.End())
	}
}
