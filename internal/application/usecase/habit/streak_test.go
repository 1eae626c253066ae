package habit

import (
	"errors"
	"testing"
	"time"

	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func newTestHabit(f valueobject.Frequency) *entity.Habit {
	return &entity.Habit{Frequency: f}
}

func TestApplyCompletionFirstEver(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)

	if err := ApplyCompletion(h, date(2024, time.June, 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.CurrentStreak != 1 || h.LongestStreak != 1 {
		t.Errorf("got streak %d/%d, want 1/1", h.CurrentStreak, h.LongestStreak)
	}
	if h.LastCompletedAt == nil || !h.LastCompletedAt.Equal(date(2024, time.June, 10)) {
		t.Errorf("LastCompletedAt not set to completion instant: %v", h.LastCompletedAt)
	}
	if h.PreviousStreak == nil || *h.PreviousStreak != 0 {
		t.Errorf("snapshot streak = %v, want 0", h.PreviousStreak)
	}
	if h.PreviousCompletedAt != nil {
		t.Errorf("snapshot timestamp = %v, want nil", h.PreviousCompletedAt)
	}
}

func TestApplyCompletionConsecutiveDays(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)

	if err := ApplyCompletion(h, date(2024, time.June, 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ApplyCompletion(h, date(2024, time.June, 11)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.CurrentStreak != 2 || h.LongestStreak != 2 {
		t.Errorf("got streak %d/%d, want 2/2", h.CurrentStreak, h.LongestStreak)
	}
}

func TestApplyCompletionGapRestartsStreak(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)
	last := date(2024, time.June, 11)
	h.LastCompletedAt = &last
	h.CurrentStreak = 5
	h.LongestStreak = 5

	if err := ApplyCompletion(h, date(2024, time.June, 14)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after gap", h.CurrentStreak)
	}
	if h.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d, want 5 (never lowered)", h.LongestStreak)
	}
}

func TestApplyCompletionSamePeriodRejected(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)
	if err := ApplyCompletion(h, date(2024, time.June, 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ApplyCompletion(h, time.Date(2024, time.June, 10, 23, 0, 0, 0, time.UTC))
	if !errors.Is(err, domainerror.ErrHabitAlreadyCompleted) {
		t.Errorf("got %v, want ErrHabitAlreadyCompleted", err)
	}
	if h.CurrentStreak != 1 {
		t.Errorf("rejected completion mutated streak: %d", h.CurrentStreak)
	}
}

func TestApplyCompletionWeeklyAndMonthly(t *testing.T) {
	tests := []struct {
		name       string
		frequency  valueobject.Frequency
		last       time.Time
		next       time.Time
		wantStreak int
	}{
		{
			// Sunday closes the week that started the previous Monday.
			name:       "weekly sunday to monday is consecutive",
			frequency:  valueobject.FrequencyWeekly,
			last:       date(2024, time.June, 9),
			next:       date(2024, time.June, 10),
			wantStreak: 4,
		},
		{
			name:       "weekly two week gap restarts",
			frequency:  valueobject.FrequencyWeekly,
			last:       date(2024, time.June, 3),
			next:       date(2024, time.June, 17),
			wantStreak: 1,
		},
		{
			name:       "monthly december to january wraps the year",
			frequency:  valueobject.FrequencyMonthly,
			last:       date(2023, time.December, 28),
			next:       date(2024, time.January, 2),
			wantStreak: 4,
		},
		{
			name:       "monthly skipped month restarts",
			frequency:  valueobject.FrequencyMonthly,
			last:       date(2024, time.April, 15),
			next:       date(2024, time.June, 15),
			wantStreak: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHabit(tt.frequency)
			h.LastCompletedAt = &tt.last
			h.CurrentStreak = 3
			h.LongestStreak = 3

			if err := ApplyCompletion(h, tt.next); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h.CurrentStreak != tt.wantStreak {
				t.Errorf("CurrentStreak = %d, want %d", h.CurrentStreak, tt.wantStreak)
			}
		})
	}
}

func TestLongestStreakMonotonic(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)
	days := []time.Time{
		date(2024, time.June, 1),
		date(2024, time.June, 2),
		date(2024, time.June, 3), // streak 3
		date(2024, time.June, 7), // gap, streak restarts
		date(2024, time.June, 8),
	}

	longest := 0
	for _, d := range days {
		if err := ApplyCompletion(h, d); err != nil {
			t.Fatalf("unexpected error on %v: %v", d, err)
		}
		if h.LongestStreak < longest {
			t.Fatalf("LongestStreak decreased from %d to %d at %v", longest, h.LongestStreak, d)
		}
		if h.LongestStreak < h.CurrentStreak {
			t.Fatalf("invariant violated: longest %d < current %d", h.LongestStreak, h.CurrentStreak)
		}
		longest = h.LongestStreak
	}

	if h.CurrentStreak != 2 || h.LongestStreak != 3 {
		t.Errorf("got streak %d/%d, want 2/3", h.CurrentStreak, h.LongestStreak)
	}
}

func TestApplyUncompletionRestoresSnapshot(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)
	last := date(2024, time.June, 10)
	h.LastCompletedAt = &last
	h.CurrentStreak = 5
	h.LongestStreak = 8

	now := date(2024, time.June, 11)
	if err := ApplyCompletion(h, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.CurrentStreak != 6 {
		t.Fatalf("CurrentStreak = %d, want 6", h.CurrentStreak)
	}

	if err := ApplyUncompletion(h, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.CurrentStreak != 5 {
		t.Errorf("CurrentStreak = %d, want restored 5", h.CurrentStreak)
	}
	if h.LastCompletedAt == nil || !h.LastCompletedAt.Equal(last) {
		t.Errorf("LastCompletedAt = %v, want restored %v", h.LastCompletedAt, last)
	}
	if h.LongestStreak != 8 {
		t.Errorf("LongestStreak = %d, want 8 (never lowered by undo)", h.LongestStreak)
	}
	if h.PreviousStreak != nil || h.PreviousCompletedAt != nil {
		t.Errorf("snapshot not cleared after undo")
	}
}

func TestApplyUncompletionFirstCompletion(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)
	now := date(2024, time.June, 10)

	if err := ApplyCompletion(h, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ApplyUncompletion(h, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.CurrentStreak != 0 || h.LastCompletedAt != nil {
		t.Errorf("got {%d, %v}, want zeroed state", h.CurrentStreak, h.LastCompletedAt)
	}
}

func TestApplyUncompletionNotCompletedThisPeriod(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)
	last := date(2024, time.June, 10)
	h.LastCompletedAt = &last
	h.CurrentStreak = 3
	h.LongestStreak = 3

	err := ApplyUncompletion(h, date(2024, time.June, 12))
	if !errors.Is(err, domainerror.ErrHabitNotCompleted) {
		t.Errorf("got %v, want ErrHabitNotCompleted", err)
	}
	if h.CurrentStreak != 3 {
		t.Errorf("rejected undo mutated streak: %d", h.CurrentStreak)
	}
}

// A complete/uncomplete/complete cycle within one period recomputes the third
// toggle from the restored base rather than regenerating the consumed
// snapshot. With a one-deep snapshot the cycle is stable: the third toggle
// reproduces the first completion's state.
func TestToggleCycleWithinPeriod(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)
	last := date(2024, time.June, 10)
	h.LastCompletedAt = &last
	h.CurrentStreak = 2
	h.LongestStreak = 2

	now := date(2024, time.June, 11)
	if err := ApplyCompletion(h, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ApplyUncompletion(h, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ApplyCompletion(h, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3 after re-complete", h.CurrentStreak)
	}
	if h.PreviousStreak == nil || *h.PreviousStreak != 2 {
		t.Errorf("snapshot streak = %v, want 2 (recomputed from restored base)", h.PreviousStreak)
	}
	if err := ApplyUncompletion(h, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.CurrentStreak != 2 || h.LastCompletedAt == nil || !h.LastCompletedAt.Equal(last) {
		t.Errorf("fourth toggle got {%d, %v}, want restored {2, %v}", h.CurrentStreak, h.LastCompletedAt, last)
	}
}

func TestCompletedInPeriod(t *testing.T) {
	sunday := date(2024, time.June, 9)

	tests := []struct {
		name      string
		frequency valueobject.Frequency
		last      *time.Time
		ref       time.Time
		want      bool
	}{
		{"never completed", valueobject.FrequencyDaily, nil, date(2024, time.June, 10), false},
		{"same day", valueobject.FrequencyDaily, ptrTime(date(2024, time.June, 10)), date(2024, time.June, 10), true},
		{"previous day", valueobject.FrequencyDaily, ptrTime(date(2024, time.June, 9)), date(2024, time.June, 10), false},
		{"sunday not in next week", valueobject.FrequencyWeekly, &sunday, date(2024, time.June, 10), false},
		{"same week", valueobject.FrequencyWeekly, ptrTime(date(2024, time.June, 10)), date(2024, time.June, 14), true},
		{"same month", valueobject.FrequencyMonthly, ptrTime(date(2024, time.June, 1)), date(2024, time.June, 30), true},
		{"previous month", valueobject.FrequencyMonthly, ptrTime(date(2024, time.May, 31)), date(2024, time.June, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHabit(tt.frequency)
			h.LastCompletedAt = tt.last
			if got := CompletedInPeriod(h, tt.ref); got != tt.want {
				t.Errorf("CompletedInPeriod = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResetStreakState(t *testing.T) {
	h := newTestHabit(valueobject.FrequencyDaily)
	if err := ApplyCompletion(h, date(2024, time.June, 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ApplyCompletion(h, date(2024, time.June, 11)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ResetStreakState(h)

	if h.CurrentStreak != 0 || h.LongestStreak != 0 {
		t.Errorf("counters not zeroed: %d/%d", h.CurrentStreak, h.LongestStreak)
	}
	if h.LastCompletedAt != nil || h.PreviousStreak != nil || h.PreviousCompletedAt != nil {
		t.Errorf("timestamps and snapshot not cleared")
	}
}

func ptrTime(t time.Time) *time.Time { return &t }
