// Package habit contains habit-related use cases and the streak engine.
package habit

import (
	"time"

	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// CompletedInPeriod reports whether the habit counts as completed for the
// period (day, Monday-start week, or calendar month) containing ref.
func CompletedInPeriod(h *entity.Habit, ref time.Time) bool {
	if h.LastCompletedAt == nil {
		return false
	}
	return valueobject.SamePeriod(h.Frequency, *h.LastCompletedAt, ref)
}

// ApplyCompletion records a completion at now and recomputes the streak
// counters in place.
//
// The streak extends only when the last completion fell in the period
// immediately preceding now's period; any gap restarts the streak at 1.
// A streak that expired is not zeroed by any background job — it simply
// stops counting as completed until the next completion recomputes it.
//
// The pre-completion {CurrentStreak, LastCompletedAt} pair is snapshotted
// into the Previous* fields so a single uncomplete can restore it.
func ApplyCompletion(h *entity.Habit, now time.Time) error {
	if CompletedInPeriod(h, now) {
		return domainerror.NewHabitError(
			domainerror.ErrCodeHabitAlreadyCompleted,
			"habit already completed for this period",
			domainerror.ErrHabitAlreadyCompleted,
		)
	}

	prevStreak := h.CurrentStreak
	prevCompletedAt := h.LastCompletedAt

	switch {
	case h.LastCompletedAt == nil:
		h.CurrentStreak = 1
	case valueobject.IsPreviousPeriod(h.Frequency, *h.LastCompletedAt, now):
		h.CurrentStreak++
	default:
		h.CurrentStreak = 1
	}

	if h.CurrentStreak > h.LongestStreak {
		h.LongestStreak = h.CurrentStreak
	}

	h.PreviousStreak = &prevStreak
	h.PreviousCompletedAt = prevCompletedAt
	completedAt := now
	h.LastCompletedAt = &completedAt
	return nil
}

// ApplyUncompletion undoes the completion recorded for the period containing
// now by restoring the snapshotted pre-completion state.
//
// The undo is single-level: the snapshot fields are cleared after restoring,
// so toggling complete/uncomplete/complete in the same period recomputes from
// the restored base rather than regenerating the consumed snapshot. A third
// toggle therefore cannot reach state from two completions back.
// LongestStreak is never lowered.
func ApplyUncompletion(h *entity.Habit, now time.Time) error {
	if !CompletedInPeriod(h, now) {
		return domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotCompleted,
			"habit is not completed for this period",
			domainerror.ErrHabitNotCompleted,
		)
	}

	if h.PreviousStreak != nil {
		h.CurrentStreak = *h.PreviousStreak
	} else {
		h.CurrentStreak = 0
	}
	h.LastCompletedAt = h.PreviousCompletedAt
	h.PreviousStreak = nil
	h.PreviousCompletedAt = nil
	if h.LastCompletedAt == nil {
		h.CurrentStreak = 0
	}
	return nil
}

// ResetStreakState zeroes both streak counters, the completion timestamp,
// and the undo snapshot. Used for explicit user-triggered resets only.
func ResetStreakState(h *entity.Habit) {
	h.CurrentStreak = 0
	h.LongestStreak = 0
	h.LastCompletedAt = nil
	h.PreviousStreak = nil
	h.PreviousCompletedAt = nil
}
