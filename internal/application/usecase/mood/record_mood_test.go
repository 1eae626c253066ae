package mood

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// fakeMoodRepo implements adapter.MoodRepository in memory keyed by user+day.
type fakeMoodRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entity.MoodEntry
}

func newFakeMoodRepo() *fakeMoodRepo {
	return &fakeMoodRepo{entries: map[uuid.UUID]*entity.MoodEntry{}}
}

func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r *fakeMoodRepo) Create(_ context.Context, entry *entity.MoodEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeMoodRepo) FindByUserAndDay(_ context.Context, userID uuid.UUID, day time.Time) (*entity.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.UserID == userID && e.Day.Equal(dayKey(day)) {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domainerror.ErrMoodEntryNotFound
}

func (r *fakeMoodRepo) FindByUserInRange(_ context.Context, userID uuid.UUID, startDay, endDay time.Time) ([]*entity.MoodEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MoodEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.Day.Before(dayKey(startDay)) && !e.Day.After(dayKey(endDay)) {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeMoodRepo) Update(_ context.Context, entry *entity.MoodEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *entry
	r.entries[entry.ID] = &clone
	return nil
}

func (r *fakeMoodRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

func TestRecordMoodCreatesEntry(t *testing.T) {
	repo := newFakeMoodRepo()
	uc := NewRecordMoodUseCase(repo)
	userID := uuid.New()

	out, err := uc.Execute(context.Background(), RecordMoodInput{
		UserID: userID,
		Day:    time.Date(2024, time.June, 10, 15, 30, 0, 0, time.UTC),
		Score:  4,
		Note:   "good day",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDay := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	if !out.Entry.Day.Equal(wantDay) {
		t.Errorf("Day = %v, want normalized %v", out.Entry.Day, wantDay)
	}
	if out.Entry.Score != 4 {
		t.Errorf("Score = %d, want 4", out.Entry.Score)
	}
}

func TestRecordMoodSameDayUpdatesInPlace(t *testing.T) {
	repo := newFakeMoodRepo()
	uc := NewRecordMoodUseCase(repo)
	userID := uuid.New()
	day := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)

	first, err := uc.Execute(context.Background(), RecordMoodInput{UserID: userID, Day: day, Score: 2})
	if err != nil {
		t.Fatalf("first record failed: %v", err)
	}

	second, err := uc.Execute(context.Background(), RecordMoodInput{
		UserID: userID,
		Day:    time.Date(2024, time.June, 10, 22, 0, 0, 0, time.UTC),
		Score:  5,
		Note:   "turned around",
	})
	if err != nil {
		t.Fatalf("second record failed: %v", err)
	}

	if second.Entry.ID != first.Entry.ID {
		t.Errorf("same-day record created a new entry")
	}
	if second.Entry.Score != 5 || second.Entry.Note != "turned around" {
		t.Errorf("entry not updated: %+v", second.Entry)
	}
	if len(repo.entries) != 1 {
		t.Errorf("%d entries stored, want 1", len(repo.entries))
	}
}

func TestRecordMoodScoreBounds(t *testing.T) {
	repo := newFakeMoodRepo()
	uc := NewRecordMoodUseCase(repo)
	userID := uuid.New()

	for _, score := range []int{0, 6, -1} {
		_, err := uc.Execute(context.Background(), RecordMoodInput{UserID: userID, Score: score})
		if !errors.Is(err, domainerror.ErrInvalidMoodScore) {
			t.Errorf("score %d: got %v, want ErrInvalidMoodScore", score, err)
		}
	}
}

func TestListMoodsAverage(t *testing.T) {
	repo := newFakeMoodRepo()
	record := NewRecordMoodUseCase(repo)
	list := NewListMoodsUseCase(repo)
	userID := uuid.New()

	for i, score := range []int{3, 4, 5} {
		day := time.Date(2024, time.June, 10+i, 12, 0, 0, 0, time.UTC)
		if _, err := record.Execute(context.Background(), RecordMoodInput{UserID: userID, Day: day, Score: score}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	out, err := list.Execute(context.Background(), ListMoodsInput{
		UserID:   userID,
		StartDay: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDay:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(out.Entries) != 3 {
		t.Fatalf("%d entries, want 3", len(out.Entries))
	}
	if out.AverageScore != 4.0 {
		t.Errorf("AverageScore = %v, want 4.0", out.AverageScore)
	}
}
