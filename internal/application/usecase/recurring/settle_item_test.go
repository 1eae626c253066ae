package recurring

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// fakeRecurringRepo implements adapter.RecurringRepository in memory with the
// same conditional-settle semantics as the persistence layer.
type fakeRecurringRepo struct {
	mu           sync.Mutex
	items        map[uuid.UUID]*entity.RecurringItem
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeRecurringRepo() *fakeRecurringRepo {
	return &fakeRecurringRepo{
		items:        map[uuid.UUID]*entity.RecurringItem{},
		transactions: map[uuid.UUID]*entity.Transaction{},
	}
}

func (r *fakeRecurringRepo) Create(_ context.Context, item *entity.RecurringItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

func (r *fakeRecurringRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrRecurringItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeRecurringRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.RecurringItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.RecurringItem
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRecurringRepo) Update(_ context.Context, item *entity.RecurringItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeRecurringRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeRecurringRepo) Settle(_ context.Context, item *entity.RecurringItem, txn *entity.Transaction, month valueobject.MonthKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok {
		return domainerror.ErrRecurringItemNotFound
	}
	if stored.LastSettledMonth != nil && *stored.LastSettledMonth == month {
		return domainerror.ErrAlreadySettled
	}
	r.transactions[txn.ID] = txn
	stored.LastSettledMonth = &month
	stored.LastTransactionID = &txn.ID
	item.LastSettledMonth = &month
	item.LastTransactionID = &txn.ID
	return nil
}

func (r *fakeRecurringRepo) Revert(_ context.Context, item *entity.RecurringItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok {
		return domainerror.ErrRecurringItemNotFound
	}
	if stored.LastTransactionID != nil {
		delete(r.transactions, *stored.LastTransactionID)
	}
	stored.LastSettledMonth = nil
	stored.LastTransactionID = nil
	item.LastSettledMonth = nil
	item.LastTransactionID = nil
	return nil
}

// fakeLockService grants every lock unless told otherwise.
type fakeLockService struct {
	mu     sync.Mutex
	held   map[string]bool
	denied bool
}

func newFakeLockService() *fakeLockService {
	return &fakeLockService{held: map[string]bool{}}
}

func (l *fakeLockService) AcquireLock(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.denied || l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *fakeLockService) ReleaseLock(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

func seedItem(t *testing.T, repo *fakeRecurringRepo, userID uuid.UUID) *entity.RecurringItem {
	t.Helper()
	item := entity.NewRecurringItem(
		userID,
		"rent",
		decimal.NewFromInt(50000),
		entity.TransactionTypeExpense,
		nil,
		nil,
		5,
		nil,
	)
	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func TestSettleItemCreatesTransactionAndMarker(t *testing.T) {
	repo := newFakeRecurringRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedItem(t, repo, userID)

	uc := NewSettleItemUseCase(repo, locks)
	out, err := uc.Execute(context.Background(), SettleItemInput{
		UserID: userID,
		ItemID: item.ID,
		Month:  "2024-06",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Item.LastSettledMonth == nil || *out.Item.LastSettledMonth != "2024-06" {
		t.Errorf("LastSettledMonth = %v, want 2024-06", out.Item.LastSettledMonth)
	}
	txn, ok := repo.transactions[out.TransactionID]
	if !ok {
		t.Fatal("settle did not create a transaction")
	}
	wantDate := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	if !txn.Date.Equal(wantDate) {
		t.Errorf("transaction date = %v, want %v", txn.Date, wantDate)
	}
	if !txn.Amount.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("transaction amount = %s, want 50000", txn.Amount)
	}
	if txn.Source != entity.TransactionSourceRecurring {
		t.Errorf("transaction source = %s, want recurring", txn.Source)
	}
}

func TestSettleItemAlreadySettled(t *testing.T) {
	repo := newFakeRecurringRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedItem(t, repo, userID)

	uc := NewSettleItemUseCase(repo, locks)
	input := SettleItemInput{UserID: userID, ItemID: item.ID, Month: "2024-06"}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first settle failed: %v", err)
	}
	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrAlreadySettled) {
		t.Errorf("got %v, want ErrAlreadySettled", err)
	}
	if len(repo.transactions) != 1 {
		t.Errorf("duplicate settle created %d transactions, want 1", len(repo.transactions))
	}
}

func TestSettleItemInactiveMonth(t *testing.T) {
	repo := newFakeRecurringRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedItem(t, repo, userID)
	item.ActiveMonths = []time.Month{time.January, time.February, time.March}
	if err := repo.Update(context.Background(), item); err != nil {
		t.Fatalf("update item: %v", err)
	}

	uc := NewSettleItemUseCase(repo, locks)
	_, err := uc.Execute(context.Background(), SettleItemInput{
		UserID: userID,
		ItemID: item.ID,
		Month:  "2024-06",
	})
	if !errors.Is(err, domainerror.ErrItemInactiveForMonth) {
		t.Errorf("got %v, want ErrItemInactiveForMonth", err)
	}
}

func TestSettleItemLockContention(t *testing.T) {
	repo := newFakeRecurringRepo()
	locks := newFakeLockService()
	locks.denied = true
	userID := uuid.New()
	item := seedItem(t, repo, userID)

	uc := NewSettleItemUseCase(repo, locks)
	_, err := uc.Execute(context.Background(), SettleItemInput{
		UserID: userID,
		ItemID: item.ID,
		Month:  "2024-06",
	})
	if !errors.Is(err, domainerror.ErrSettleInProgress) {
		t.Errorf("got %v, want ErrSettleInProgress", err)
	}
}

func TestSettleItemRejectsLegacyMonthFormat(t *testing.T) {
	repo := newFakeRecurringRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedItem(t, repo, userID)

	uc := NewSettleItemUseCase(repo, locks)
	for _, month := range []string{"2024-5", "2024-13", "06-2024", ""} {
		if _, err := uc.Execute(context.Background(), SettleItemInput{
			UserID: userID,
			ItemID: item.ID,
			Month:  month,
		}); err == nil {
			t.Errorf("month %q accepted, want error", month)
		}
	}
}

func TestSettleRevertRoundTrip(t *testing.T) {
	repo := newFakeRecurringRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedItem(t, repo, userID)

	settle := NewSettleItemUseCase(repo, locks)
	revert := NewRevertItemUseCase(repo, locks)

	out, err := settle.Execute(context.Background(), SettleItemInput{
		UserID: userID,
		ItemID: item.ID,
		Month:  "2024-06",
	})
	if err != nil {
		t.Fatalf("settle failed: %v", err)
	}

	if _, err := revert.Execute(context.Background(), RevertItemInput{
		UserID: userID,
		ItemID: item.ID,
	}); err != nil {
		t.Fatalf("revert failed: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("find item: %v", err)
	}
	if stored.LastSettledMonth != nil || stored.LastTransactionID != nil {
		t.Errorf("revert left markers set: %v / %v", stored.LastSettledMonth, stored.LastTransactionID)
	}
	if _, ok := repo.transactions[out.TransactionID]; ok {
		t.Errorf("revert left the settle transaction in place")
	}
}

func TestRevertItemNotSettled(t *testing.T) {
	repo := newFakeRecurringRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedItem(t, repo, userID)

	uc := NewRevertItemUseCase(repo, locks)
	_, err := uc.Execute(context.Background(), RevertItemInput{UserID: userID, ItemID: item.ID})
	if !errors.Is(err, domainerror.ErrNotSettled) {
		t.Errorf("got %v, want ErrNotSettled", err)
	}
}

func TestSettleItemClampsDueDay(t *testing.T) {
	repo := newFakeRecurringRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedItem(t, repo, userID)
	item.DayOfMonth = 31
	if err := repo.Update(context.Background(), item); err != nil {
		t.Fatalf("update item: %v", err)
	}

	uc := NewSettleItemUseCase(repo, locks)
	out, err := uc.Execute(context.Background(), SettleItemInput{
		UserID: userID,
		ItemID: item.ID,
		Month:  "2024-02",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txn := repo.transactions[out.TransactionID]
	wantDate := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !txn.Date.Equal(wantDate) {
		t.Errorf("transaction date = %v, want clamped %v", txn.Date, wantDate)
	}
}
