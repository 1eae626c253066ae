package shopping

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
)

// fakeShoppingRepo implements adapter.ShoppingRepository in memory with the
// same conditional-purchase semantics as the persistence layer.
type fakeShoppingRepo struct {
	mu           sync.Mutex
	lists        map[uuid.UUID]*entity.ShoppingList
	items        map[uuid.UUID]*entity.ShoppingItem
	transactions map[uuid.UUID]*entity.Transaction
}

func newFakeShoppingRepo() *fakeShoppingRepo {
	return &fakeShoppingRepo{
		lists:        map[uuid.UUID]*entity.ShoppingList{},
		items:        map[uuid.UUID]*entity.ShoppingItem{},
		transactions: map[uuid.UUID]*entity.Transaction{},
	}
}

func (r *fakeShoppingRepo) CreateList(_ context.Context, list *entity.ShoppingList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[list.ID] = list
	return nil
}

func (r *fakeShoppingRepo) FindListByID(_ context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.lists[id]
	if !ok {
		return nil, domainerror.ErrShoppingListNotFound
	}
	clone := *list
	return &clone, nil
}

func (r *fakeShoppingRepo) FindListsByUser(_ context.Context, userID uuid.UUID) ([]*entity.ShoppingListWithItems, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ShoppingListWithItems
	for _, list := range r.lists {
		if list.UserID != userID {
			continue
		}
		lwi := &entity.ShoppingListWithItems{List: list}
		for _, item := range r.items {
			if item.ListID == list.ID {
				lwi.Items = append(lwi.Items, item)
			}
		}
		out = append(out, lwi)
	}
	return out, nil
}

func (r *fakeShoppingRepo) DeleteList(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lists, id)
	for itemID, item := range r.items {
		if item.ListID == id {
			delete(r.items, itemID)
		}
	}
	return nil
}

func (r *fakeShoppingRepo) CreateItem(_ context.Context, item *entity.ShoppingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

func (r *fakeShoppingRepo) FindItemByID(_ context.Context, id uuid.UUID) (*entity.ShoppingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrShoppingItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeShoppingRepo) UpdateItem(_ context.Context, item *entity.ShoppingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeShoppingRepo) DeleteItem(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeShoppingRepo) Purchase(_ context.Context, item *entity.ShoppingItem, txn *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok {
		return domainerror.ErrShoppingItemNotFound
	}
	if stored.Purchased {
		return domainerror.ErrItemAlreadyPurchased
	}
	r.transactions[txn.ID] = txn
	stored.Purchased = true
	stored.PurchasedAt = item.PurchasedAt
	stored.FinalAmount = item.FinalAmount
	stored.TransactionID = &txn.ID
	item.Purchased = true
	item.TransactionID = &txn.ID
	return nil
}

func (r *fakeShoppingRepo) RevertPurchase(_ context.Context, item *entity.ShoppingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok {
		return domainerror.ErrShoppingItemNotFound
	}
	if stored.TransactionID != nil {
		delete(r.transactions, *stored.TransactionID)
	}
	stored.Purchased = false
	stored.PurchasedAt = nil
	stored.FinalAmount = nil
	stored.TransactionID = nil
	item.Purchased = false
	item.PurchasedAt = nil
	item.FinalAmount = nil
	item.TransactionID = nil
	return nil
}

// fakeLockService grants every lock.
type fakeLockService struct {
	mu   sync.Mutex
	held map[string]bool
}

func newFakeLockService() *fakeLockService {
	return &fakeLockService{held: map[string]bool{}}
}

func (l *fakeLockService) AcquireLock(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
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

func seedListAndItem(t *testing.T, repo *fakeShoppingRepo, userID uuid.UUID) *entity.ShoppingItem {
	t.Helper()
	list := entity.NewShoppingList(userID, "groceries")
	if err := repo.CreateList(context.Background(), list); err != nil {
		t.Fatalf("seed list: %v", err)
	}
	item := entity.NewShoppingItem(list.ID, userID, "milk", decimal.NewFromInt(1500), nil)
	if err := repo.CreateItem(context.Background(), item); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func TestPurchaseItemCreatesExpenseTransaction(t *testing.T) {
	repo := newFakeShoppingRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedListAndItem(t, repo, userID)

	uc := NewPurchaseItemUseCase(repo, locks)
	out, err := uc.Execute(context.Background(), PurchaseItemInput{
		UserID: userID,
		ItemID: item.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txn, ok := repo.transactions[out.TransactionID]
	if !ok {
		t.Fatal("purchase did not create a transaction")
	}
	if txn.Type != entity.TransactionTypeExpense {
		t.Errorf("transaction type = %s, want expense", txn.Type)
	}
	if txn.Source != entity.TransactionSourceShopping {
		t.Errorf("transaction source = %s, want shopping", txn.Source)
	}
	if !txn.Amount.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("transaction amount = %s, want estimate 1500", txn.Amount)
	}
	if !out.Item.Purchased {
		t.Error("item not marked purchased")
	}
}

func TestPurchaseItemFinalAmountWins(t *testing.T) {
	repo := newFakeShoppingRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedListAndItem(t, repo, userID)

	final := decimal.NewFromInt(1790)
	uc := NewPurchaseItemUseCase(repo, locks)
	out, err := uc.Execute(context.Background(), PurchaseItemInput{
		UserID:      userID,
		ItemID:      item.ID,
		FinalAmount: &final,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txn := repo.transactions[out.TransactionID]
	if !txn.Amount.Equal(final) {
		t.Errorf("transaction amount = %s, want final 1790", txn.Amount)
	}
}

func TestPurchaseItemTwiceRejected(t *testing.T) {
	repo := newFakeShoppingRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedListAndItem(t, repo, userID)

	uc := NewPurchaseItemUseCase(repo, locks)
	input := PurchaseItemInput{UserID: userID, ItemID: item.ID}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}
	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrItemAlreadyPurchased) {
		t.Errorf("got %v, want ErrItemAlreadyPurchased", err)
	}
	if len(repo.transactions) != 1 {
		t.Errorf("duplicate purchase created %d transactions, want 1", len(repo.transactions))
	}
}

func TestPurchaseRevertRoundTrip(t *testing.T) {
	repo := newFakeShoppingRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedListAndItem(t, repo, userID)

	purchase := NewPurchaseItemUseCase(repo, locks)
	revert := NewRevertPurchaseUseCase(repo, locks)

	out, err := purchase.Execute(context.Background(), PurchaseItemInput{UserID: userID, ItemID: item.ID})
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if _, err := revert.Execute(context.Background(), RevertPurchaseInput{UserID: userID, ItemID: item.ID}); err != nil {
		t.Fatalf("revert failed: %v", err)
	}

	stored, err := repo.FindItemByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("find item: %v", err)
	}
	if stored.Purchased || stored.TransactionID != nil || stored.PurchasedAt != nil {
		t.Errorf("revert left purchased state: %+v", stored)
	}
	if _, ok := repo.transactions[out.TransactionID]; ok {
		t.Errorf("revert left the purchase transaction in place")
	}
}

func TestRevertPurchaseNotPurchased(t *testing.T) {
	repo := newFakeShoppingRepo()
	locks := newFakeLockService()
	userID := uuid.New()
	item := seedListAndItem(t, repo, userID)

	uc := NewRevertPurchaseUseCase(repo, locks)
	_, err := uc.Execute(context.Background(), RevertPurchaseInput{UserID: userID, ItemID: item.ID})
	if !errors.Is(err, domainerror.ErrItemNotPurchased) {
		t.Errorf("got %v, want ErrItemNotPurchased", err)
	}
}
