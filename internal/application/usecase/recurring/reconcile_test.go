package recurring

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

func newTestItem(name string, amount int64) *entity.RecurringItem {
	return entity.NewRecurringItem(
		uuid.New(),
		name,
		decimal.NewFromInt(amount),
		entity.TransactionTypeExpense,
		nil,
		nil,
		5,
		nil,
	)
}

func TestPartitionByMonthTotalAndDisjoint(t *testing.T) {
	month := valueobject.NewMonthKey(2024, time.June)

	pending := newTestItem("rent", 50000)

	settled := newTestItem("internet", 12000)
	settledMonth := month
	txID := uuid.New()
	settled.LastSettledMonth = &settledMonth
	settled.LastTransactionID = &txID

	omitted := newTestItem("gym", 8000)
	omitted.OmittedMonths = []valueobject.MonthKey{month}

	settledElsewhere := newTestItem("insurance", 20000)
	otherMonth := valueobject.NewMonthKey(2024, time.May)
	otherTxID := uuid.New()
	settledElsewhere.LastSettledMonth = &otherMonth
	settledElsewhere.LastTransactionID = &otherTxID

	items := []*entity.RecurringItem{pending, settled, omitted, settledElsewhere}
	view := PartitionByMonth(items, month)

	if len(view.Pending) != 2 || len(view.Settled) != 1 || len(view.Omitted) != 1 {
		t.Fatalf("got %d/%d/%d pending/settled/omitted, want 2/1/1",
			len(view.Pending), len(view.Settled), len(view.Omitted))
	}

	// Every item lands in exactly one bucket.
	seen := map[uuid.UUID]int{}
	for _, i := range view.Pending {
		seen[i.ID]++
	}
	for _, i := range view.Settled {
		seen[i.ID]++
	}
	for _, i := range view.Omitted {
		seen[i.ID]++
	}
	if len(seen) != len(items) {
		t.Errorf("%d distinct items in buckets, want %d", len(seen), len(items))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("item %s appears in %d buckets", id, count)
		}
	}
}

func TestPartitionByMonthActiveMonthsExcludes(t *testing.T) {
	// Active January through March only; viewed in June.
	item := newTestItem("ski pass", 30000)
	item.ActiveMonths = []time.Month{time.January, time.February, time.March}

	view := PartitionByMonth([]*entity.RecurringItem{item}, valueobject.NewMonthKey(2024, time.June))

	if len(view.Pending)+len(view.Settled)+len(view.Omitted) != 0 {
		t.Errorf("inactive item appeared in the month view")
	}

	marchView := PartitionByMonth([]*entity.RecurringItem{item}, valueobject.NewMonthKey(2024, time.March))
	if len(marchView.Pending) != 1 {
		t.Errorf("item not pending in an active month")
	}
}

func TestPartitionByMonthSettledBeatsOmitted(t *testing.T) {
	month := valueobject.NewMonthKey(2024, time.June)
	item := newTestItem("rent", 50000)
	txID := uuid.New()
	item.LastSettledMonth = &month
	item.LastTransactionID = &txID
	item.OmittedMonths = []valueobject.MonthKey{month}

	view := PartitionByMonth([]*entity.RecurringItem{item}, month)

	if len(view.Settled) != 1 || len(view.Omitted) != 0 {
		t.Errorf("settled item with omit mark classified as omitted")
	}
}

func TestMonthViewTotals(t *testing.T) {
	month := valueobject.NewMonthKey(2024, time.June)

	rent := newTestItem("rent", 50000)
	salary := newTestItem("salary", 300000)
	salary.Type = entity.TransactionTypeIncome

	internet := newTestItem("internet", 12000)
	internet.LastSettledMonth = &month
	txID := uuid.New()
	internet.LastTransactionID = &txID

	view := PartitionByMonth([]*entity.RecurringItem{rent, salary, internet}, month)

	pendingExpense, pendingIncome := view.PendingTotals()
	if !pendingExpense.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("pending expense = %s, want 50000", pendingExpense)
	}
	if !pendingIncome.Equal(decimal.NewFromInt(300000)) {
		t.Errorf("pending income = %s, want 300000", pendingIncome)
	}

	settledExpense, _ := view.SettledTotals()
	if !settledExpense.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("settled expense = %s, want 12000", settledExpense)
	}
}
