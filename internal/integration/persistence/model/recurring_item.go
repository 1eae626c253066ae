package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// RecurringItemModel represents the recurring_items table in the database.
// ActiveMonths and OmittedMonths are stored as JSON arrays so the schema
// works on both PostgreSQL and SQLite.
type RecurringItemModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name              string          `gorm:"type:varchar(100);not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type              string          `gorm:"type:varchar(10);not null"`
	CategoryID        *uuid.UUID      `gorm:"type:uuid;index"`
	BudgetFocus       *string         `gorm:"type:varchar(10)"`
	DayOfMonth        int             `gorm:"not null"`
	ActiveMonths      string          `gorm:"type:text;not null;default:'[]'"`
	LastSettledMonth  *string         `gorm:"type:varchar(7);index"`
	LastTransactionID *uuid.UUID      `gorm:"type:uuid"`
	OmittedMonths     string          `gorm:"type:text;not null;default:'[]'"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	DeletedAt         gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the RecurringItemModel.
func (RecurringItemModel) TableName() string {
	return "recurring_items"
}

// ToEntity converts a RecurringItemModel to a domain RecurringItem entity.
func (m *RecurringItemModel) ToEntity() *entity.RecurringItem {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var budgetFocus *valueobject.BudgetFocus
	if m.BudgetFocus != nil {
		f := valueobject.BudgetFocus(*m.BudgetFocus)
		budgetFocus = &f
	}

	var lastSettled *valueobject.MonthKey
	if m.LastSettledMonth != nil {
		k := valueobject.MonthKey(*m.LastSettledMonth)
		lastSettled = &k
	}

	var activeMonths []time.Month
	if err := json.Unmarshal([]byte(m.ActiveMonths), &activeMonths); err != nil {
		slog.Warn("Failed to unmarshal active months", "error", err, "recurringItemID", m.ID)
		activeMonths = nil
	}

	var omittedRaw []string
	if err := json.Unmarshal([]byte(m.OmittedMonths), &omittedRaw); err != nil {
		slog.Warn("Failed to unmarshal omitted months", "error", err, "recurringItemID", m.ID)
		omittedRaw = nil
	}
	omitted := make([]valueobject.MonthKey, 0, len(omittedRaw))
	for _, s := range omittedRaw {
		omitted = append(omitted, valueobject.MonthKey(s))
	}

	return &entity.RecurringItem{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		Amount:            m.Amount,
		Type:              entity.TransactionType(m.Type),
		CategoryID:        m.CategoryID,
		BudgetFocus:       budgetFocus,
		DayOfMonth:        m.DayOfMonth,
		ActiveMonths:      activeMonths,
		LastSettledMonth:  lastSettled,
		LastTransactionID: m.LastTransactionID,
		OmittedMonths:     omitted,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}

// RecurringItemFromEntity creates a RecurringItemModel from a domain RecurringItem entity.
func RecurringItemFromEntity(item *entity.RecurringItem) *RecurringItemModel {
	var deletedAt gorm.DeletedAt
	if item.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *item.DeletedAt, Valid: true}
	}

	var budgetFocus *string
	if item.BudgetFocus != nil {
		f := string(*item.BudgetFocus)
		budgetFocus = &f
	}

	var lastSettled *string
	if item.LastSettledMonth != nil {
		s := item.LastSettledMonth.String()
		lastSettled = &s
	}

	activeMonths := item.ActiveMonths
	if activeMonths == nil {
		activeMonths = []time.Month{}
	}
	activeJSON, err := json.Marshal(activeMonths)
	if err != nil {
		slog.Warn("Failed to marshal active months", "error", err, "recurringItemID", item.ID)
		activeJSON = []byte("[]")
	}

	omittedRaw := make([]string, 0, len(item.OmittedMonths))
	for _, k := range item.OmittedMonths {
		omittedRaw = append(omittedRaw, k.String())
	}
	omittedJSON, err := json.Marshal(omittedRaw)
	if err != nil {
		slog.Warn("Failed to marshal omitted months", "error", err, "recurringItemID", item.ID)
		omittedJSON = []byte("[]")
	}

	return &RecurringItemModel{
		ID:                item.ID,
		UserID:            item.UserID,
		Name:              item.Name,
		Amount:            item.Amount,
		Type:              string(item.Type),
		CategoryID:        item.CategoryID,
		BudgetFocus:       budgetFocus,
		DayOfMonth:        item.DayOfMonth,
		ActiveMonths:      string(activeJSON),
		LastSettledMonth:  lastSettled,
		LastTransactionID: item.LastTransactionID,
		OmittedMonths:     string(omittedJSON),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
