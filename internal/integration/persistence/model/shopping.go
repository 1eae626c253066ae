package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// ShoppingListModel represents the shopping_lists table in the database.
type ShoppingListModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name      string         `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ShoppingListModel.
func (ShoppingListModel) TableName() string {
	return "shopping_lists"
}

// ToEntity converts a ShoppingListModel to a domain ShoppingList entity.
func (m *ShoppingListModel) ToEntity() *entity.ShoppingList {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.ShoppingList{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// ShoppingListFromEntity creates a ShoppingListModel from a domain ShoppingList entity.
func ShoppingListFromEntity(list *entity.ShoppingList) *ShoppingListModel {
	var deletedAt gorm.DeletedAt
	if list.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *list.DeletedAt, Valid: true}
	}

	return &ShoppingListModel{
		ID:        list.ID,
		UserID:    list.UserID,
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// ShoppingItemModel represents the shopping_items table in the database.
type ShoppingItemModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ListID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name            string           `gorm:"type:varchar(100);not null"`
	EstimatedAmount decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	FinalAmount     *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CategoryID      *uuid.UUID       `gorm:"type:uuid"`
	Purchased       bool             `gorm:"not null;default:false"`
	PurchasedAt     *time.Time       `gorm:"type:timestamptz"`
	TransactionID   *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt       time.Time        `gorm:"not null"`
	UpdatedAt       time.Time        `gorm:"not null"`
	DeletedAt       gorm.DeletedAt   `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ShoppingItemModel.
func (ShoppingItemModel) TableName() string {
	return "shopping_items"
}

// ToEntity converts a ShoppingItemModel to a domain ShoppingItem entity.
func (m *ShoppingItemModel) ToEntity() *entity.ShoppingItem {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.ShoppingItem{
		ID:              m.ID,
		ListID:          m.ListID,
		UserID:          m.UserID,
		Name:            m.Name,
		EstimatedAmount: m.EstimatedAmount,
		FinalAmount:     m.FinalAmount,
		CategoryID:      m.CategoryID,
		Purchased:       m.Purchased,
		PurchasedAt:     m.PurchasedAt,
		TransactionID:   m.TransactionID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

// ShoppingItemFromEntity creates a ShoppingItemModel from a domain ShoppingItem entity.
func ShoppingItemFromEntity(item *entity.ShoppingItem) *ShoppingItemModel {
	var deletedAt gorm.DeletedAt
	if item.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *item.DeletedAt, Valid: true}
	}

	return &ShoppingItemModel{
		ID:              item.ID,
		ListID:          item.ListID,
		UserID:          item.UserID,
		Name:            item.Name,
		EstimatedAmount: item.EstimatedAmount,
		FinalAmount:     item.FinalAmount,
		CategoryID:      item.CategoryID,
		Purchased:       item.Purchased,
		PurchasedAt:     item.PurchasedAt,
		TransactionID:   item.TransactionID,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}
