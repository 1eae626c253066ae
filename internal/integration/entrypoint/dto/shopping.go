package dto

import (
	"time"

	"github.com/lifeledger/backend/internal/application/usecase/shopping"
)

// CreateShoppingListRequest represents the request body for shopping list creation.
type CreateShoppingListRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AddShoppingItemRequest represents the request body for adding a shopping item.
type AddShoppingItemRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=100"`
	EstimatedAmount float64 `json:"estimated_amount" binding:"required"`
	CategoryID      *string `json:"category_id,omitempty"`
}

// UpdateShoppingItemRequest represents the request body for updating a shopping item.
type UpdateShoppingItemRequest struct {
	Name            *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	EstimatedAmount *float64 `json:"estimated_amount,omitempty"`
	CategoryID      *string  `json:"category_id,omitempty"`
}

// PurchaseItemRequest represents the request body for purchasing a shopping item.
type PurchaseItemRequest struct {
	FinalAmount *float64 `json:"final_amount,omitempty"`
}

// ShoppingItemResponse represents a shopping item in API responses.
type ShoppingItemResponse struct {
	ID              string     `json:"id"`
	ListID          string     `json:"list_id"`
	Name            string     `json:"name"`
	EstimatedAmount string     `json:"estimated_amount"`
	FinalAmount     *string    `json:"final_amount,omitempty"`
	CategoryID      *string    `json:"category_id,omitempty"`
	Purchased       bool       `json:"purchased"`
	PurchasedAt     *time.Time `json:"purchased_at,omitempty"`
	TransactionID   *string    `json:"transaction_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ShoppingListResponse represents a shopping list with its items in API responses.
type ShoppingListResponse struct {
	ID             string                 `json:"id"`
	UserID         string                 `json:"user_id"`
	Name           string                 `json:"name"`
	Items          []ShoppingItemResponse `json:"items"`
	EstimatedTotal string                 `json:"estimated_total"`
	PurchasedTotal string                 `json:"purchased_total"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// ShoppingListsResponse represents the response for listing shopping lists.
type ShoppingListsResponse struct {
	Lists []ShoppingListResponse `json:"lists"`
}

// PurchaseItemResponse represents the response for purchasing a shopping item.
type PurchaseItemResponse struct {
	Item          ShoppingItemResponse `json:"item"`
	TransactionID string               `json:"transaction_id"`
}

// ToShoppingItemResponse converts a ShoppingItemOutput to a ShoppingItemResponse DTO.
func ToShoppingItemResponse(item *shopping.ShoppingItemOutput) ShoppingItemResponse {
	response := ShoppingItemResponse{
		ID:              item.ID.String(),
		ListID:          item.ListID.String(),
		Name:            item.Name,
		EstimatedAmount: item.EstimatedAmount.String(),
		Purchased:       item.Purchased,
		PurchasedAt:     item.PurchasedAt,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
	if item.FinalAmount != nil {
		amount := item.FinalAmount.String()
		response.FinalAmount = &amount
	}
	if item.CategoryID != nil {
		id := item.CategoryID.String()
		response.CategoryID = &id
	}
	if item.TransactionID != nil {
		id := item.TransactionID.String()
		response.TransactionID = &id
	}
	return response
}

// ToShoppingListResponse converts a ShoppingListOutput to a ShoppingListResponse DTO.
func ToShoppingListResponse(list *shopping.ShoppingListOutput) ShoppingListResponse {
	items := make([]ShoppingItemResponse, len(list.Items))
	for i, item := range list.Items {
		items[i] = ToShoppingItemResponse(item)
	}

	return ShoppingListResponse{
		ID:             list.ID.String(),
		UserID:         list.UserID.String(),
		Name:           list.Name,
		Items:          items,
		EstimatedTotal: list.EstimatedTotal.String(),
		PurchasedTotal: list.PurchasedTotal.String(),
		CreatedAt:      list.CreatedAt,
		UpdatedAt:      list.UpdatedAt,
	}
}

// ToShoppingListsResponse converts ShoppingListOutputs to a ShoppingListsResponse DTO.
func ToShoppingListsResponse(lists []*shopping.ShoppingListOutput) ShoppingListsResponse {
	responses := make([]ShoppingListResponse, len(lists))
	for i, list := range lists {
		responses[i] = ToShoppingListResponse(list)
	}
	return ShoppingListsResponse{Lists: responses}
}
