package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/usecase/shopping"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/integration/entrypoint/dto"
	"github.com/lifeledger/backend/internal/integration/entrypoint/middleware"
)

// ShoppingController handles shopping list and item endpoints.
type ShoppingController struct {
	createListUseCase     *shopping.CreateListUseCase
	listListsUseCase      *shopping.ListListsUseCase
	deleteListUseCase     *shopping.DeleteListUseCase
	addItemUseCase        *shopping.AddItemUseCase
	updateItemUseCase     *shopping.UpdateItemUseCase
	deleteItemUseCase     *shopping.DeleteItemUseCase
	purchaseUseCase       *shopping.PurchaseItemUseCase
	revertPurchaseUseCase *shopping.RevertPurchaseUseCase
}

// NewShoppingController creates a new shopping controller instance.
func NewShoppingController(
	createListUseCase *shopping.CreateListUseCase,
	listListsUseCase *shopping.ListListsUseCase,
	deleteListUseCase *shopping.DeleteListUseCase,
	addItemUseCase *shopping.AddItemUseCase,
	updateItemUseCase *shopping.UpdateItemUseCase,
	deleteItemUseCase *shopping.DeleteItemUseCase,
	purchaseUseCase *shopping.PurchaseItemUseCase,
	revertPurchaseUseCase *shopping.RevertPurchaseUseCase,
) *ShoppingController {
	return &ShoppingController{
		createListUseCase:     createListUseCase,
		listListsUseCase:      listListsUseCase,
		deleteListUseCase:     deleteListUseCase,
		addItemUseCase:        addItemUseCase,
		updateItemUseCase:     updateItemUseCase,
		deleteItemUseCase:     deleteItemUseCase,
		purchaseUseCase:       purchaseUseCase,
		revertPurchaseUseCase: revertPurchaseUseCase,
	}
}

// CreateList handles POST /shopping/lists requests.
func (c *ShoppingController) CreateList(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateShoppingListRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingShoppingFields),
		})
		return
	}

	input := shopping.CreateListInput{
		UserID: userID,
		Name:   req.Name,
	}

	output, err := c.createListUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToShoppingListResponse(output.List))
}

// ListLists handles GET /shopping/lists requests.
func (c *ShoppingController) ListLists(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	output, err := c.listListsUseCase.Execute(ctx.Request.Context(), shopping.ListListsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShoppingListsResponse(output.Lists))
}

// DeleteList handles DELETE /shopping/lists/:id requests.
func (c *ShoppingController) DeleteList(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	listID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid shopping list ID",
			Code:  string(domainerror.ErrCodeShoppingListNotFound),
		})
		return
	}

	input := shopping.DeleteListInput{
		UserID: userID,
		ListID: listID,
	}

	if err := c.deleteListUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleShoppingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddItem handles POST /shopping/lists/:id/items requests.
func (c *ShoppingController) AddItem(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	listID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid shopping list ID",
			Code:  string(domainerror.ErrCodeShoppingListNotFound),
		})
		return
	}

	var req dto.AddShoppingItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingShoppingFields),
		})
		return
	}

	input := shopping.AddItemInput{
		UserID:          userID,
		ListID:          listID,
		Name:            req.Name,
		EstimatedAmount: decimal.NewFromFloat(req.EstimatedAmount),
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeMissingShoppingFields),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.addItemUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToShoppingItemResponse(output.Item))
}

// UpdateItem handles PATCH /shopping/items/:id requests.
func (c *ShoppingController) UpdateItem(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid shopping item ID",
			Code:  string(domainerror.ErrCodeShoppingItemNotFound),
		})
		return
	}

	var req dto.UpdateShoppingItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingShoppingFields),
		})
		return
	}

	input := shopping.UpdateItemInput{
		UserID: userID,
		ItemID: itemID,
		Name:   req.Name,
	}

	if req.EstimatedAmount != nil {
		amount := decimal.NewFromFloat(*req.EstimatedAmount)
		input.EstimatedAmount = &amount
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeMissingShoppingFields),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.updateItemUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShoppingItemResponse(output.Item))
}

// DeleteItem handles DELETE /shopping/items/:id requests.
func (c *ShoppingController) DeleteItem(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid shopping item ID",
			Code:  string(domainerror.ErrCodeShoppingItemNotFound),
		})
		return
	}

	input := shopping.DeleteItemInput{
		UserID: userID,
		ItemID: itemID,
	}

	if err := c.deleteItemUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleShoppingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Purchase handles POST /shopping/items/:id/purchase requests.
func (c *ShoppingController) Purchase(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid shopping item ID",
			Code:  string(domainerror.ErrCodeShoppingItemNotFound),
		})
		return
	}

	// The body is optional; an empty body means purchase at the estimate.
	var req dto.PurchaseItemRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
				Code:  string(domainerror.ErrCodeInvalidItemAmount),
			})
			return
		}
	}

	input := shopping.PurchaseItemInput{
		UserID: userID,
		ItemID: itemID,
	}

	if req.FinalAmount != nil {
		amount := decimal.NewFromFloat(*req.FinalAmount)
		input.FinalAmount = &amount
	}

	output, err := c.purchaseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PurchaseItemResponse{
		Item:          dto.ToShoppingItemResponse(output.Item),
		TransactionID: output.TransactionID.String(),
	})
}

// RevertPurchase handles DELETE /shopping/items/:id/purchase requests.
func (c *ShoppingController) RevertPurchase(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid shopping item ID",
			Code:  string(domainerror.ErrCodeShoppingItemNotFound),
		})
		return
	}

	input := shopping.RevertPurchaseInput{
		UserID: userID,
		ItemID: itemID,
	}

	output, err := c.revertPurchaseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleShoppingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShoppingItemResponse(output.Item))
}

// handleShoppingError maps shopping errors to HTTP responses.
func (c *ShoppingController) handleShoppingError(ctx *gin.Context, err error) {
	var shopErr *domainerror.ShoppingError
	if errors.As(err, &shopErr) {
		statusCode := c.getStatusCodeForShoppingError(shopErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: shopErr.Message,
			Code:  string(shopErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForShoppingError maps shopping error codes to HTTP status codes.
func (c *ShoppingController) getStatusCodeForShoppingError(code domainerror.ShoppingErrorCode) int {
	switch code {
	case domainerror.ErrCodeShoppingListNotFound,
		domainerror.ErrCodeShoppingItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedShopping:
		return http.StatusForbidden
	case domainerror.ErrCodeItemAlreadyPurchased,
		domainerror.ErrCodeItemNotPurchased:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidItemAmount,
		domainerror.ErrCodeMissingShoppingFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
