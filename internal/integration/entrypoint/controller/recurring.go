package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/usecase/recurring"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
	"github.com/lifeledger/backend/internal/integration/entrypoint/dto"
	"github.com/lifeledger/backend/internal/integration/entrypoint/middleware"
)

// RecurringController handles recurring item endpoints.
type RecurringController struct {
	createUseCase    *recurring.CreateRecurringItemUseCase
	updateUseCase    *recurring.UpdateRecurringItemUseCase
	deleteUseCase    *recurring.DeleteRecurringItemUseCase
	listMonthUseCase *recurring.ListMonthUseCase
	settleUseCase    *recurring.SettleItemUseCase
	revertUseCase    *recurring.RevertItemUseCase
	omitUseCase      *recurring.OmitMonthUseCase
	restoreUseCase   *recurring.RestoreMonthUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	createUseCase *recurring.CreateRecurringItemUseCase,
	updateUseCase *recurring.UpdateRecurringItemUseCase,
	deleteUseCase *recurring.DeleteRecurringItemUseCase,
	listMonthUseCase *recurring.ListMonthUseCase,
	settleUseCase *recurring.SettleItemUseCase,
	revertUseCase *recurring.RevertItemUseCase,
	omitUseCase *recurring.OmitMonthUseCase,
	restoreUseCase *recurring.RestoreMonthUseCase,
) *RecurringController {
	return &RecurringController{
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		listMonthUseCase: listMonthUseCase,
		settleUseCase:    settleUseCase,
		revertUseCase:    revertUseCase,
		omitUseCase:      omitUseCase,
		restoreUseCase:   restoreUseCase,
	}
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateRecurringItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecurringFields),
		})
		return
	}

	input := recurring.CreateRecurringItemInput{
		UserID:     userID,
		Name:       req.Name,
		Amount:     decimal.NewFromFloat(req.Amount),
		Type:       entity.TransactionType(req.Type),
		DayOfMonth: req.DayOfMonth,
	}

	for _, m := range req.ActiveMonths {
		input.ActiveMonths = append(input.ActiveMonths, time.Month(m))
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeMissingRecurringFields),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if req.BudgetFocus != nil {
		focus := valueobject.BudgetFocus(*req.BudgetFocus)
		input.BudgetFocus = &focus
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringItemResponse(output.Item))
}

// ListMonth handles GET /recurring requests. The month query parameter
// selects the viewing month and defaults to the current month.
func (c *RecurringController) ListMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	month := ctx.Query("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	output, err := c.listMonthUseCase.Execute(ctx.Request.Context(), recurring.ListMonthInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthViewResponse(output))
}

// Update handles PATCH /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring item ID",
			Code:  string(domainerror.ErrCodeRecurringItemNotFound),
		})
		return
	}

	var req dto.UpdateRecurringItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingRecurringFields),
		})
		return
	}

	input := recurring.UpdateRecurringItemInput{
		UserID:     userID,
		ItemID:     itemID,
		Name:       req.Name,
		DayOfMonth: req.DayOfMonth,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeMissingRecurringFields),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if req.BudgetFocus != nil {
		focus := valueobject.BudgetFocus(*req.BudgetFocus)
		input.BudgetFocus = &focus
	}

	if req.ActiveMonths != nil {
		months := make([]time.Month, len(*req.ActiveMonths))
		for i, m := range *req.ActiveMonths {
			months[i] = time.Month(m)
		}
		input.ActiveMonths = &months
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringItemResponse(output.Item))
}

// Delete handles DELETE /recurring/:id requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring item ID",
			Code:  string(domainerror.ErrCodeRecurringItemNotFound),
		})
		return
	}

	input := recurring.DeleteRecurringItemInput{
		UserID: userID,
		ItemID: itemID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Settle handles POST /recurring/:id/settle requests.
func (c *RecurringController) Settle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring item ID",
			Code:  string(domainerror.ErrCodeRecurringItemNotFound),
		})
		return
	}

	var req dto.SettleItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidMonthKey),
		})
		return
	}

	input := recurring.SettleItemInput{
		UserID: userID,
		ItemID: itemID,
		Month:  req.Month,
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SettleItemResponse{
		Item:          dto.ToRecurringItemResponse(output.Item),
		TransactionID: output.TransactionID.String(),
	})
}

// Revert handles POST /recurring/:id/revert requests.
func (c *RecurringController) Revert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring item ID",
			Code:  string(domainerror.ErrCodeRecurringItemNotFound),
		})
		return
	}

	input := recurring.RevertItemInput{
		UserID: userID,
		ItemID: itemID,
	}

	output, err := c.revertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringItemResponse(output.Item))
}

// Omit handles POST /recurring/:id/omit requests.
func (c *RecurringController) Omit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring item ID",
			Code:  string(domainerror.ErrCodeRecurringItemNotFound),
		})
		return
	}

	var req dto.OmitMonthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidMonthKey),
		})
		return
	}

	input := recurring.OmitMonthInput{
		UserID: userID,
		ItemID: itemID,
		Month:  req.Month,
	}

	output, err := c.omitUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringItemResponse(output.Item))
}

// Restore handles POST /recurring/:id/restore requests.
func (c *RecurringController) Restore(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring item ID",
			Code:  string(domainerror.ErrCodeRecurringItemNotFound),
		})
		return
	}

	var req dto.OmitMonthRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidMonthKey),
		})
		return
	}

	input := recurring.RestoreMonthInput{
		UserID: userID,
		ItemID: itemID,
		Month:  req.Month,
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringItemResponse(output.Item))
}

// handleRecurringError maps recurring errors to HTTP responses.
func (c *RecurringController) handleRecurringError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		statusCode := c.getStatusCodeForRecurringError(recErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecurringError maps recurring error codes to HTTP status codes.
func (c *RecurringController) getStatusCodeForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedRecurring:
		return http.StatusForbidden
	case domainerror.ErrCodeAlreadySettled,
		domainerror.ErrCodeNotSettled,
		domainerror.ErrCodeItemInactiveForMonth,
		domainerror.ErrCodeSettleInProgress:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidDayOfMonth,
		domainerror.ErrCodeInvalidRecurringAmount,
		domainerror.ErrCodeInvalidActiveMonth,
		domainerror.ErrCodeInvalidMonthKey,
		domainerror.ErrCodeMissingRecurringFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
