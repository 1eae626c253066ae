package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeledger/backend/internal/application/usecase/budget"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/integration/entrypoint/dto"
	"github.com/lifeledger/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget breakdown endpoints.
type BudgetController struct {
	breakdownUseCase *budget.GetBreakdownUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(breakdownUseCase *budget.GetBreakdownUseCase) *BudgetController {
	return &BudgetController{breakdownUseCase: breakdownUseCase}
}

// GetBreakdown handles GET /budget/breakdown requests. The month query
// parameter selects the viewing month and defaults to the current month.
func (c *BudgetController) GetBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	month := ctx.Query("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), budget.GetBreakdownInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetBreakdownResponse(output))
}

// handleBudgetError maps budget errors to HTTP responses. An invalid month
// key surfaces as a recurring error since the month key is shared.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		statusCode := http.StatusInternalServerError
		if recErr.Code == domainerror.ErrCodeInvalidMonthKey {
			statusCode = http.StatusBadRequest
		}
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
