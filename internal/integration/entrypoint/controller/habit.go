package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/usecase/habit"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
	"github.com/lifeledger/backend/internal/integration/entrypoint/dto"
	"github.com/lifeledger/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit endpoints.
type HabitController struct {
	createUseCase     *habit.CreateHabitUseCase
	listUseCase       *habit.ListHabitsUseCase
	updateUseCase     *habit.UpdateHabitUseCase
	deleteUseCase     *habit.DeleteHabitUseCase
	completeUseCase   *habit.CompleteHabitUseCase
	uncompleteUseCase *habit.UncompleteHabitUseCase
	resetUseCase      *habit.ResetStreakUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	createUseCase *habit.CreateHabitUseCase,
	listUseCase *habit.ListHabitsUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
	completeUseCase *habit.CompleteHabitUseCase,
	uncompleteUseCase *habit.UncompleteHabitUseCase,
	resetUseCase *habit.ResetStreakUseCase,
) *HabitController {
	return &HabitController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		completeUseCase:   completeUseCase,
		uncompleteUseCase: uncompleteUseCase,
		resetUseCase:      resetUseCase,
	}
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	input := habit.CreateHabitInput{
		UserID:    userID,
		Name:      req.Name,
		Icon:      req.Icon,
		Frequency: valueobject.Frequency(req.Frequency),
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeMissingHabitFields),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(output.Habit))
}

// List handles GET /habits requests.
func (c *HabitController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	input := habit.ListHabitsInput{UserID: userID}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingHabitFields),
			})
			return
		}
		input.ReferenceDate = date
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits))
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	input := habit.UpdateHabitInput{
		UserID:  userID,
		HabitID: habitID,
		Name:    req.Name,
		Icon:    req.Icon,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID",
				Code:  string(domainerror.ErrCodeMissingHabitFields),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	input := habit.DeleteHabitInput{
		UserID:  userID,
		HabitID: habitID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Complete handles POST /habits/:id/complete requests.
func (c *HabitController) Complete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	input := habit.CompleteHabitInput{
		UserID:  userID,
		HabitID: habitID,
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Uncomplete handles DELETE /habits/:id/complete requests.
func (c *HabitController) Uncomplete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	input := habit.UncompleteHabitInput{
		UserID:  userID,
		HabitID: habitID,
	}

	output, err := c.uncompleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// ResetStreak handles POST /habits/:id/reset requests.
func (c *HabitController) ResetStreak(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID",
			Code:  string(domainerror.ErrCodeHabitNotFound),
		})
		return
	}

	input := habit.ResetStreakInput{
		UserID:  userID,
		HabitID: habitID,
	}

	output, err := c.resetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// handleHabitError maps habit errors to HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		statusCode := c.getStatusCodeForHabitError(habitErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeNotAuthorizedCategory {
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedHabit:
		return http.StatusForbidden
	case domainerror.ErrCodeHabitAlreadyCompleted,
		domainerror.ErrCodeHabitNotCompleted:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeHabitNameRequired,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
