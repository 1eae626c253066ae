package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeledger/backend/internal/application/usecase/mood"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/integration/entrypoint/dto"
	"github.com/lifeledger/backend/internal/integration/entrypoint/middleware"
)

// MoodController handles mood tracking endpoints.
type MoodController struct {
	recordUseCase *mood.RecordMoodUseCase
	listUseCase   *mood.ListMoodsUseCase
}

// NewMoodController creates a new mood controller instance.
func NewMoodController(
	recordUseCase *mood.RecordMoodUseCase,
	listUseCase *mood.ListMoodsUseCase,
) *MoodController {
	return &MoodController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
	}
}

// Record handles PUT /moods requests. Recording twice for the same day
// overwrites the previous entry.
func (c *MoodController) Record(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordMoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidMoodScore),
		})
		return
	}

	input := mood.RecordMoodInput{
		UserID: userID,
		Score:  req.Score,
		Note:   req.Note,
	}

	if req.Day != "" {
		day, err := time.Parse(dateLayout, req.Day)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid day format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidMoodRange),
			})
			return
		}
		input.Day = day
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoodEntryResponse(output.Entry))
}

// List handles GET /moods requests. The start and end query parameters
// bound the range; both default to the last 30 days.
func (c *MoodController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	now := time.Now().UTC()
	input := mood.ListMoodsInput{
		UserID:   userID,
		StartDay: now.AddDate(0, 0, -30),
		EndDay:   now,
	}

	if startStr := ctx.Query("start"); startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidMoodRange),
			})
			return
		}
		input.StartDay = start
	}

	if endStr := ctx.Query("end"); endStr != "" {
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidMoodRange),
			})
			return
		}
		input.EndDay = end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoodListResponse(output))
}

// handleMoodError maps mood errors to HTTP responses.
func (c *MoodController) handleMoodError(ctx *gin.Context, err error) {
	var moodErr *domainerror.MoodError
	if errors.As(err, &moodErr) {
		statusCode := c.getStatusCodeForMoodError(moodErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: moodErr.Message,
			Code:  string(moodErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMoodError maps mood error codes to HTTP status codes.
func (c *MoodController) getStatusCodeForMoodError(code domainerror.MoodErrorCode) int {
	switch code {
	case domainerror.ErrCodeMoodEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedMood:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidMoodScore,
		domainerror.ErrCodeInvalidMoodRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
