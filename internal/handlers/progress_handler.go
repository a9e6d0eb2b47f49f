package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printforge-edu/learning-service/internal/services"
	"github.com/printforge-edu/learning-service/internal/utils"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type ProgressHandler struct {
	BaseHandler
	progressService services.ProgressService
	validator       *validator.Validator
}

func NewProgressHandler(progressService services.ProgressService, validator *validator.Validator, logger utils.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     NewBaseHandler(logger),
		progressService: progressService,
		validator:       validator,
	}
}

// RecordVisit records one visit to a module
// @Summary Record module visit
// @Description Upserts the user's progress row for a module, accumulating time spent
// @Tags progress
// @Accept json
// @Produce json
// @Param visit body services.RecordVisitRequest true "Visit data"
// @Success 200 {object} models.Progress
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /progress [post]
func (h *ProgressHandler) RecordVisit(c *gin.Context) {
	var req services.RecordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Recording module visit", "user_id", req.UserID, "module_id", req.ModuleID)

	progress, err := h.progressService.RecordVisit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *ProgressHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	default:
		h.LogError(c, "Unhandled service error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
