package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/printforge-edu/learning-service/internal/services"
	"github.com/printforge-edu/learning-service/internal/utils"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type UserHandler struct {
	BaseHandler
	userService     services.UserService
	quizService     services.QuizService
	progressService services.ProgressService
	validator       *validator.Validator
}

func NewUserHandler(
	userService services.UserService,
	quizService services.QuizService,
	progressService services.ProgressService,
	validator *validator.Validator,
	logger utils.Logger,
) *UserHandler {
	return &UserHandler{
		BaseHandler:     NewBaseHandler(logger),
		userService:     userService,
		quizService:     quizService,
		progressService: progressService,
		validator:       validator,
	}
}

// CreateUser registers a new user account
// @Summary Create user
// @Description Registers a new user with a unique username
// @Tags users
// @Accept json
// @Produce json
// @Param user body services.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating user", "username", req.Username)

	user, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser retrieves a user by ID
// @Summary Get user
// @Description Retrieves a user by its ID
// @Tags users
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUserProgress replaces a user's progress document
// @Summary Update user progress blob
// @Description Replaces the user's free-form progress document wholesale
// @Tags users
// @Accept json
// @Produce json
// @Param id path uint true "User ID"
// @Param progress body services.UpdateUserProgressRequest true "Progress data"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/progress [put]
func (h *UserHandler) UpdateUserProgress(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateUserProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Updating user progress data", "user_id", id)

	user, err := h.userService.UpdateProgress(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserQuizResults lists a user's quiz results
// @Summary Get quiz results
// @Description Lists quiz results for a user, optionally narrowed to one module
// @Tags users
// @Produce json
// @Param id path uint true "User ID"
// @Param moduleId query uint false "Module ID filter"
// @Success 200 {array} models.QuizResult
// @Failure 400 {object} ErrorResponse
// @Router /users/{id}/quiz/results [get]
func (h *UserHandler) GetUserQuizResults(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var moduleID *uint
	if raw := c.Query("moduleId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid moduleId parameter",
				Details: raw,
			})
			return
		}
		v := uint(parsed)
		moduleID = &v
	}

	results, err := h.quizService.Results(c.Request.Context(), id, moduleID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetUserProgress lists per-module progress rows for a user
// @Summary Get module progress
// @Description Lists the per-module progress rows recorded for a user
// @Tags users
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {array} models.Progress
// @Failure 400 {object} ErrorResponse
// @Router /users/{id}/progress [get]
func (h *UserHandler) GetUserProgress(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	rows, err := h.progressService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetUserOverallProgress returns the aggregate completion percentage
// @Summary Get overall progress
// @Description Returns the percentage of catalog modules the user completed
// @Tags users
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {object} OverallProgressResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/{id}/overall-progress [get]
func (h *UserHandler) GetUserOverallProgress(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	progress, err := h.progressService.Overall(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, OverallProgressResponse{Progress: progress})
}

func (h *UserHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "User not found",
		})
	case errors.Is(err, services.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Username already exists",
		})
	default:
		h.LogError(c, "Unhandled service error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
