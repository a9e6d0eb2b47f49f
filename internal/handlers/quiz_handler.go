package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printforge-edu/learning-service/internal/services"
	"github.com/printforge-edu/learning-service/internal/utils"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type QuizHandler struct {
	BaseHandler
	quizService services.QuizService
	validator   *validator.Validator
}

func NewQuizHandler(quizService services.QuizService, validator *validator.Validator, logger utils.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: NewBaseHandler(logger),
		quizService: quizService,
		validator:   validator,
	}
}

// SubmitQuizResult scores and records a quiz submission
// @Summary Submit quiz result
// @Description Scores the submitted answers against the module's questions and records the result
// @Tags quiz
// @Accept json
// @Produce json
// @Param result body services.SubmitQuizResultRequest true "Submission data"
// @Success 201 {object} models.QuizResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quiz/results [post]
func (h *QuizHandler) SubmitQuizResult(c *gin.Context) {
	var req services.SubmitQuizResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Submitting quiz result", "user_id", req.UserID, "module_id", req.ModuleID)

	result, err := h.quizService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CreateQuizQuestion adds a question to a module's quiz
// @Summary Create quiz question
// @Description Adds a new question to a module's quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param question body services.CreateQuizQuestionRequest true "Question data"
// @Success 201 {object} models.QuizQuestion
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quiz/questions [post]
func (h *QuizHandler) CreateQuizQuestion(c *gin.Context) {
	var req services.CreateQuizQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating quiz question", "module_id", req.ModuleID)

	question, err := h.quizService.CreateQuestion(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *QuizHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrModuleNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Module not found",
		})
	default:
		h.LogError(c, "Unhandled service error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
