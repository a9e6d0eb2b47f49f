package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printforge-edu/learning-service/internal/models"
	"github.com/printforge-edu/learning-service/internal/services"
	"github.com/printforge-edu/learning-service/internal/utils"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type ModuleHandler struct {
	BaseHandler
	moduleService services.ModuleService
	quizService   services.QuizService
	validator     *validator.Validator
}

func NewModuleHandler(
	moduleService services.ModuleService,
	quizService services.QuizService,
	validator *validator.Validator,
	logger utils.Logger,
) *ModuleHandler {
	return &ModuleHandler{
		BaseHandler:   NewBaseHandler(logger),
		moduleService: moduleService,
		quizService:   quizService,
		validator:     validator,
	}
}

// ListModules lists learning modules
// @Summary List modules
// @Description Lists modules in display order, optionally filtered by type
// @Tags modules
// @Produce json
// @Param type query string false "Module type filter"
// @Success 200 {array} models.Module
// @Failure 500 {object} ErrorResponse
// @Router /modules [get]
func (h *ModuleHandler) ListModules(c *gin.Context) {
	var moduleType *models.ModuleType
	if raw := c.Query("type"); raw != "" {
		t := models.ModuleType(raw)
		moduleType = &t
	}

	modules, err := h.moduleService.List(c.Request.Context(), moduleType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

// GetModule retrieves a module by ID
// @Summary Get module
// @Description Retrieves a single learning module
// @Tags modules
// @Produce json
// @Param id path uint true "Module ID"
// @Success 200 {object} models.Module
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /modules/{id} [get]
func (h *ModuleHandler) GetModule(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	module, err := h.moduleService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

// GetModuleQuiz lists the quiz questions of a module
// @Summary Get module quiz
// @Description Lists the quiz questions attached to a module
// @Tags modules
// @Produce json
// @Param id path uint true "Module ID"
// @Success 200 {array} models.QuizQuestion
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /modules/{id}/quiz [get]
func (h *ModuleHandler) GetModuleQuiz(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	// The module must exist even when it carries no questions.
	if _, err := h.moduleService.Get(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	questions, err := h.quizService.Questions(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateModule adds a module to the catalog
// @Summary Create module
// @Description Adds a new learning module to the catalog
// @Tags modules
// @Accept json
// @Produce json
// @Param module body services.CreateModuleRequest true "Module data"
// @Success 201 {object} models.Module
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /modules [post]
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var req services.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating module", "title", req.Title)

	module, err := h.moduleService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, module)
}

func (h *ModuleHandler) handleServiceError(c *gin.Context, err error) {
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
