package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printforge-edu/learning-service/internal/services"
	"github.com/printforge-edu/learning-service/internal/utils"
	"github.com/printforge-edu/learning-service/internal/validator"
)

// ReferenceHandler serves the read-mostly reference catalogs: glossary
// terms, printer parts and materials.
type ReferenceHandler struct {
	BaseHandler
	referenceService services.ReferenceService
	validator        *validator.Validator
}

func NewReferenceHandler(referenceService services.ReferenceService, validator *validator.Validator, logger utils.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		BaseHandler:      NewBaseHandler(logger),
		referenceService: referenceService,
		validator:        validator,
	}
}

// ListGlossaryTerms lists glossary terms alphabetically
// @Summary List glossary terms
// @Tags glossary
// @Produce json
// @Success 200 {array} models.GlossaryTerm
// @Failure 500 {object} ErrorResponse
// @Router /glossary [get]
func (h *ReferenceHandler) ListGlossaryTerms(c *gin.Context) {
	terms, err := h.referenceService.GlossaryTerms(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, terms)
}

// GetGlossaryTerm retrieves one glossary term
// @Summary Get glossary term
// @Tags glossary
// @Produce json
// @Param id path uint true "Term ID"
// @Success 200 {object} models.GlossaryTerm
// @Failure 404 {object} ErrorResponse
// @Router /glossary/{id} [get]
func (h *ReferenceHandler) GetGlossaryTerm(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	term, err := h.referenceService.GlossaryTerm(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, term)
}

// CreateGlossaryTerm adds a glossary term
// @Summary Create glossary term
// @Tags glossary
// @Accept json
// @Produce json
// @Param term body services.CreateGlossaryTermRequest true "Term data"
// @Success 201 {object} models.GlossaryTerm
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /glossary [post]
func (h *ReferenceHandler) CreateGlossaryTerm(c *gin.Context) {
	var req services.CreateGlossaryTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating glossary term", "term", req.Term)

	term, err := h.referenceService.CreateGlossaryTerm(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, term)
}

// ListPrinterParts lists printer parts
// @Summary List printer parts
// @Tags printer-parts
// @Produce json
// @Success 200 {array} models.PrinterPart
// @Failure 500 {object} ErrorResponse
// @Router /printer-parts [get]
func (h *ReferenceHandler) ListPrinterParts(c *gin.Context) {
	parts, err := h.referenceService.Parts(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// GetPrinterPart retrieves one printer part
// @Summary Get printer part
// @Tags printer-parts
// @Produce json
// @Param id path uint true "Part ID"
// @Success 200 {object} models.PrinterPart
// @Failure 404 {object} ErrorResponse
// @Router /printer-parts/{id} [get]
func (h *ReferenceHandler) GetPrinterPart(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	part, err := h.referenceService.Part(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

// CreatePrinterPart adds a printer part
// @Summary Create printer part
// @Tags printer-parts
// @Accept json
// @Produce json
// @Param part body services.CreatePrinterPartRequest true "Part data"
// @Success 201 {object} models.PrinterPart
// @Failure 400 {object} ErrorResponse
// @Router /printer-parts [post]
func (h *ReferenceHandler) CreatePrinterPart(c *gin.Context) {
	var req services.CreatePrinterPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating printer part", "name", req.Name)

	part, err := h.referenceService.CreatePart(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, part)
}

// ListMaterials lists printing materials
// @Summary List materials
// @Tags materials
// @Produce json
// @Success 200 {array} models.Material
// @Failure 500 {object} ErrorResponse
// @Router /materials [get]
func (h *ReferenceHandler) ListMaterials(c *gin.Context) {
	materials, err := h.referenceService.Materials(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

// GetMaterial retrieves one material
// @Summary Get material
// @Tags materials
// @Produce json
// @Param id path uint true "Material ID"
// @Success 200 {object} models.Material
// @Failure 404 {object} ErrorResponse
// @Router /materials/{id} [get]
func (h *ReferenceHandler) GetMaterial(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	material, err := h.referenceService.Material(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

// CreateMaterial adds a material
// @Summary Create material
// @Tags materials
// @Accept json
// @Produce json
// @Param material body services.CreateMaterialRequest true "Material data"
// @Success 201 {object} models.Material
// @Failure 400 {object} ErrorResponse
// @Router /materials [post]
func (h *ReferenceHandler) CreateMaterial(c *gin.Context) {
	var req services.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Creating material", "name", req.Name)

	material, err := h.referenceService.CreateMaterial(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, material)
}

func (h *ReferenceHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrTermNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Glossary term not found",
		})
	case errors.Is(err, services.ErrPartNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Printer part not found",
		})
	case errors.Is(err, services.ErrMaterialNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Material not found",
		})
	case errors.Is(err, services.ErrDuplicateTerm):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "Glossary term already exists",
		})
	default:
		h.LogError(c, "Unhandled service error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
