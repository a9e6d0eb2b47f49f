package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/printforge-edu/learning-service/internal/services"
	"github.com/printforge-edu/learning-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves reference tables and quiz results as xlsx
// downloads.
type ExportHandler struct {
	BaseHandler
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler:   NewBaseHandler(logger),
		exportService: exportService,
	}
}

// ExportMaterials downloads the material comparison table
// @Summary Export materials
// @Description Downloads the material comparison table as an xlsx workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /export/materials [get]
func (h *ExportHandler) ExportMaterials(c *gin.Context) {
	h.LogRequest(c, "Exporting materials workbook")

	file, err := h.exportService.MaterialsWorkbook(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.writeWorkbook(c, file, "materials.xlsx")
}

// ExportGlossary downloads the glossary
// @Summary Export glossary
// @Description Downloads the glossary as an xlsx workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /export/glossary [get]
func (h *ExportHandler) ExportGlossary(c *gin.Context) {
	h.LogRequest(c, "Exporting glossary workbook")

	file, err := h.exportService.GlossaryWorkbook(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.writeWorkbook(c, file, "glossary.xlsx")
}

// ExportUserResults downloads one user's quiz results
// @Summary Export quiz results
// @Description Downloads a user's quiz results as an xlsx workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path uint true "User ID"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /export/users/{id}/results [get]
func (h *ExportHandler) ExportUserResults(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Exporting quiz results workbook", "user_id", id)

	file, err := h.exportService.ResultsWorkbook(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.writeWorkbook(c, file, fmt.Sprintf("quiz-results-%d.xlsx", id))
}

func (h *ExportHandler) writeWorkbook(c *gin.Context, file *excelize.File, filename string) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(c.Writer); err != nil {
		h.LogError(c, "Failed to write workbook", err, "filename", filename)
	}
}

func (h *ExportHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "User not found",
		})
	default:
		h.LogError(c, "Unhandled service error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
