package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printforge-edu/learning-service/internal/services"
	"github.com/printforge-edu/learning-service/internal/utils"
	"github.com/printforge-edu/learning-service/internal/validator"
)

type HandlerManager struct {
	userHandler      *UserHandler
	moduleHandler    *ModuleHandler
	quizHandler      *QuizHandler
	progressHandler  *ProgressHandler
	referenceHandler *ReferenceHandler
	exportHandler    *ExportHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		userHandler:      NewUserHandler(serviceManager.User(), serviceManager.Quiz(), serviceManager.Progress(), validator, logger),
		moduleHandler:    NewModuleHandler(serviceManager.Module(), serviceManager.Quiz(), validator, logger),
		quizHandler:      NewQuizHandler(serviceManager.Quiz(), validator, logger),
		progressHandler:  NewProgressHandler(serviceManager.Progress(), validator, logger),
		referenceHandler: NewReferenceHandler(serviceManager.Reference(), validator, logger),
		exportHandler:    NewExportHandler(serviceManager.Export(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", hm.userHandler.CreateUser)
			users.GET("/:id", hm.userHandler.GetUser)
			users.PUT("/:id/progress", hm.userHandler.UpdateUserProgress)
			users.GET("/:id/progress", hm.userHandler.GetUserProgress)
			users.GET("/:id/overall-progress", hm.userHandler.GetUserOverallProgress)
			users.GET("/:id/quiz/results", hm.userHandler.GetUserQuizResults)
		}

		modules := api.Group("/modules")
		{
			modules.GET("", hm.moduleHandler.ListModules)
			modules.POST("", hm.moduleHandler.CreateModule)
			modules.GET("/:id", hm.moduleHandler.GetModule)
			modules.GET("/:id/quiz", hm.moduleHandler.GetModuleQuiz)
		}

		quiz := api.Group("/quiz")
		{
			quiz.POST("/results", hm.quizHandler.SubmitQuizResult)
			quiz.POST("/questions", hm.quizHandler.CreateQuizQuestion)
		}

		api.POST("/progress", hm.progressHandler.RecordVisit)

		glossary := api.Group("/glossary")
		{
			glossary.GET("", hm.referenceHandler.ListGlossaryTerms)
			glossary.POST("", hm.referenceHandler.CreateGlossaryTerm)
			glossary.GET("/:id", hm.referenceHandler.GetGlossaryTerm)
		}

		parts := api.Group("/printer-parts")
		{
			parts.GET("", hm.referenceHandler.ListPrinterParts)
			parts.POST("", hm.referenceHandler.CreatePrinterPart)
			parts.GET("/:id", hm.referenceHandler.GetPrinterPart)
		}

		materials := api.Group("/materials")
		{
			materials.GET("", hm.referenceHandler.ListMaterials)
			materials.POST("", hm.referenceHandler.CreateMaterial)
			materials.GET("/:id", hm.referenceHandler.GetMaterial)
		}

		export := api.Group("/export")
		{
			export.GET("/materials", hm.exportHandler.ExportMaterials)
			export.GET("/glossary", hm.exportHandler.ExportGlossary)
			export.GET("/users/:id/results", hm.exportHandler.ExportUserResults)
		}
	}
}

// HealthCheck reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "learning-service",
	})
}
