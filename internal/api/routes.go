package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/middleware"
)

// SetupRoutes wires all endpoints. Global middleware (logging, recovery,
// CORS) is expected to be applied to the engine before this is called; the
// auth middleware is applied per resource group here so preflight OPTIONS
// requests bypass it.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	userService core.UserService,
	planService core.PlanService,
	budgetService core.BudgetService,
	assetService core.AssetService,
	debtService core.DebtService,
	feedbackService core.FeedbackService,
) {
	userHandler := NewUserHandler(userService)
	planHandler := NewPlanHandler(planService)
	budgetHandler := NewBudgetHandler(budgetService)
	assetHandler := NewAssetHandler(assetService)
	debtHandler := NewDebtHandler(debtService)
	feedbackHandler := NewFeedbackHandler(feedbackService)

	// Verbs not wired for a path get the fixed 405 body instead of a 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	})

	verify := authMW.VerifyToken()
	apiV1 := router.Group("/api/v1")
	{
		users := apiV1.Group("/users", verify)
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/me", userHandler.UpdateMe)
			users.POST("", userHandler.Create)
			users.GET("/versions", userHandler.GetVersions)
		}

		plans := apiV1.Group("/plans", verify)
		{
			plans.GET("", planHandler.List)
			plans.POST("", planHandler.Create)
			plans.GET("/:planId", planHandler.Get)
			plans.PUT("/:planId", planHandler.Update)
			plans.DELETE("/:planId", planHandler.Delete)
		}

		budgets := apiV1.Group("/budgets", verify)
		{
			budgets.GET("", budgetHandler.List)
			budgets.POST("", budgetHandler.Create)
			budgets.POST("/feedback", feedbackHandler.Generate)
			budgets.GET("/:budgetId", budgetHandler.Get)
			budgets.PUT("/:budgetId", budgetHandler.Update)
			budgets.DELETE("/:budgetId", budgetHandler.Delete)
		}

		assets := apiV1.Group("/assets", verify)
		{
			assets.GET("", assetHandler.List)
			assets.POST("", assetHandler.Create)
			assets.GET("/:assetId", assetHandler.Get)
			assets.PUT("/:assetId", assetHandler.Update)
			assets.DELETE("/:assetId", assetHandler.Delete)
		}

		debts := apiV1.Group("/debts", verify)
		{
			debts.GET("", debtHandler.List)
			debts.POST("", debtHandler.Create)
			debts.GET("/:debtId", debtHandler.Get)
			debts.PUT("/:debtId", debtHandler.Update)
			debts.DELETE("/:debtId", debtHandler.Delete)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured under /api/v1")
}
