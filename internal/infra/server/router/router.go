// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	reportController      *controller.ReportController
	comparisonController  *controller.ComparisonController
	budgetController      *controller.BudgetController
	dashboardController   *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
	comparisonController *controller.ComparisonController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		reportController:      reportController,
		comparisonController:  comparisonController,
		budgetController:      budgetController,
		dashboardController:   dashboardController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Account routes
		if r.accountController != nil {
			accounts := v1.Group("/accounts")
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Rename)
				accounts.DELETE("/:id", r.accountController.Delete)
				accounts.GET("/:id/balance", r.accountController.GetBalance)
			}
		}

		// Category routes
		if r.categoryController != nil {
			categories := v1.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
				categories.POST("/resolve", r.categoryController.Resolve)
				categories.POST("/:id/subcategories", r.categoryController.AddSubCategory)
			}
		}

		// Transaction routes
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/import", r.transactionController.Import)
			}
		}

		// Report routes
		if r.reportController != nil {
			reports := v1.Group("/reports")
			{
				reports.GET("/by-category", r.reportController.ByCategory)
				reports.GET("/by-date", r.reportController.ByDate)
				reports.GET("/heatmap", r.reportController.Heatmap)
				reports.GET("/calendar", r.reportController.Calendar)
			}
		}

		// Comparison route
		if r.comparisonController != nil {
			v1.GET("/comparison", r.comparisonController.Compare)
		}

		// Budget routes
		if r.budgetController != nil {
			budget := v1.Group("/budget")
			{
				budget.GET("", r.budgetController.GetGlobal)
				budget.PUT("", r.budgetController.SetGlobal)
				budget.GET("/overview", r.budgetController.Overview)
			}

			categoryBudgets := v1.Group("/budgets/categories")
			{
				categoryBudgets.GET("/:categoryId", r.budgetController.GetCategory)
				categoryBudgets.PUT("/:categoryId", r.budgetController.UpsertCategory)
				categoryBudgets.DELETE("/:categoryId", r.budgetController.DeleteCategory)
			}
		}

		// Dashboard route
		if r.dashboardController != nil {
			v1.GET("/dashboard", r.dashboardController.Overview)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
