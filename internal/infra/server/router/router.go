// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lifeledger/backend/internal/integration/entrypoint/controller"
	"github.com/lifeledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	habitController       *controller.HabitController
	transactionController *controller.TransactionController
	recurringController   *controller.RecurringController
	shoppingController    *controller.ShoppingController
	moodController        *controller.MoodController
	budgetController      *controller.BudgetController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	habitController *controller.HabitController,
	transactionController *controller.TransactionController,
	recurringController *controller.RecurringController,
	shoppingController *controller.ShoppingController,
	moodController *controller.MoodController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		habitController:       habitController,
		transactionController: transactionController,
		recurringController:   recurringController,
		shoppingController:    shoppingController,
		moodController:        moodController,
		budgetController:      budgetController,
		dashboardController:   dashboardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

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
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.loginRateLimiter.Middleware(), r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.loginRateLimiter.Middleware(), r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.PATCH("/:id", r.habitController.Update)
				habits.DELETE("/:id", r.habitController.Delete)
				habits.POST("/:id/complete", r.habitController.Complete)
				habits.DELETE("/:id/complete", r.habitController.Uncomplete)
				habits.POST("/:id/reset", r.habitController.ResetStreak)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.recurringController != nil && r.authMiddleware != nil {
			recurring := v1.Group("/recurring")
			recurring.Use(r.authMiddleware.Authenticate())
			{
				recurring.GET("", r.recurringController.ListMonth)
				recurring.POST("", r.recurringController.Create)
				recurring.PATCH("/:id", r.recurringController.Update)
				recurring.DELETE("/:id", r.recurringController.Delete)
				recurring.POST("/:id/settle", r.recurringController.Settle)
				recurring.POST("/:id/revert", r.recurringController.Revert)
				recurring.POST("/:id/omit", r.recurringController.Omit)
				recurring.POST("/:id/restore", r.recurringController.Restore)
			}
		}

		if r.shoppingController != nil && r.authMiddleware != nil {
			shopping := v1.Group("/shopping")
			shopping.Use(r.authMiddleware.Authenticate())
			{
				shopping.GET("/lists", r.shoppingController.ListLists)
				shopping.POST("/lists", r.shoppingController.CreateList)
				shopping.DELETE("/lists/:id", r.shoppingController.DeleteList)
				shopping.POST("/lists/:id/items", r.shoppingController.AddItem)
				shopping.PATCH("/items/:id", r.shoppingController.UpdateItem)
				shopping.DELETE("/items/:id", r.shoppingController.DeleteItem)
				shopping.POST("/items/:id/purchase", r.shoppingController.Purchase)
				shopping.DELETE("/items/:id/purchase", r.shoppingController.RevertPurchase)
			}
		}

		if r.moodController != nil && r.authMiddleware != nil {
			moods := v1.Group("/moods")
			moods.Use(r.authMiddleware.Authenticate())
			{
				moods.GET("", r.moodController.List)
				moods.PUT("", r.moodController.Record)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budget := v1.Group("/budget")
			budget.Use(r.authMiddleware.Authenticate())
			{
				budget.GET("/breakdown", r.budgetController.GetBreakdown)
			}
		}

		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
