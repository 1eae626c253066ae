// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lifeledger/backend/config"
	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/application/usecase/auth"
	"github.com/lifeledger/backend/internal/application/usecase/budget"
	"github.com/lifeledger/backend/internal/application/usecase/category"
	"github.com/lifeledger/backend/internal/application/usecase/dashboard"
	"github.com/lifeledger/backend/internal/application/usecase/habit"
	"github.com/lifeledger/backend/internal/application/usecase/mood"
	"github.com/lifeledger/backend/internal/application/usecase/recurring"
	"github.com/lifeledger/backend/internal/application/usecase/shopping"
	"github.com/lifeledger/backend/internal/application/usecase/transaction"
	"github.com/lifeledger/backend/internal/infra/server/router"
	"github.com/lifeledger/backend/internal/integration/adapters"
	"github.com/lifeledger/backend/internal/integration/entrypoint/controller"
	"github.com/lifeledger/backend/internal/integration/entrypoint/middleware"
	"github.com/lifeledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	DB         *gorm.DB
	Router     *router.Router
	EmailQueue adapter.EmailQueueRepository
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	recurringRepo := persistence.NewRecurringRepository(db)
	shoppingRepo := persistence.NewShoppingRepository(db)
	moodRepo := persistence.NewMoodRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewResetTokenService(tokenRepo)
	lockService := adapters.NewRedisLockService(redisClient)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailQueueRepo)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailQueueRepo, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create habit use cases
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo, categoryRepo)
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(habitRepo, categoryRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo)
	completeHabitUseCase := habit.NewCompleteHabitUseCase(habitRepo)
	uncompleteHabitUseCase := habit.NewUncompleteHabitUseCase(habitRepo)
	resetStreakUseCase := habit.NewResetStreakUseCase(habitRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create recurring use cases
	createRecurringUseCase := recurring.NewCreateRecurringItemUseCase(recurringRepo, categoryRepo)
	updateRecurringUseCase := recurring.NewUpdateRecurringItemUseCase(recurringRepo, categoryRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringItemUseCase(recurringRepo)
	listMonthUseCase := recurring.NewListMonthUseCase(recurringRepo)
	settleItemUseCase := recurring.NewSettleItemUseCase(recurringRepo, lockService)
	revertItemUseCase := recurring.NewRevertItemUseCase(recurringRepo, lockService)
	omitMonthUseCase := recurring.NewOmitMonthUseCase(recurringRepo)
	restoreMonthUseCase := recurring.NewRestoreMonthUseCase(recurringRepo)

	// Create shopping use cases
	createListUseCase := shopping.NewCreateListUseCase(shoppingRepo)
	listListsUseCase := shopping.NewListListsUseCase(shoppingRepo)
	deleteListUseCase := shopping.NewDeleteListUseCase(shoppingRepo)
	addItemUseCase := shopping.NewAddItemUseCase(shoppingRepo, categoryRepo)
	updateItemUseCase := shopping.NewUpdateItemUseCase(shoppingRepo)
	deleteItemUseCase := shopping.NewDeleteItemUseCase(shoppingRepo)
	purchaseItemUseCase := shopping.NewPurchaseItemUseCase(shoppingRepo, lockService)
	revertPurchaseUseCase := shopping.NewRevertPurchaseUseCase(shoppingRepo, lockService)

	// Create mood use cases
	recordMoodUseCase := mood.NewRecordMoodUseCase(moodRepo)
	listMoodsUseCase := mood.NewListMoodsUseCase(moodRepo)

	// Create budget and dashboard use cases
	getBreakdownUseCase := budget.NewGetBreakdownUseCase(transactionRepo)
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, recurringRepo, habitRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	habitController := controller.NewHabitController(
		createHabitUseCase,
		listHabitsUseCase,
		updateHabitUseCase,
		deleteHabitUseCase,
		completeHabitUseCase,
		uncompleteHabitUseCase,
		resetStreakUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	recurringController := controller.NewRecurringController(
		createRecurringUseCase,
		updateRecurringUseCase,
		deleteRecurringUseCase,
		listMonthUseCase,
		settleItemUseCase,
		revertItemUseCase,
		omitMonthUseCase,
		restoreMonthUseCase,
	)

	shoppingController := controller.NewShoppingController(
		createListUseCase,
		listListsUseCase,
		deleteListUseCase,
		addItemUseCase,
		updateItemUseCase,
		deleteItemUseCase,
		purchaseItemUseCase,
		revertPurchaseUseCase,
	)

	moodController := controller.NewMoodController(
		recordMoodUseCase,
		listMoodsUseCase,
	)

	budgetController := controller.NewBudgetController(getBreakdownUseCase)
	dashboardController := controller.NewDashboardController(getSummaryUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		habitController,
		transactionController,
		recurringController,
		shoppingController,
		moodController,
		budgetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Router:     r,
		EmailQueue: emailQueueRepo,
	}
}
