// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

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
	"github.com/lifeledger/backend/internal/integration/persistence/model"
	"github.com/lifeledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
const testAppBaseURL = "http://localhost:5173"

type testContext struct {
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	serverPort   int
	accessToken  string
	refreshToken string
	resetToken   string
	expiredToken string

	currentUserID      uuid.UUID
	currentCategoryID  uuid.UUID
	currentHabitID     uuid.UUID
	currentRecurringID uuid.UUID
	currentListID      uuid.UUID
	currentItemID      uuid.UUID
	lastTransactionID  uuid.UUID
	lastCreatedID      uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up suite-wide resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers every step definition and wires the
// per-scenario test context.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("lifeledger", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"categories":            &model.CategoryModel{},
			"habits":                &model.HabitModel{},
			"transactions":          &model.TransactionModel{},
			"recurring_items":       &model.RecurringItemModel{},
			"shopping_lists":        &model.ShoppingListModel{},
			"shopping_items":        &model.ShoppingItemModel{},
			"mood_entries":          &model.MoodEntryModel{},
			"email_queue":           &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Category setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)

	// Habit setup steps
	ctx.Given(`^a habit exists with name "([^"]*)" and frequency "([^"]*)"$`, test.aHabitExistsWithNameAndFrequency)
	ctx.Given(`^the habit has a current streak of (\d+)$`, test.theHabitHasACurrentStreakOf)
	ctx.Given(`^the habit was completed today$`, test.theHabitWasCompletedToday)

	// Transaction setup steps
	ctx.Given(`^a transaction exists with description "([^"]*)", amount "([^"]*)" and type "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a transaction exists this month with amount "([^"]*)", type "([^"]*)" and budget focus "([^"]*)"$`, test.aTransactionExistsWithBudgetFocus)

	// Recurring setup steps
	ctx.Given(`^a recurring item exists with name "([^"]*)", amount "([^"]*)" and day (\d+)$`, test.aRecurringItemExists)
	ctx.Given(`^the recurring item is settled for the current month$`, test.theRecurringItemIsSettledForTheCurrentMonth)
	ctx.Given(`^the recurring item is omitted for the current month$`, test.theRecurringItemIsOmittedForTheCurrentMonth)

	// Shopping setup steps
	ctx.Given(`^a shopping list exists with name "([^"]*)"$`, test.aShoppingListExistsWithName)
	ctx.Given(`^a shopping item exists with name "([^"]*)" and estimated amount "([^"]*)"$`, test.aShoppingItemExists)
	ctx.Given(`^the shopping item is purchased$`, test.theShoppingItemIsPurchased)

	// Mood setup steps
	ctx.Given(`^a mood entry exists on "([^"]*)" with score (\d+)$`, test.aMoodEntryExistsOnWithScore)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentHabitID = uuid.Nil
	t.currentRecurringID = uuid.Nil
	t.currentListID = uuid.Nil
	t.currentItemID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.lastCreatedID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			habitRepo := persistence.NewHabitRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			recurringRepo := persistence.NewRecurringRepository(testDB.DbConn)
			shoppingRepo := persistence.NewShoppingRepository(testDB.DbConn)
			moodRepo := persistence.NewMoodRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewResetTokenService(tokenRepo)
			lockService := adapters.NewRedisLockService(mock.NewRedis())

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailQueueRepo)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailQueueRepo, testAppBaseURL)
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
				return testDB != nil && testDB.DbConn != nil
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
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "SecurePass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "lifeledger",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "lifeledger",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Color:     "#6366F1",
		Icon:      "tag",
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aHabitExistsWithNameAndFrequency(name, frequency string) error {
	habitID := uuid.New()
	t.currentHabitID = habitID

	now := time.Now().UTC()
	habitModel := &model.HabitModel{
		ID:        habitID,
		UserID:    t.currentUserID,
		Name:      name,
		Icon:      "star",
		Frequency: frequency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(habitModel).Error
}

func (t *testContext) theHabitHasACurrentStreakOf(streak int) error {
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	return t.db.DbConn.Model(&model.HabitModel{}).
		Where("id = ?", t.currentHabitID).
		Updates(map[string]any{
			"current_streak":    streak,
			"longest_streak":    streak,
			"last_completed_at": yesterday,
		}).Error
}

func (t *testContext) theHabitWasCompletedToday() error {
	now := time.Now().UTC()
	return t.db.DbConn.Model(&model.HabitModel{}).
		Where("id = ?", t.currentHabitID).
		Updates(map[string]any{
			"current_streak":    1,
			"longest_streak":    1,
			"last_completed_at": now,
		}).Error
}

func (t *testContext) aTransactionExists(description, amount, transactionType string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		Date:        today,
		Description: description,
		Amount:      value,
		Type:        transactionType,
		Source:      "manual",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aTransactionExistsWithBudgetFocus(amount, transactionType, focus string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastTransactionID = transactionID

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		Date:        today,
		Description: "Tagged transaction",
		Amount:      value,
		Type:        transactionType,
		BudgetFocus: &focus,
		Source:      "manual",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aRecurringItemExists(name, amount string, dayOfMonth int) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	itemID := uuid.New()
	t.currentRecurringID = itemID

	now := time.Now().UTC()
	itemModel := &model.RecurringItemModel{
		ID:            itemID,
		UserID:        t.currentUserID,
		Name:          name,
		Amount:        value,
		Type:          "expense",
		DayOfMonth:    dayOfMonth,
		ActiveMonths:  "[1,2,3,4,5,6,7,8,9,10,11,12]",
		OmittedMonths: "[]",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(itemModel).Error
}

func (t *testContext) theRecurringItemIsSettledForTheCurrentMonth() error {
	var itemModel model.RecurringItemModel
	if err := t.db.DbConn.First(&itemModel, "id = ?", t.currentRecurringID).Error; err != nil {
		return fmt.Errorf("recurring item not found: %w", err)
	}

	now := time.Now().UTC()
	monthKey := now.Format("2006-01")

	transactionID := uuid.New()
	t.lastTransactionID = transactionID
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		Date:        time.Date(now.Year(), now.Month(), itemModel.DayOfMonth, 0, 0, 0, 0, time.UTC),
		Description: itemModel.Name,
		Amount:      itemModel.Amount,
		Type:        itemModel.Type,
		Source:      "recurring",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(transactionModel).Error; err != nil {
		return err
	}

	return t.db.DbConn.Model(&model.RecurringItemModel{}).
		Where("id = ?", t.currentRecurringID).
		Updates(map[string]any{
			"last_settled_month":  monthKey,
			"last_transaction_id": transactionID,
		}).Error
}

func (t *testContext) theRecurringItemIsOmittedForTheCurrentMonth() error {
	monthKey := time.Now().UTC().Format("2006-01")
	omitted, err := json.Marshal([]string{monthKey})
	if err != nil {
		return err
	}

	return t.db.DbConn.Model(&model.RecurringItemModel{}).
		Where("id = ?", t.currentRecurringID).
		Update("omitted_months", string(omitted)).Error
}

func (t *testContext) aShoppingListExistsWithName(name string) error {
	listID := uuid.New()
	t.currentListID = listID

	now := time.Now().UTC()
	listModel := &model.ShoppingListModel{
		ID:        listID,
		UserID:    t.currentUserID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(listModel).Error
}

func (t *testContext) aShoppingItemExists(name, estimatedAmount string) error {
	value, err := decimal.NewFromString(estimatedAmount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", estimatedAmount, err)
	}

	itemID := uuid.New()
	t.currentItemID = itemID

	now := time.Now().UTC()
	itemModel := &model.ShoppingItemModel{
		ID:              itemID,
		ListID:          t.currentListID,
		UserID:          t.currentUserID,
		Name:            name,
		EstimatedAmount: value,
		Purchased:       false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return t.db.DbConn.Create(itemModel).Error
}

func (t *testContext) theShoppingItemIsPurchased() error {
	var itemModel model.ShoppingItemModel
	if err := t.db.DbConn.First(&itemModel, "id = ?", t.currentItemID).Error; err != nil {
		return fmt.Errorf("shopping item not found: %w", err)
	}

	now := time.Now().UTC()
	transactionID := uuid.New()
	t.lastTransactionID = transactionID
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Description: itemModel.Name,
		Amount:      itemModel.EstimatedAmount,
		Type:        "expense",
		Source:      "shopping",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.db.DbConn.Create(transactionModel).Error; err != nil {
		return err
	}

	return t.db.DbConn.Model(&model.ShoppingItemModel{}).
		Where("id = ?", t.currentItemID).
		Updates(map[string]any{
			"purchased":      true,
			"purchased_at":   now,
			"final_amount":   itemModel.EstimatedAmount,
			"transaction_id": transactionID,
		}).Error
}

func (t *testContext) aMoodEntryExistsOnWithScore(day string, score int) error {
	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		return fmt.Errorf("invalid day '%s': %w", day, err)
	}

	now := time.Now().UTC()
	moodModel := &model.MoodEntryModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Day:       date,
		Score:     score,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(moodModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{habit_id}}", t.currentHabitID.String())
	content = strings.ReplaceAll(content, "{{recurring_id}}", t.currentRecurringID.String())
	content = strings.ReplaceAll(content, "{{list_id}}", t.currentListID.String())
	content = strings.ReplaceAll(content, "{{item_id}}", t.currentItemID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastCreatedID.String())
	content = strings.ReplaceAll(content, "{{current_month}}", time.Now().UTC().Format("2006-01"))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var req *http.Request
	var err error
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastCreatedID = id
			}
		}

		// Settle and purchase responses report the created transaction
		if txnStr, ok := responseBody["transaction_id"].(string); ok {
			if id, err := uuid.Parse(txnStr); err == nil {
				t.lastTransactionID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
