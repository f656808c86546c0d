// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/account"
	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/category"
	"github.com/pocket-ledger/backend/internal/application/usecase/comparison"
	"github.com/pocket-ledger/backend/internal/application/usecase/dashboard"
	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	"github.com/pocket-ledger/backend/internal/application/usecase/transaction"
	"github.com/pocket-ledger/backend/internal/infra/server/router"
	"github.com/pocket-ledger/backend/internal/integration/adapters"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The report cache is optional; a nil redis client leaves reports uncached.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters
	var reportCache adapter.ReportCache
	if redisClient != nil {
		reportCache = adapters.NewRedisReportCache(redisClient, cfg.Report.CacheTTL)
	}
	resolve := report.IdentityResolver

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo, transactionRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo, reportCache)
	renameAccountUseCase := account.NewRenameAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, reportCache)
	getBalanceUseCase := account.NewGetBalanceUseCase(accountRepo, transactionRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo, reportCache)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo, reportCache)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo, budgetRepo, reportCache)
	resolveCategoryUseCase := category.NewResolveOrCreateUseCase(categoryRepo, reportCache)
	addSubCategoryUseCase := category.NewAddSubCategoryUseCase(categoryRepo, reportCache)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo, resolve)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, reportCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, reportCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, reportCache)
	importTransactionsUseCase := transaction.NewImportTransactionsUseCase(transactionRepo, resolveCategoryUseCase, reportCache)

	// Create report use cases
	byCategoryUseCase := report.NewGetByCategoryUseCase(transactionRepo, categoryRepo, reportCache, resolve)
	byDateUseCase := report.NewGetByDateUseCase(transactionRepo, categoryRepo, reportCache, resolve)
	heatmapUseCase := report.NewGetHeatmapUseCase(transactionRepo, reportCache)
	calendarUseCase := report.NewGetCalendarUseCase(transactionRepo, reportCache)

	// Create comparison use case
	comparePeriodsUseCase := comparison.NewComparePeriodsUseCase(transactionRepo, categoryRepo, resolve)

	// Create budget use cases
	getGlobalBudgetUseCase := budget.NewGetGlobalBudgetUseCase(budgetRepo)
	setGlobalBudgetUseCase := budget.NewSetGlobalBudgetUseCase(budgetRepo)
	getCategoryBudgetUseCase := budget.NewGetCategoryBudgetUseCase(budgetRepo)
	upsertCategoryBudgetUseCase := budget.NewUpsertCategoryBudgetUseCase(budgetRepo, categoryRepo)
	deleteCategoryBudgetUseCase := budget.NewDeleteCategoryBudgetUseCase(budgetRepo)
	budgetOverviewUseCase := budget.NewGetOverviewUseCase(budgetRepo, categoryRepo, transactionRepo)

	// Create dashboard use case
	dashboardOverviewUseCase := dashboard.NewGetOverviewUseCase(transactionRepo, categoryRepo, budgetRepo, resolve)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		createAccountUseCase,
		renameAccountUseCase,
		deleteAccountUseCase,
		getBalanceUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		resolveCategoryUseCase,
		addSubCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		importTransactionsUseCase,
	)

	reportController := controller.NewReportController(
		byCategoryUseCase,
		byDateUseCase,
		heatmapUseCase,
		calendarUseCase,
	)

	comparisonController := controller.NewComparisonController(comparePeriodsUseCase)

	budgetController := controller.NewBudgetController(
		getGlobalBudgetUseCase,
		setGlobalBudgetUseCase,
		getCategoryBudgetUseCase,
		upsertCategoryBudgetUseCase,
		deleteCategoryBudgetUseCase,
		budgetOverviewUseCase,
	)

	dashboardController := controller.NewDashboardController(dashboardOverviewUseCase)

	if reportCache == nil {
		slog.Info("Report cache disabled, reports computed fresh on every request")
	}

	// Create router
	r := router.NewRouter(
		healthController,
		accountController,
		categoryController,
		transactionController,
		reportController,
		comparisonController,
		budgetController,
		dashboardController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
