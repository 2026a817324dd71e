// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/financial-coach/backend/config"
	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/application/usecase/account"
	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	"github.com/financial-coach/backend/internal/application/usecase/creditcard"
	"github.com/financial-coach/backend/internal/application/usecase/digest"
	"github.com/financial-coach/backend/internal/application/usecase/goal"
	"github.com/financial-coach/backend/internal/application/usecase/investment"
	"github.com/financial-coach/backend/internal/application/usecase/onboarding"
	"github.com/financial-coach/backend/internal/application/usecase/rewards"
	"github.com/financial-coach/backend/internal/application/usecase/stocks"
	"github.com/financial-coach/backend/internal/application/usecase/transaction"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/valueobject"
	"github.com/financial-coach/backend/internal/infra/scheduler"
	"github.com/financial-coach/backend/internal/infra/server/router"
	"github.com/financial-coach/backend/internal/integration/adapters"
	"github.com/financial-coach/backend/internal/integration/banking"
	"github.com/financial-coach/backend/internal/integration/cache"
	"github.com/financial-coach/backend/internal/integration/email"
	"github.com/financial-coach/backend/internal/integration/email/templates"
	"github.com/financial-coach/backend/internal/integration/entrypoint/controller"
	"github.com/financial-coach/backend/internal/integration/entrypoint/middleware"
	"github.com/financial-coach/backend/internal/integration/news"
	"github.com/financial-coach/backend/internal/integration/persistence"
)

// Options overrides collaborators that would otherwise be built from config.
// Zero values mean "build from config".
type Options struct {
	Clock       controller.Clock
	AI          adapter.AICoachService
	EmailSender adapter.EmailSender
	Bank        adapter.BankingClient
	News        adapter.NewsService
}

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Redis           *redis.Client
	Engine          *coach.Engine
	Router          *router.Router
	EmailWorker     *email.Worker
	DigestScheduler *scheduler.DigestScheduler
	SendDigest      *digest.SendWeeklyDigestUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case Redis-backed pieces fall back to the database.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts Options) (*Injector, error) {
	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	goalRepo := persistence.NewBudgetGoalRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	analysisRepo := persistence.NewAnalysisRepository(db)
	stockRepo := persistence.NewSavedStockRepository(db)
	redemptionRepo := persistence.NewRedemptionRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	aiService := opts.AI
	if aiService == nil {
		aiService = adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	}
	bank := opts.Bank
	if bank == nil && cfg.Nessie.APIKey != "" {
		bank = banking.NewNessieClient(banking.ClientConfig{
			BaseURL:    cfg.Nessie.BaseURL,
			APIKey:     cfg.Nessie.APIKey,
			Timeout:    cfg.Nessie.Timeout,
			Attempts:   cfg.Nessie.Attempts,
			RetryDelay: cfg.Nessie.RetryDelay,
		})
	}
	newsService := opts.News
	if newsService == nil {
		newsService = news.NewMediastackClient(cfg.Mediastack.BaseURL, cfg.Mediastack.APIKey, cfg.Mediastack.Timeout)
	}
	emailSender := opts.EmailSender
	if emailSender == nil {
		if cfg.Email.ResendAPIKey != "" {
			emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		} else {
			slog.Warn("RESEND_API_KEY not set, emails will be logged instead of sent")
			emailSender = email.NewMockEmailSender()
		}
	}
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	// Create the engine
	normalizerConfig := coach.DefaultNormalizerConfig()
	if cfg.Coach.ReferenceYear > 0 {
		normalizerConfig.ReferenceYear = cfg.Coach.ReferenceYear
	}
	engine := coach.NewEngine(
		coach.NewNormalizer(newDateStore(cfg, db, redisClient), normalizerConfig),
		coach.NewRecommender(newRand(cfg.Coach.RandomSeed)),
		coach.NewProjector(valueobject.NewRewardsConfig(cfg.Coach.PointsPerDollar, cfg.Coach.PointsPerReward, cfg.Coach.RewardValue)),
	)
	evaluator := analysis.NewEvaluator(accountRepo, goalRepo, transactionRepo, aiService, engine)

	// Create use cases
	onboardUseCase := onboarding.NewOnboardUseCase(accountRepo, transactionRepo, bank, newRand(cfg.Coach.RandomSeed))
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo)

	setGoalUseCase := goal.NewSetGoalUseCase(accountRepo, goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(accountRepo, goalRepo)

	listTransactionsUseCase := transaction.NewListTransactionsUseCase(accountRepo, transactionRepo, engine)
	addTransactionUseCase := transaction.NewAddTransactionUseCase(accountRepo, transactionRepo)
	removeTransactionUseCase := transaction.NewRemoveTransactionUseCase(accountRepo, transactionRepo)

	getAnalysisUseCase := analysis.NewGetAnalysisUseCase(evaluator, aiService, analysisRepo)
	getHistoryUseCase := analysis.NewGetHistoryUseCase(evaluator)
	listAnalysesUseCase := analysis.NewListAnalysesUseCase(accountRepo, analysisRepo)

	getRewardsUseCase := rewards.NewGetRewardsUseCase(accountRepo, evaluator, redemptionRepo)
	redeemRewardUseCase := rewards.NewRedeemRewardUseCase(accountRepo, evaluator, redemptionRepo)

	investmentIdeaUseCase := investment.NewGetInvestmentIdeaUseCase(evaluator, aiService)

	trendingUseCase := stocks.NewGetTrendingUseCase(newsService)
	saveStocksUseCase := stocks.NewSaveStocksUseCase(accountRepo, stockRepo)
	listSavedStocksUseCase := stocks.NewListSavedStocksUseCase(accountRepo, stockRepo, newsService)

	recommendCardsUseCase := creditcard.NewRecommendCardsUseCase(evaluator)

	sendDigestUseCase := digest.NewSendWeeklyDigestUseCase(getAnalysisUseCase, emailService, cfg.Digest.Recipient)

	// Create controllers
	var redisHealth controller.HealthChecker
	if redisClient != nil {
		redisHealth = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, redisHealth)

	controllers := router.Controllers{
		Health:      healthController,
		Account:     controller.NewAccountController(onboardUseCase, getAccountUseCase),
		Goal:        controller.NewGoalController(setGoalUseCase, getGoalUseCase),
		Transaction: controller.NewTransactionController(listTransactionsUseCase, addTransactionUseCase, removeTransactionUseCase, opts.Clock),
		Analysis:    controller.NewAnalysisController(getAnalysisUseCase, getHistoryUseCase, listAnalysesUseCase, opts.Clock),
		Rewards:     controller.NewRewardsController(getRewardsUseCase, redeemRewardUseCase, opts.Clock),
		Investment:  controller.NewInvestmentController(investmentIdeaUseCase, opts.Clock),
		Stock:       controller.NewStockController(trendingUseCase, saveStocksUseCase, listSavedStocksUseCase),
		CreditCard:  controller.NewCreditCardController(recommendCardsUseCase, opts.Clock),
	}

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.Server.RateLimit, cfg.Server.RateWindow)

	// Create background workers
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	worker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})
	digestScheduler := scheduler.NewDigestScheduler(sendDigestUseCase, emailQueueRepo, cfg.Digest.Interval, cfg.Digest.Retention)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Redis:           redisClient,
		Engine:          engine,
		Router:          router.NewRouter(controllers, rateLimiter, cfg.Server.AllowOrigins),
		EmailWorker:     worker,
		DigestScheduler: digestScheduler,
		SendDigest:      sendDigestUseCase,
	}, nil
}

// newDateStore picks the synthetic-date memo named by DATE_STORE.
func newDateStore(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) coach.DateStore {
	switch cfg.Coach.DateStore {
	case "redis":
		if redisClient != nil {
			return cache.NewRedisDateStore(redisClient, cfg.Coach.DateNamespace)
		}
		slog.Warn("Redis unavailable, synthetic dates will be kept in the database")
		return persistence.NewDateStore(db, cfg.Coach.DateNamespace)
	case "memory":
		return coach.NewMemoryDateStore()
	default:
		return persistence.NewDateStore(db, cfg.Coach.DateNamespace)
	}
}

// newRand returns a seeded generator, or nil to let the consumer seed from the runtime.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed))
}
