// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/financial-coach/backend/config"
	"github.com/financial-coach/backend/internal/application/adapter/adaptertest"
	"github.com/financial-coach/backend/internal/infra/dependency"
	"github.com/financial-coach/backend/internal/integration/email"
	"github.com/financial-coach/backend/internal/integration/persistence/model"
	"github.com/financial-coach/backend/test/integration/mock"
)

const (
	nessiePrefix     = "/nessie"
	mediastackPath   = "/news"
	dateNamespace    = "txDateMapTest"
	defaultCoachNote = "Brew coffee at home twice this week."
	randomSeed       = 42
)

// suite holds the resources shared by every scenario.
type suite struct {
	server      *httptest.Server
	injector    *dependency.Injector
	db          *mock.Db
	redis       *mock.Redis
	api         *mock.ApiMock
	clock       *mock.Time
	ai          *adaptertest.AIService
	emailSender *email.MockEmailSender
}

var shared *suite

// TestContext holds the test state for each scenario.
type TestContext struct {
	*suite

	// HTTP
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Seeded data
	accountID      uuid.UUID
	transactionIDs map[string]uuid.UUID
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite starts the API once against in-memory sqlite, miniredis and a mock upstream server.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")

		s := &suite{
			db:          mock.NewDb(model.All()),
			redis:       mock.NewRedis(),
			api:         mock.NewApiServer(),
			clock:       mock.NewTime(),
			ai:          &adaptertest.AIService{Available: true, Note: defaultCoachNote},
			emailSender: email.NewMockEmailSender(),
		}
		s.api.Start()

		injector, err := dependency.NewInjector(testConfig(s.api.GetUrl()), s.db.DbConn, s.redis.Client, dependency.Options{
			Clock:       s.clock.Now,
			AI:          s.ai,
			EmailSender: s.emailSender,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to wire test server: %v", err))
		}
		s.injector = injector
		s.server = httptest.NewServer(injector.Router.Setup("test"))

		shared = s
	})

	ctx.AfterSuite(func() {
		if shared == nil {
			return
		}
		shared.server.Close()
		shared.api.Close()
	})
}

func testConfig(upstreamURL string) *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Database.Driver = "sqlite"

	cfg.Nessie.BaseURL = upstreamURL + nessiePrefix
	cfg.Nessie.APIKey = "test-nessie-key"
	cfg.Nessie.Attempts = 1
	cfg.Nessie.RetryDelay = time.Millisecond
	cfg.Nessie.Timeout = 2 * time.Second

	cfg.Mediastack.BaseURL = upstreamURL + mediastackPath
	cfg.Mediastack.APIKey = "test-mediastack-key"
	cfg.Mediastack.Timeout = 2 * time.Second

	cfg.Coach.DateStore = "redis"
	cfg.Coach.DateNamespace = dateNamespace
	cfg.Coach.ReferenceYear = 2025
	cfg.Coach.RandomSeed = randomSeed
	cfg.Coach.PointsPerDollar = 1
	cfg.Coach.PointsPerReward = 100
	cfg.Coach.RewardValue = 50

	cfg.Email.ResendAPIKey = ""
	cfg.Email.BatchSize = 10
	cfg.Digest.Recipient = ""
	cfg.Digest.Retention = 30 * 24 * time.Hour
	return cfg
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			suite:          shared,
			requestHeaders: make(map[string]string),
			transactionIDs: make(map[string]uuid.UUID),
		}
		if err := tc.reset(); err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerSetupSteps(ctx)
	registerUpstreamSteps(ctx)
	registerBackgroundSteps(ctx)
	registerStorageSteps(ctx)
}

func (tc *TestContext) reset() error {
	if tc.suite == nil {
		return fmt.Errorf("test suite was not initialized")
	}
	if err := tc.db.ClearDB(); err != nil {
		return err
	}
	if err := tc.redis.ClearRedis(); err != nil {
		return err
	}
	tc.api.Reset()
	tc.clock.Reset()

	tc.ai.Available = true
	tc.ai.Note = defaultCoachNote
	tc.ai.Concept = nil
	tc.ai.Err = nil
	tc.ai.Categories = nil
	tc.ai.Categorized = 0

	tc.emailSender.Reset()
	return nil
}
