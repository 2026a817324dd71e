// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/financial-coach/backend/internal/integration/entrypoint/controller"
	"github.com/financial-coach/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health      *controller.HealthController
	Account     *controller.AccountController
	Goal        *controller.GoalController
	Transaction *controller.TransactionController
	Analysis    *controller.AnalysisController
	Rewards     *controller.RewardsController
	Investment  *controller.InvestmentController
	Stock       *controller.StockController
	CreditCard  *controller.CreditCardController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine       *gin.Engine
	controllers  Controllers
	rateLimiter  *middleware.RateLimiter
	allowOrigins []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(controllers Controllers, rateLimiter *middleware.RateLimiter, allowOrigins []string) *Router {
	return &Router{
		controllers:  controllers,
		rateLimiter:  rateLimiter,
		allowOrigins: allowOrigins,
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

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}
	r.engine.Use(middleware.CORS(r.allowOrigins))

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	if r.controllers.Health == nil {
		return
	}
	r.engine.GET("/health", r.controllers.Health.Check)
	r.engine.GET("/api/health", r.controllers.Health.Check)
}

// limited prefixes a mutating handler with the rate limiter when one is configured.
func (r *Router) limited(handler gin.HandlerFunc) []gin.HandlerFunc {
	if r.rateLimiter == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{r.rateLimiter.Middleware(), handler}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	c := r.controllers

	if c.Account != nil {
		api.POST("/onboard", r.limited(c.Account.Onboard)...)
		api.GET("/account", c.Account.Get)
	}

	if c.Goal != nil {
		api.POST("/set-goal", r.limited(c.Goal.Set)...)
		api.GET("/goal", c.Goal.Get)
	}

	if c.Analysis != nil {
		api.GET("/analysis", c.Analysis.Analysis)
		api.GET("/history", c.Analysis.History)
		api.GET("/analyses", c.Analysis.List)
	}

	if c.Transaction != nil {
		api.GET("/transactions", c.Transaction.List)
		api.POST("/add-transaction", r.limited(c.Transaction.Add)...)
		api.POST("/remove-transaction", r.limited(c.Transaction.Remove)...)
	}

	if c.Rewards != nil {
		api.GET("/rewards", c.Rewards.Get)
		api.POST("/rewards/redeem", r.limited(c.Rewards.Redeem)...)
	}

	if c.Investment != nil {
		api.GET("/investment-idea", c.Investment.Idea)
	}

	if c.Stock != nil {
		api.GET("/stocks-trending", c.Stock.Trending)
		api.POST("/stocks/save", r.limited(c.Stock.Save)...)
		api.GET("/stocks/saved", c.Stock.Saved)
	}

	if c.CreditCard != nil {
		api.GET("/credit-cards", c.CreditCard.Recommend)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
