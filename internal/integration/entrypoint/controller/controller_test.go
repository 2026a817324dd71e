package controller

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter/adaptertest"
	"github.com/financial-coach/backend/internal/application/usecase/analysis"
	"github.com/financial-coach/backend/internal/application/usecase/goal"
	"github.com/financial-coach/backend/internal/application/usecase/rewards"
	"github.com/financial-coach/backend/internal/application/usecase/transaction"
	"github.com/financial-coach/backend/internal/domain/coach"
	"github.com/financial-coach/backend/internal/domain/entity"
	"github.com/financial-coach/backend/internal/domain/valueobject"
)

var fixedNow = time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

type harness struct {
	account      *entity.Account
	accounts     *adaptertest.AccountRepository
	goals        *adaptertest.GoalRepository
	transactions *adaptertest.TransactionRepository
	analyses     *adaptertest.AnalysisRepository
	redemptions  *adaptertest.RedemptionRepository
	ai           *adaptertest.AIService
	engine       *coach.Engine
	router       *gin.Engine
}

func newHarness(withAccount bool) *harness {
	gin.SetMode(gin.TestMode)

	h := &harness{
		accounts:     adaptertest.NewAccountRepository(),
		goals:        adaptertest.NewGoalRepository(),
		transactions: adaptertest.NewTransactionRepository(),
		analyses:     &adaptertest.AnalysisRepository{},
		redemptions:  &adaptertest.RedemptionRepository{},
		ai:           &adaptertest.AIService{Available: true, Note: "Cook at home."},
		engine: coach.NewEngine(
			coach.NewNormalizer(coach.NewMemoryDateStore(), coach.DefaultNormalizerConfig()),
			coach.NewRecommender(rand.New(rand.NewPCG(1, 2))),
			coach.NewProjector(valueobject.DefaultRewardsConfig()),
		),
	}
	if withAccount {
		h.account = entity.NewAccount("cust_1", "acct_1", "Main Checking", "")
		h.accounts = adaptertest.NewAccountRepository(h.account)
	}

	clock := func() time.Time { return fixedNow }
	evaluator := analysis.NewEvaluator(h.accounts, h.goals, h.transactions, h.ai, h.engine)

	goalController := NewGoalController(
		goal.NewSetGoalUseCase(h.accounts, h.goals),
		goal.NewGetGoalUseCase(h.accounts, h.goals),
	)
	transactionController := NewTransactionController(
		transaction.NewListTransactionsUseCase(h.accounts, h.transactions, h.engine),
		transaction.NewAddTransactionUseCase(h.accounts, h.transactions),
		transaction.NewRemoveTransactionUseCase(h.accounts, h.transactions),
		clock,
	)
	analysisController := NewAnalysisController(
		analysis.NewGetAnalysisUseCase(evaluator, h.ai, h.analyses),
		analysis.NewGetHistoryUseCase(evaluator),
		analysis.NewListAnalysesUseCase(h.accounts, h.analyses),
		clock,
	)
	rewardsController := NewRewardsController(
		rewards.NewGetRewardsUseCase(h.accounts, evaluator, h.redemptions),
		rewards.NewRedeemRewardUseCase(h.accounts, evaluator, h.redemptions),
		clock,
	)

	r := gin.New()
	r.POST("/api/set-goal", goalController.Set)
	r.GET("/api/goal", goalController.Get)
	r.GET("/api/transactions", transactionController.List)
	r.POST("/api/add-transaction", transactionController.Add)
	r.POST("/api/remove-transaction", transactionController.Remove)
	r.GET("/api/analysis", analysisController.Analysis)
	r.GET("/api/history", analysisController.History)
	r.GET("/api/analyses", analysisController.List)
	r.GET("/api/rewards", rewardsController.Get)
	r.POST("/api/rewards/redeem", rewardsController.Redeem)
	h.router = r
	return h
}

func (h *harness) seed(description string, amount string, category entity.Category, day int) {
	date := time.Date(2025, 9, day, 12, 0, 0, 0, time.UTC)
	tx := entity.NewTransaction(h.account.ID, description, decimal.RequireFromString(amount), category, &date)
	_ = h.transactions.Create(context.Background(), tx)
}

func (h *harness) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %s", rec.Body.String())
	}
	return rec.Code, out
}

func TestGoalController(t *testing.T) {
	tests := []struct {
		name         string
		withAccount  bool
		body         string
		expectedCode int
		expectedErr  string
	}{
		{name: "valid goal", withAccount: true, body: `{"goal": 500, "budget": 3000}`, expectedCode: http.StatusOK},
		{name: "goal equal to budget", withAccount: true, body: `{"goal": 3000, "budget": 3000}`, expectedCode: http.StatusOK},
		{name: "zero goal", withAccount: true, body: `{"goal": 0, "budget": 3000}`, expectedCode: http.StatusBadRequest, expectedErr: "GOL-010001"},
		{name: "negative budget", withAccount: true, body: `{"goal": 10, "budget": -1}`, expectedCode: http.StatusBadRequest, expectedErr: "GOL-010002"},
		{name: "goal above budget", withAccount: true, body: `{"goal": 3500, "budget": 3000}`, expectedCode: http.StatusBadRequest, expectedErr: "GOL-010003"},
		{name: "missing budget", withAccount: true, body: `{"goal": 500}`, expectedCode: http.StatusBadRequest, expectedErr: "GEN-010001"},
		{name: "no account", withAccount: false, body: `{"goal": 500, "budget": 3000}`, expectedCode: http.StatusNotFound, expectedErr: "ACC-010001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.withAccount)

			code, body := h.do(t, http.MethodPost, "/api/set-goal", tt.body)
			if code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %v", tt.expectedCode, code, body)
			}
			if tt.expectedErr != "" && body["code"] != tt.expectedErr {
				t.Errorf("expected code %s, got %v", tt.expectedErr, body["code"])
			}
			if tt.expectedErr == "" && body["status"] != "success" {
				t.Errorf("expected status success, got %v", body["status"])
			}
		})
	}
}

func TestGoalController_GetAfterSet(t *testing.T) {
	h := newHarness(true)

	if code, body := h.do(t, http.MethodGet, "/api/goal", ""); code != http.StatusNotFound || body["code"] != "GOL-020001" {
		t.Fatalf("expected goal not found, got %d %v", code, body)
	}

	h.do(t, http.MethodPost, "/api/set-goal", `{"goal": 250.5, "budget": 2000}`)

	code, body := h.do(t, http.MethodGet, "/api/goal", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", code)
	}
	if body["savings_goal"] != "250.50" || body["monthly_budget"] != "2000.00" {
		t.Errorf("unexpected goal: %v", body)
	}
}

func TestTransactionController_Add(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
		expectedErr  string
		category     string
	}{
		{name: "explicit category", body: `{"description": "Gym", "amount": 40, "category": "Want"}`, expectedCode: http.StatusCreated, category: "Want"},
		{name: "keyword category", body: `{"description": "Rent Payment", "amount": 1200}`, expectedCode: http.StatusCreated, category: "Need"},
		{name: "rfc3339 date", body: `{"description": "Lunch", "amount": 12, "date": "2025-09-01T10:00:00Z"}`, expectedCode: http.StatusCreated},
		{name: "missing amount", body: `{"description": "Lunch"}`, expectedCode: http.StatusBadRequest, expectedErr: "TXN-010002"},
		{name: "negative amount", body: `{"description": "Lunch", "amount": -3}`, expectedCode: http.StatusBadRequest, expectedErr: "TXN-010002"},
		{name: "blank description", body: `{"description": " ", "amount": 3}`, expectedCode: http.StatusBadRequest, expectedErr: "TXN-010004"},
		{name: "description too long", body: `{"description": "` + strings.Repeat("ü", 256) + `", "amount": 3}`, expectedCode: http.StatusBadRequest, expectedErr: "TXN-010006"},
		{name: "bad date", body: `{"description": "Lunch", "amount": 3, "date": "09/01/2025"}`, expectedCode: http.StatusBadRequest, expectedErr: "TXN-010003"},
		{name: "unknown category", body: `{"description": "Lunch", "amount": 3, "category": "Maybe"}`, expectedCode: http.StatusBadRequest, expectedErr: "GEN-010001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(true)

			code, body := h.do(t, http.MethodPost, "/api/add-transaction", tt.body)
			if code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %v", tt.expectedCode, code, body)
			}
			if tt.expectedErr != "" && body["code"] != tt.expectedErr {
				t.Errorf("expected code %s, got %v", tt.expectedErr, body["code"])
			}
			if tt.category != "" && body["category"] != tt.category {
				t.Errorf("expected category %s, got %v", tt.category, body["category"])
			}
		})
	}
}

func TestTransactionController_ListAndRemove(t *testing.T) {
	h := newHarness(true)
	h.seed("Rent Payment", "1200", entity.CategoryNeed, 1)
	h.seed("Starbucks Coffee", "45.50", entity.CategoryWant, 10)

	code, body := h.do(t, http.MethodGet, "/api/transactions?window=current_month", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %v", code, body)
	}
	if body["count"] != float64(2) || body["total_spending"] != "1245.50" {
		t.Errorf("unexpected list: %v", body)
	}

	items := body["transactions"].([]any)
	id := items[0].(map[string]any)["id"].(string)

	code, body = h.do(t, http.MethodPost, "/api/remove-transaction", `{"id": "`+id+`"}`)
	if code != http.StatusOK || body["success"] != true {
		t.Fatalf("expected removal, got %d %v", code, body)
	}

	code, body = h.do(t, http.MethodPost, "/api/remove-transaction", `{"id": "`+id+`"}`)
	if code != http.StatusNotFound || body["code"] != "TXN-020001" {
		t.Errorf("expected not found on second removal, got %d %v", code, body)
	}

	code, body = h.do(t, http.MethodPost, "/api/remove-transaction", `{"id": ""}`)
	if code != http.StatusBadRequest || body["code"] != "TXN-010001" {
		t.Errorf("expected missing id error, got %d %v", code, body)
	}
}

func TestTransactionController_InvalidWindow(t *testing.T) {
	h := newHarness(true)

	for _, query := range []string{"window=yesterday", "window=last_n", "window=last_n&n=abc", "window=last_n&n=0"} {
		code, body := h.do(t, http.MethodGet, "/api/transactions?"+query, "")
		if code != http.StatusBadRequest || body["code"] != "ANL-010001" {
			t.Errorf("%s: expected invalid window, got %d %v", query, code, body)
		}
	}
}

func TestAnalysisController_Analysis(t *testing.T) {
	h := newHarness(true)
	h.do(t, http.MethodPost, "/api/set-goal", `{"goal": 500, "budget": 3000}`)
	h.seed("Rent Payment", "1200", entity.CategoryNeed, 10)
	h.seed("Starbucks Coffee", "45.50", entity.CategoryWant, 10)
	h.seed("Netflix", "15.50", entity.CategoryWant, 10)

	code, body := h.do(t, http.MethodGet, "/api/analysis?window=all", "")
	if code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %v", code, body)
	}

	expected := map[string]string{
		"needs_total":         "1200.00",
		"wants_total":         "61.00",
		"total_spending":      "1261.00",
		"remaining":           "1739.00",
		"savings_amount":      "2939.00",
		"progress_percentage": "87.80",
		"coach_note":          "Cook at home.",
	}
	for field, want := range expected {
		if body[field] != want {
			t.Errorf("%s: expected %s, got %v", field, want, body[field])
		}
	}

	projection := body["rewards"].(map[string]any)
	if projection["total_points"] != float64(2939) || projection["available_rewards"] != float64(29) {
		t.Errorf("unexpected rewards: %v", projection)
	}
	if len(h.analyses.Records) != 1 {
		t.Errorf("expected the analysis to be stored, got %d records", len(h.analyses.Records))
	}
}

func TestAnalysisController_Errors(t *testing.T) {
	t.Run("no account", func(t *testing.T) {
		h := newHarness(false)
		code, body := h.do(t, http.MethodGet, "/api/analysis", "")
		if code != http.StatusNotFound || body["code"] != "ACC-010001" {
			t.Errorf("expected no account, got %d %v", code, body)
		}
	})

	t.Run("bad history view", func(t *testing.T) {
		h := newHarness(true)
		code, body := h.do(t, http.MethodGet, "/api/history?view=daily", "")
		if code != http.StatusBadRequest || body["code"] != "ANL-010002" {
			t.Errorf("expected invalid view, got %d %v", code, body)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		h := newHarness(true)
		code, body := h.do(t, http.MethodGet, "/api/analyses?limit=-1", "")
		if code != http.StatusBadRequest || body["code"] != "GEN-010001" {
			t.Errorf("expected invalid limit, got %d %v", code, body)
		}
	})
}

func TestRewardsController(t *testing.T) {
	t.Run("override projection", func(t *testing.T) {
		h := newHarness(true)
		code, body := h.do(t, http.MethodGet, "/api/rewards?savings=1234.99", "")
		if code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", code)
		}
		if body["total_points"] != float64(1234) || body["remaining_points"] != float64(34) {
			t.Errorf("unexpected projection: %v", body)
		}
	})

	t.Run("override above the limit", func(t *testing.T) {
		h := newHarness(true)
		for _, path := range []string{"/api/rewards?savings=1e19", "/api/rewards?savings=1e5000000"} {
			code, body := h.do(t, http.MethodGet, path, "")
			if code != http.StatusBadRequest || body["code"] != "RWD-010001" {
				t.Errorf("%s: expected invalid savings, got %d %v", path, code, body)
			}
		}

		code, body := h.do(t, http.MethodPost, "/api/rewards/redeem", `{"retailer": "Amazon", "savings": 1e19}`)
		if code != http.StatusBadRequest || body["code"] != "RWD-010001" {
			t.Errorf("expected invalid savings on redeem, got %d %v", code, body)
		}
		if len(h.redemptions.Redemptions) != 0 {
			t.Errorf("expected nothing stored, got %d", len(h.redemptions.Redemptions))
		}
	})

	t.Run("redeem accepted", func(t *testing.T) {
		h := newHarness(true)
		code, body := h.do(t, http.MethodPost, "/api/rewards/redeem", `{"retailer": "best buy", "savings": 150}`)
		if code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %v", code, body)
		}
		if body["retailer"] != "Best Buy" || body["value"] != "50.00" {
			t.Errorf("unexpected redemption: %v", body)
		}
		if len(h.redemptions.Redemptions) != 1 {
			t.Errorf("expected one stored redemption, got %d", len(h.redemptions.Redemptions))
		}
	})

	t.Run("redeem rejected", func(t *testing.T) {
		h := newHarness(true)
		code, body := h.do(t, http.MethodPost, "/api/rewards/redeem", `{"retailer": "Amazon", "savings": 99.99}`)
		if code != http.StatusBadRequest || body["code"] != "RWD-010002" {
			t.Errorf("expected rejection, got %d %v", code, body)
		}
		if len(h.redemptions.Redemptions) != 0 {
			t.Errorf("expected nothing stored, got %d", len(h.redemptions.Redemptions))
		}
	})
}

func TestAnalysisController_HistoryExcludesCurrentMonth(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedCode int
		firstKey     string
	}{
		{name: "default", query: "view=monthly", expectedCode: http.StatusOK, firstKey: "2025-08"},
		{name: "explicit true", query: "view=monthly&exclude_current=true", expectedCode: http.StatusOK, firstKey: "2025-08"},
		{name: "explicit false", query: "view=monthly&exclude_current=false", expectedCode: http.StatusOK, firstKey: "2025-09"},
		{name: "not a boolean", query: "view=monthly&exclude_current=maybe", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(true)
			h.seed("Rent Payment", "1200", entity.CategoryNeed, 1)

			code, body := h.do(t, http.MethodGet, "/api/history?"+tt.query, "")
			if code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d: %v", tt.expectedCode, code, body)
			}
			if tt.firstKey == "" {
				if body["code"] != "GEN-010001" {
					t.Errorf("expected invalid request, got %v", body["code"])
				}
				return
			}

			periods := body["periods"].([]any)
			if len(periods) != 3 {
				t.Fatalf("expected 3 periods, got %d", len(periods))
			}
			if key := periods[0].(map[string]any)["key"]; key != tt.firstKey {
				t.Errorf("expected first period %s, got %v", tt.firstKey, key)
			}
		})
	}
}
