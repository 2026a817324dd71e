package steps

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/financial-coach/backend/internal/application/adapter"
	"github.com/financial-coach/backend/internal/domain/entity"
	domainerror "github.com/financial-coach/backend/internal/domain/error"
	"github.com/financial-coach/backend/internal/integration/persistence"
)

// registerSetupSteps registers steps that seed accounts, goals and purchases.
func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Given(`^an account exists$`, anAccountExists)
	ctx.Given(`^an account exists with email "([^"]*)"$`, anAccountExistsWithEmail)
	ctx.Given(`^the account has a goal with budget "([^"]*)" and savings goal "([^"]*)"$`, theAccountHasAGoal)
	ctx.Given(`^the account has the transactions:$`, theAccountHasTheTransactions)
	ctx.When(`^I remove the transaction "([^"]*)"$`, iRemoveTheTransaction)
}

// registerUpstreamSteps registers steps that script the bank, news and AI providers.
func registerUpstreamSteps(ctx *godog.ScenarioContext) {
	ctx.Given(`^the bank is available$`, theBankIsAvailable)
	ctx.Given(`^the bank is unavailable$`, theBankIsUnavailable)
	ctx.Given(`^the bank rejects purchases$`, theBankRejectsPurchases)
	ctx.Given(`^the news service returns the headline "([^"]*)"$`, theNewsServiceReturnsTheHeadline)
	ctx.Given(`^the AI coach is unavailable$`, theAICoachIsUnavailable)
	ctx.Given(`^the AI coach is rate limited$`, theAICoachIsRateLimited)
	ctx.Given(`^the AI coach replies with the note "([^"]*)"$`, theAICoachRepliesWithTheNote)
	ctx.Given(`^the AI coach explains "([^"]*)" as "([^"]*)"$`, theAICoachExplains)
	ctx.Given(`^the AI coach labels "([^"]*)" as "([^"]*)"$`, theAICoachLabels)

	ctx.Then(`^the bank should have received (\d+) "([^"]*)" requests? to "([^"]*)"$`, theBankShouldHaveReceivedRequests)
	ctx.Then(`^the news service should have been queried with keywords "([^"]*)"$`, theNewsServiceShouldHaveBeenQueriedWith)
}

// registerBackgroundSteps registers steps that drive the scheduler and email worker.
func registerBackgroundSteps(ctx *godog.ScenarioContext) {
	ctx.When(`^the weekly digest runs$`, theWeeklyDigestRuns)
	ctx.When(`^the email worker processes the queue$`, theEmailWorkerProcessesTheQueue)
	ctx.Then(`^(\d+) emails? should have been sent to "([^"]*)"$`, emailsShouldHaveBeenSentTo)
}

// registerStorageSteps registers database and redis assertions.
func registerStorageSteps(ctx *godog.ScenarioContext) {
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, theDbShouldContainObjectsInWithTheValues)
	ctx.Then(`^the synthetic date memo should hold (\d+) dates?$`, theSyntheticDateMemoShouldHold)
}

// Setup steps

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.clock.SetCurrentTime(now)
	return nil
}

func anAccountExists(ctx context.Context) error {
	return anAccountExistsWithEmail(ctx, "")
}

func anAccountExistsWithEmail(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)

	acct := entity.NewAccount("cust_test", "acct_test", "Main Checking", email)
	if err := persistence.NewAccountRepository(tc.db.DbConn).Create(ctx, acct); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	tc.accountID = acct.ID
	return nil
}

func theAccountHasAGoal(ctx context.Context, budget, savingsGoal string) error {
	tc := GetTestContext(ctx)

	monthlyBudget, err := decimal.NewFromString(budget)
	if err != nil {
		return fmt.Errorf("invalid budget %q: %w", budget, err)
	}
	goal, err := decimal.NewFromString(savingsGoal)
	if err != nil {
		return fmt.Errorf("invalid savings goal %q: %w", savingsGoal, err)
	}

	return persistence.NewBudgetGoalRepository(tc.db.DbConn).Save(ctx, entity.NewBudgetGoal(tc.accountID, monthlyBudget, goal))
}

// theAccountHasTheTransactions reads a table with description, amount and
// optional category and date columns.
func theAccountHasTheTransactions(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if len(table.Rows) < 2 {
		return fmt.Errorf("transaction table needs a header and at least one row")
	}

	columns := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	cell := func(row *godog.TableRow, name string) string {
		if i, ok := columns[name]; ok && i < len(row.Cells) {
			return strings.TrimSpace(row.Cells[i].Value)
		}
		return ""
	}

	repo := persistence.NewTransactionRepository(tc.db.DbConn)
	for _, row := range table.Rows[1:] {
		description := cell(row, "description")
		amount, err := decimal.NewFromString(cell(row, "amount"))
		if err != nil {
			return fmt.Errorf("invalid amount for %q: %w", description, err)
		}

		var date *time.Time
		if raw := cell(row, "date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return fmt.Errorf("invalid date for %q: %w", description, err)
			}
			parsed = parsed.Add(12 * time.Hour)
			date = &parsed
		}

		tx := entity.NewTransaction(tc.accountID, description, amount, entity.Category(cell(row, "category")), date)
		if err := repo.Create(ctx, tx); err != nil {
			return fmt.Errorf("failed to create transaction %q: %w", description, err)
		}
		tc.transactionIDs[description] = tx.ID
	}
	return nil
}

func iRemoveTheTransaction(ctx context.Context, description string) (context.Context, error) {
	tc := GetTestContext(ctx)
	id, ok := tc.transactionIDs[description]
	if !ok {
		return ctx, fmt.Errorf("no seeded transaction named %q", description)
	}
	return send(ctx, http.MethodPost, "/api/remove-transaction", []byte(fmt.Sprintf(`{"id": %q}`, id.String())))
}

// Upstream steps

func theBankIsAvailable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.api.SetResponse(-1, http.MethodPost, nessiePrefix+"/customers", http.StatusCreated, map[string]any{
		"objectCreated": map[string]any{"_id": "cust_nessie_1"},
	})
	tc.api.SetResponse(-1, http.MethodPost, nessiePrefix+"/customers/*/accounts", http.StatusCreated, map[string]any{
		"objectCreated": map[string]any{"_id": "acct_nessie_1"},
	})
	tc.api.SetResponse(-1, http.MethodGet, nessiePrefix+"/merchants", http.StatusOK, []map[string]any{
		{"_id": "merchant_a"},
		{"_id": "merchant_b"},
	})
	tc.api.SetResponse(-1, http.MethodPost, nessiePrefix+"/accounts/*/purchases", http.StatusCreated, map[string]any{
		"message": "Created purchase",
	})
	return nil
}

func theBankIsUnavailable(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.api.SetResponse(-1, http.MethodPost, nessiePrefix+"/customers", http.StatusServiceUnavailable, map[string]any{
		"message": "service unavailable",
	})
	return nil
}

func theBankRejectsPurchases(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.api.SetResponse(-1, http.MethodPost, nessiePrefix+"/accounts/*/purchases", http.StatusBadRequest, map[string]any{
		"message": "invalid merchant",
	})
	return nil
}

func theNewsServiceReturnsTheHeadline(ctx context.Context, headline string) error {
	tc := GetTestContext(ctx)
	tc.api.SetResponse(-1, http.MethodGet, mediastackPath, http.StatusOK, map[string]any{
		"data": []map[string]any{{"title": headline, "description": ""}},
	})
	return nil
}

func theAICoachIsUnavailable(ctx context.Context) error {
	GetTestContext(ctx).ai.Available = false
	return nil
}

func theAICoachIsRateLimited(ctx context.Context) error {
	GetTestContext(ctx).ai.Err = domainerror.NewAnalysisError(domainerror.ErrCodeAIRateLimited, "quota exceeded", nil)
	return nil
}

func theAICoachRepliesWithTheNote(ctx context.Context, note string) error {
	GetTestContext(ctx).ai.Note = note
	return nil
}

func theAICoachExplains(ctx context.Context, title, explanation string) error {
	GetTestContext(ctx).ai.Concept = &adapter.InvestmentConcept{Title: title, Explanation: explanation}
	return nil
}

func theAICoachLabels(ctx context.Context, description, category string) error {
	tc := GetTestContext(ctx)
	if tc.ai.Categories == nil {
		tc.ai.Categories = map[string]entity.Category{}
	}
	tc.ai.Categories[description] = entity.Category(category)
	return nil
}

func theBankShouldHaveReceivedRequests(ctx context.Context, count int, method, path string) error {
	tc := GetTestContext(ctx)
	requests := tc.api.Requests(method, nessiePrefix+path)
	if len(requests) != count {
		return fmt.Errorf("expected %d %s requests to %s, got %d", count, method, path, len(requests))
	}
	for _, r := range requests {
		if r.Queries["key"] == "" {
			return fmt.Errorf("request to %s was sent without an api key", path)
		}
	}
	return nil
}

func theNewsServiceShouldHaveBeenQueriedWith(ctx context.Context, keywords string) error {
	tc := GetTestContext(ctx)
	for _, r := range tc.api.Requests(http.MethodGet, mediastackPath) {
		if r.Queries["keywords"] == keywords {
			return nil
		}
	}
	return fmt.Errorf("no news query with keywords %q", keywords)
}

// Background steps

func theWeeklyDigestRuns(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.injector.DigestScheduler.RunOnce(ctx)
	return nil
}

func theEmailWorkerProcessesTheQueue(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.injector.EmailWorker.ProcessNow(ctx)
	return nil
}

func emailsShouldHaveBeenSentTo(ctx context.Context, count int, recipient string) error {
	tc := GetTestContext(ctx)
	sent := 0
	for _, email := range tc.emailSender.SentEmails {
		if email.To == recipient {
			sent++
		}
	}
	if sent != count {
		return fmt.Errorf("expected %d emails to %s, got %d", count, recipient, sent)
	}
	return nil
}

// Storage steps

func theDbShouldContainObjectsInTheTable(ctx context.Context, count int, table string) error {
	tc := GetTestContext(ctx)
	actual, err := tc.db.Count(table, nil)
	if err != nil {
		return err
	}
	if actual != int64(count) {
		return fmt.Errorf("expected %d rows in %s, got %d", count, table, actual)
	}
	return nil
}

// theDbShouldContainObjectsInWithTheValues reads a two-column table of column name and value.
func theDbShouldContainObjectsInWithTheValues(ctx context.Context, count int, table string, values *godog.Table) error {
	tc := GetTestContext(ctx)

	where := make(map[string]any, len(values.Rows))
	for _, row := range values.Rows {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected column and value, got %d cells", len(row.Cells))
		}
		where[row.Cells[0].Value] = row.Cells[1].Value
	}

	actual, err := tc.db.Count(table, where)
	if err != nil {
		return err
	}
	if actual != int64(count) {
		return fmt.Errorf("expected %d rows in %s matching %v, got %d", count, table, where, actual)
	}
	return nil
}

func theSyntheticDateMemoShouldHold(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	actual, err := tc.redis.HashLen(dateNamespace)
	if err != nil {
		return err
	}
	if actual != int64(count) {
		return fmt.Errorf("expected %d synthetic dates, got %s", count, strconv.FormatInt(actual, 10))
	}
	return nil
}
