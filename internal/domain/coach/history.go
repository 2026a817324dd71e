package coach

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	monthlyPeriods   = 3
	quarterlyPeriods = 4
	monthsPerQuarter = 3
)

var quarterNames = map[time.Month]string{
	time.January: "Jan–Mar",
	time.April:   "Apr–Jun",
	time.July:    "Jul–Sep",
	time.October: "Oct–Dec",
}

// HistoryView selects how history is bucketed.
type HistoryView string

const (
	HistoryMonthly   HistoryView = "monthly"
	HistoryQuarterly HistoryView = "quarterly"
)

// Period is one bucket of savings history.
type Period struct {
	Key        string
	Label      string
	Start      time.Time
	End        time.Time // exclusive
	Spent      decimal.Decimal
	Budget     decimal.Decimal
	Goal       decimal.Decimal
	Savings    decimal.Decimal // may be negative
	PctToGoal  decimal.Decimal // 0-100
	MeetsGoal  bool
	NoActivity bool
}

// Monthly returns the three calendar months up to now, newest first.
// With excludeCurrent the window ends with the previous month instead.
func Monthly(txs []Transaction, monthlyBudget, savingsGoal decimal.Decimal, now time.Time, excludeCurrent bool) []Period {
	budget := nonNegative(monthlyBudget)
	goal := nonNegative(savingsGoal)
	spending := spendingByMonth(txs, now.Location())

	start := monthStart(now)
	if excludeCurrent {
		start = start.AddDate(0, -1, 0)
	}

	periods := make([]Period, 0, monthlyPeriods)
	for i := 0; i < monthlyPeriods; i++ {
		from := start.AddDate(0, -i, 0)
		spent := spending[monthKey(from)]
		savings := budget.Sub(spent)

		periods = append(periods, Period{
			Key:       monthKey(from),
			Label:     from.Format("Jan 2006"),
			Start:     from,
			End:       from.AddDate(0, 1, 0),
			Spent:     spent,
			Budget:    budget,
			Goal:      goal,
			Savings:   savings,
			PctToGoal: pctToGoal(savings, goal),
			MeetsGoal: goal.IsPositive() && savings.GreaterThanOrEqual(goal),
		})
	}
	return periods
}

// Quarterly returns the four completed quarters before the current one, newest first.
// A quarter without any spend reports zero savings rather than the full budget.
func Quarterly(txs []Transaction, monthlyBudget, savingsGoal decimal.Decimal, now time.Time) []Period {
	budget := nonNegative(monthlyBudget).Mul(decimal.NewFromInt(monthsPerQuarter))
	goal := nonNegative(savingsGoal).Mul(decimal.NewFromInt(monthsPerQuarter))
	spending := spendingByMonth(txs, now.Location())

	current := quarterStart(now)

	periods := make([]Period, 0, quarterlyPeriods)
	for i := 1; i <= quarterlyPeriods; i++ {
		from := current.AddDate(0, -monthsPerQuarter*i, 0)

		spent := decimal.Zero
		for m := 0; m < monthsPerQuarter; m++ {
			spent = spent.Add(spending[monthKey(from.AddDate(0, m, 0))])
		}

		p := Period{
			Key:     fmt.Sprintf("%d-Q-%d", from.Year(), int(from.Month())-1),
			Label:   fmt.Sprintf("%s %d", quarterNames[from.Month()], from.Year()),
			Start:   from,
			End:     from.AddDate(0, monthsPerQuarter, 0),
			Spent:   spent,
			Budget:  budget,
			Goal:    goal,
			Savings: decimal.Zero,
		}
		if spent.IsPositive() {
			p.Savings = budget.Sub(spent)
		} else {
			p.NoActivity = true
		}
		p.PctToGoal = pctToGoal(p.Savings, goal)
		p.MeetsGoal = goal.IsPositive() && p.Savings.GreaterThanOrEqual(goal)
		periods = append(periods, p)
	}
	return periods
}

func spendingByMonth(txs []Transaction, loc *time.Location) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		key := monthKey(tx.Date.In(loc))
		totals[key] = totals[key].Add(tx.Amount)
	}
	return totals
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func quarterStart(t time.Time) time.Time {
	first := time.Month((int(t.Month())-1)/monthsPerQuarter*monthsPerQuarter + 1)
	return time.Date(t.Year(), first, 1, 0, 0, 0, 0, t.Location())
}

func pctToGoal(savings, goal decimal.Decimal) decimal.Decimal {
	if !goal.IsPositive() {
		return decimal.Zero
	}
	return clampPercent(savings.Div(goal).Mul(hundred)).Round(2)
}

func nonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
