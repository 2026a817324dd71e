package coach

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Budget holds the figures derived from totals and the user's goal.
type Budget struct {
	Remaining          decimal.Decimal // negative when over budget
	SavingsAmount      decimal.Decimal
	ProgressPercentage decimal.Decimal
}

// Calculate derives remaining budget, savings and goal progress.
// Savings are measured against discretionary spend only: max(0, budget - wants).
func Calculate(totals Totals, goal Goal) Budget {
	remaining := goal.MonthlyBudget.Sub(totals.Total)

	savings := goal.MonthlyBudget.Sub(totals.Wants)
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	progress := decimal.Zero
	if goal.SavingsGoal.IsPositive() {
		progress = goal.SavingsGoal.Sub(totals.Wants).
			Div(goal.SavingsGoal).
			Mul(hundred)
		progress = clampPercent(progress).Round(2)
	}

	return Budget{
		Remaining:          remaining,
		SavingsAmount:      savings,
		ProgressPercentage: progress,
	}
}

func clampPercent(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}
