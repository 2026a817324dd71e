package analysis

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var wantsWarningRatio = decimal.RequireFromString("0.6")

// FallbackCoachNote is the note used when the AI coach is unavailable.
func FallbackCoachNote(wantsTotal, savingsGoal decimal.Decimal) string {
	if wantsTotal.GreaterThan(savingsGoal.Mul(wantsWarningRatio)) {
		return fmt.Sprintf(
			"Great job tracking your spending! I noticed you spent $%s on 'wants' this period. "+
				"Consider reducing discretionary spending to better meet your $%s savings goal. "+
				"Small changes like making coffee at home or cooking more meals can add up quickly!",
			wantsTotal.StringFixed(2), savingsGoal.String(),
		)
	}
	return fmt.Sprintf(
		"Excellent work! You're doing a great job managing your spending and staying on track with your $%s savings goal. Keep up the fantastic work!",
		savingsGoal.String(),
	)
}
