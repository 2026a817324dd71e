// Package model defines database models for persistence layer.
package model

// All returns every model the application migrates, in dependency order.
func All() []any {
	return []any{
		&AccountModel{},
		&BudgetGoalModel{},
		&TransactionModel{},
		&AnalysisModel{},
		&SavedStockModel{},
		&RedemptionModel{},
		&SyntheticDateModel{},
		&EmailQueueModel{},
	}
}
