// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// SavedStockModel represents the saved_stocks table in the database.
type SavedStockModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_saved_stock_account_symbol"`
	Symbol    string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_saved_stock_account_symbol"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Tags      TextArray      `gorm:"column:tags"`
	CreatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the SavedStockModel.
func (SavedStockModel) TableName() string {
	return "saved_stocks"
}

// ToEntity converts a SavedStockModel to a domain SavedStock entity.
func (m *SavedStockModel) ToEntity() *entity.SavedStock {
	return &entity.SavedStock{
		ID:        m.ID,
		AccountID: m.AccountID,
		Symbol:    m.Symbol,
		Name:      m.Name,
		Tags:      m.Tags.Strings(),
		CreatedAt: m.CreatedAt,
	}
}

// SavedStockFromEntity creates a SavedStockModel from a domain SavedStock entity.
func SavedStockFromEntity(stock *entity.SavedStock) *SavedStockModel {
	return &SavedStockModel{
		ID:        stock.ID,
		AccountID: stock.AccountID,
		Symbol:    stock.Symbol,
		Name:      stock.Name,
		Tags:      NewTextArray(stock.Tags),
		CreatedAt: stock.CreatedAt,
	}
}
