// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financial-coach/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID string         `gorm:"type:varchar(100);not null"`
	AccountID  string         `gorm:"type:varchar(100);not null;index"`
	Nickname   string         `gorm:"type:varchar(100);not null"`
	Email      string         `gorm:"type:varchar(255)"`
	CreatedAt  time.Time      `gorm:"not null;index"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		AccountID:  m.AccountID,
		Nickname:   m.Nickname,
		Email:      m.Email,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:         account.ID,
		CustomerID: account.CustomerID,
		AccountID:  account.AccountID,
		Nickname:   account.Nickname,
		Email:      account.Email,
		CreatedAt:  account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}
