package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID           int             `gorm:"primaryKey" json:"id"`
	Balance      decimal.Decimal `gorm:"type:numeric;not null" json:"balance"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Transactions []Transaction   `gorm:"foreignKey:AccountID" json:"-"`
}

// NewAccount returns an account with a zero balance.
func NewAccount() *Account {
	now := time.Now()
	return &Account{
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
