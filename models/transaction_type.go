package models

import "encoding/json"

// TransactionType is immutable reference data, seeded once at migration time.
type TransactionType struct {
	ID          int    `gorm:"primaryKey" json:"-"`
	Description string `gorm:"size:20;uniqueIndex" json:"description"`
}

// MarshalJSON renders the type as its description ("DEPOSIT", ...).
func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Description)
}

// Fixed transaction type codes. Application logic never creates new ones.
const (
	TypeDeposit  = 1
	TypeWithdraw = 2
	TypePurchase = 3
)

// SeedTransactionTypes lists the reference rows in code order.
func SeedTransactionTypes() []TransactionType {
	return []TransactionType{
		{ID: TypeDeposit, Description: "DEPOSIT"},
		{ID: TypeWithdraw, Description: "WITHDRAW"},
		{ID: TypePurchase, Description: "PURCHASE"},
	}
}
