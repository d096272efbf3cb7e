package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the append-only record of one balance-affecting event.
// Rows are never updated or deleted once written.
type Transaction struct {
	ID        int64           `gorm:"primaryKey" json:"id"`
	TypeID    int             `gorm:"not null" json:"-"`
	Type      TransactionType `gorm:"foreignKey:TypeID" json:"type"`
	Amount    decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	AccountID int             `gorm:"not null;index" json:"account_id"`
	Account   Account         `gorm:"foreignKey:AccountID" json:"-"`
	ProductID *int            `json:"product_id,omitempty"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"-"`
	CreatedAt time.Time       `json:"date"`
}

func NewTransaction(typ TransactionType, amount decimal.Decimal, account *Account, product *Product) *Transaction {
	t := &Transaction{
		TypeID:    typ.ID,
		Type:      typ,
		Amount:    amount,
		AccountID: account.ID,
		Account:   *account,
		CreatedAt: time.Now(),
	}
	if product != nil {
		id := product.ID
		t.ProductID = &id
		t.Product = product
	}
	return t
}
