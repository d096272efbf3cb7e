package controllers

import (
	"time"

	"github.com/shopspring/decimal"

	"accountservice/models"
)

// View structs are the wire shapes; entities are mapped into them
// explicitly instead of being serialized as-is.

type AccountView struct {
	ID      int             `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

func newAccountView(account *models.Account) AccountView {
	return AccountView{ID: account.ID, Balance: account.Balance}
}

type ProductView struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Count int             `json:"count"`
}

func newProductView(product *models.Product) ProductView {
	return ProductView{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Count: product.Count,
	}
}

func newProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, newProductView(&products[i]))
	}
	return views
}

type TransactionView struct {
	ID        int64           `json:"id"`
	AccountID int             `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Type      string          `json:"type"`
	ProductID *int            `json:"productId,omitempty"`
}

func newTransactionView(transaction *models.Transaction) TransactionView {
	return TransactionView{
		ID:        transaction.ID,
		AccountID: transaction.AccountID,
		Amount:    transaction.Amount,
		Date:      transaction.CreatedAt,
		Type:      transaction.Type.Description,
		ProductID: transaction.ProductID,
	}
}

func newTransactionViews(transactions []models.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(transactions))
	for i := range transactions {
		views = append(views, newTransactionView(&transactions[i]))
	}
	return views
}
