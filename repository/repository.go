// Package repository defines the store contracts the services work against
// and the atomic unit of work that groups multi-row mutations.
package repository

import (
	"context"
	"errors"

	"accountservice/models"
)

// ErrNotFound is returned by the finders when no row matches.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write violates a uniqueness constraint
// at the store level.
var ErrDuplicate = errors.New("duplicate record")

type AccountRepository interface {
	FindByID(ctx context.Context, id int) (*models.Account, error)
	// FindByIDForUpdate locks the row for the rest of the unit of work.
	FindByIDForUpdate(ctx context.Context, id int) (*models.Account, error)
	Save(ctx context.Context, account *models.Account) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id int) (*models.Product, error)
	FindByIDForUpdate(ctx context.Context, id int) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	// FindAll returns every product ordered by id ascending.
	FindAll(ctx context.Context) ([]models.Product, error)
	// FindAvailable returns products with count > 0 ordered by id ascending.
	FindAvailable(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, product *models.Product) error
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	// FindByAccountID returns the account's transactions in insertion order.
	FindByAccountID(ctx context.Context, accountID int) ([]models.Transaction, error)
}

type TransactionTypeRepository interface {
	FindByID(ctx context.Context, id int) (*models.TransactionType, error)
}

// Stores bundles the repositories bound to one backing store or to one
// in-flight transaction.
type Stores struct {
	Accounts         AccountRepository
	Products         ProductRepository
	Transactions     TransactionRepository
	TransactionTypes TransactionTypeRepository
}

// UnitOfWork runs a set of store operations so that they commit or roll
// back together.
type UnitOfWork interface {
	// Atomic invokes fn with Stores bound to a single serializable
	// transaction. If fn returns an error the whole unit is rolled back
	// and the error is returned unchanged.
	Atomic(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
	// Stores returns repositories for plain reads outside any unit.
	Stores() Stores
}
