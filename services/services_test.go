package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"accountservice/apperror"
	"accountservice/models"
	"accountservice/repository"
)

type testEnv struct {
	store        *repository.MemoryStore
	accounts     *AccountService
	products     *ProductService
	transactions *TransactionService
	storeSvc     *StoreService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := repository.NewMemoryStore()
	log := zap.NewNop().Sugar()
	accounts := NewAccountService(store, log)
	products := NewProductService(store, log)
	return &testEnv{
		store:        store,
		accounts:     accounts,
		products:     products,
		transactions: NewTransactionService(store, accounts, log),
		storeSvc:     NewStoreService(store, accounts, products, log),
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// wantAppError fails the test unless err is an AppError with the given
// code and message.
func wantAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error %d %q, got nil", code, message)
	}
	appErr, ok := apperror.From(err)
	if !ok {
		t.Fatalf("want AppError, got %T: %v", err, err)
	}
	if appErr.Code != code || appErr.Message != message {
		t.Fatalf("got error %d %q, want %d %q", appErr.Code, appErr.Message, code, message)
	}
}

func mustCreateAccount(t *testing.T, env *testEnv) *models.Account {
	t.Helper()
	account, err := env.accounts.Create(context.Background())
	if err != nil {
		t.Fatalf("Create account: %v", err)
	}
	return account
}

func mustCreateProduct(t *testing.T, env *testEnv, name string, price int64, count int) *models.Product {
	t.Helper()
	product, err := env.products.Create(context.Background(), name, dec(price), count)
	if err != nil {
		t.Fatalf("Create product %q: %v", name, err)
	}
	return product
}

func balanceOf(t *testing.T, env *testEnv, accountID int) decimal.Decimal {
	t.Helper()
	account, err := env.accounts.FindByID(context.Background(), accountID)
	if err != nil {
		t.Fatalf("FindByID(%d): %v", accountID, err)
	}
	return account.Balance
}
