package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"accountservice/models"
)

func TestMemoryStoreAssignsIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	accounts := store.Stores().Accounts

	first := models.NewAccount()
	second := models.NewAccount()
	if err := accounts.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := accounts.Save(ctx, second); err != nil {
		t.Fatal(err)
	}
	if first.ID == 0 || first.ID == second.ID {
		t.Fatalf("ids should be unique and non-zero: %d %d", first.ID, second.ID)
	}
}

func TestMemoryStoreFindByIDReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	accounts := store.Stores().Accounts

	account := models.NewAccount()
	if err := accounts.Save(ctx, account); err != nil {
		t.Fatal(err)
	}

	loaded, err := accounts.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatal(err)
	}
	loaded.Balance = decimal.NewFromInt(999)

	again, err := accounts.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Balance.IsZero() {
		t.Fatalf("mutating a loaded copy leaked into the store: %s", again.Balance)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Stores().Accounts.FindByID(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := store.Stores().Products.FindByName(ctx, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDuplicateName(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	products := store.Stores().Products

	if err := products.Save(ctx, models.NewProduct("Widget", decimal.NewFromInt(1), 1)); err != nil {
		t.Fatal(err)
	}
	err := products.Save(ctx, models.NewProduct("Widget", decimal.NewFromInt(2), 2))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
}

func TestMemoryStoreSeedsTransactionTypes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	types := store.Stores().TransactionTypes

	want := map[int]string{
		models.TypeDeposit:  "DEPOSIT",
		models.TypeWithdraw: "WITHDRAW",
		models.TypePurchase: "PURCHASE",
	}
	for id, description := range want {
		transactionType, err := types.FindByID(ctx, id)
		if err != nil {
			t.Fatalf("FindByID(%d): %v", id, err)
		}
		if transactionType.Description != description {
			t.Fatalf("type %d = %q, want %q", id, transactionType.Description, description)
		}
	}
}

// Atomic must restore every table when the unit fails, including writes
// that already succeeded inside it.
func TestAtomicRollsBackAllWrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	account := models.NewAccount()
	if err := store.Stores().Accounts.Save(ctx, account); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err := store.Atomic(ctx, func(ctx context.Context, s Stores) error {
		loaded, err := s.Accounts.FindByIDForUpdate(ctx, account.ID)
		if err != nil {
			return err
		}
		loaded.Balance = decimal.NewFromInt(100)
		if err := s.Accounts.Save(ctx, loaded); err != nil {
			return err
		}
		if err := s.Products.Save(ctx, models.NewProduct("Widget", decimal.NewFromInt(1), 1)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Atomic should surface the unit's error, got %v", err)
	}

	loaded, err := store.Stores().Accounts.FindByID(ctx, account.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Balance.IsZero() {
		t.Fatalf("balance = %s, want rolled back to 0", loaded.Balance)
	}
	products, err := store.Stores().Products.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 0 {
		t.Fatalf("product write survived the rollback: %+v", products)
	}
}

func TestAtomicCommitsOnSuccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Atomic(ctx, func(ctx context.Context, s Stores) error {
		return s.Products.Save(ctx, models.NewProduct("Widget", decimal.NewFromInt(1), 1))
	})
	if err != nil {
		t.Fatal(err)
	}

	products, err := store.Stores().Products.FindAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}
}

func TestFindAvailableFiltersAndOrders(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	products := store.Stores().Products

	for _, p := range []*models.Product{
		models.NewProduct("A", decimal.NewFromInt(1), 2),
		models.NewProduct("B", decimal.NewFromInt(2), 0),
		models.NewProduct("C", decimal.NewFromInt(3), 5),
	} {
		if err := products.Save(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	available, err := products.FindAvailable(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(available) != 2 || available[0].Name != "A" || available[1].Name != "C" {
		t.Fatalf("available = %+v, want [A C]", available)
	}
}
