package repository

import (
	"context"
	"sort"
	"sync"

	"accountservice/models"
)

// MemoryStore is an in-memory implementation of the store contracts. A
// mutex held for the whole atomic unit serializes writers, and the state is
// snapshotted on entry so a failing unit rolls back completely. It backs
// the tests and redis/postgres-less runs.
type MemoryStore struct {
	mu                sync.Mutex
	accounts          map[int]models.Account
	products          map[int]models.Product
	transactions      []models.Transaction
	transactionTypes  map[int]models.TransactionType
	nextAccountID     int
	nextProductID     int
	nextTransactionID int64
}

func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{
		accounts:          make(map[int]models.Account),
		products:          make(map[int]models.Product),
		transactionTypes:  make(map[int]models.TransactionType),
		nextAccountID:     1,
		nextProductID:     1,
		nextTransactionID: 1,
	}
	for _, t := range models.SeedTransactionTypes() {
		m.transactionTypes[t.ID] = t
	}
	return m
}

type memorySnapshot struct {
	accounts          map[int]models.Account
	products          map[int]models.Product
	transactions      []models.Transaction
	nextAccountID     int
	nextProductID     int
	nextTransactionID int64
}

func (m *MemoryStore) snapshot() memorySnapshot {
	accounts := make(map[int]models.Account, len(m.accounts))
	for id, a := range m.accounts {
		accounts[id] = a
	}
	products := make(map[int]models.Product, len(m.products))
	for id, p := range m.products {
		products[id] = p
	}
	transactions := make([]models.Transaction, len(m.transactions))
	copy(transactions, m.transactions)
	return memorySnapshot{
		accounts:          accounts,
		products:          products,
		transactions:      transactions,
		nextAccountID:     m.nextAccountID,
		nextProductID:     m.nextProductID,
		nextTransactionID: m.nextTransactionID,
	}
}

func (m *MemoryStore) restore(s memorySnapshot) {
	m.accounts = s.accounts
	m.products = s.products
	m.transactions = s.transactions
	m.nextAccountID = s.nextAccountID
	m.nextProductID = s.nextProductID
	m.nextTransactionID = s.nextTransactionID
}

func (m *MemoryStore) Atomic(ctx context.Context, fn func(ctx context.Context, s Stores) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.snapshot()
	if err := fn(ctx, m.boundStores(true)); err != nil {
		m.restore(before)
		return err
	}
	return nil
}

func (m *MemoryStore) Stores() Stores {
	return m.boundStores(false)
}

func (m *MemoryStore) boundStores(locked bool) Stores {
	return Stores{
		Accounts:         &memoryAccountRepo{store: m, locked: locked},
		Products:         &memoryProductRepo{store: m, locked: locked},
		Transactions:     &memoryTransactionRepo{store: m, locked: locked},
		TransactionTypes: &memoryTransactionTypeRepo{store: m, locked: locked},
	}
}

// enter takes the store mutex unless the caller is already inside an
// atomic unit, which holds it for the unit's whole lifetime.
func (m *MemoryStore) enter(locked bool) func() {
	if locked {
		return func() {}
	}
	m.mu.Lock()
	return m.mu.Unlock
}

type memoryAccountRepo struct {
	store  *MemoryStore
	locked bool
}

func (r *memoryAccountRepo) FindByID(ctx context.Context, id int) (*models.Account, error) {
	defer r.store.enter(r.locked)()
	account, ok := r.store.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (r *memoryAccountRepo) FindByIDForUpdate(ctx context.Context, id int) (*models.Account, error) {
	// The unit-wide mutex already serializes writers.
	return r.FindByID(ctx, id)
}

func (r *memoryAccountRepo) Save(ctx context.Context, account *models.Account) error {
	defer r.store.enter(r.locked)()
	if account.ID == 0 {
		account.ID = r.store.nextAccountID
		r.store.nextAccountID++
	}
	r.store.accounts[account.ID] = *account
	return nil
}

type memoryProductRepo struct {
	store  *MemoryStore
	locked bool
}

func (r *memoryProductRepo) FindByID(ctx context.Context, id int) (*models.Product, error) {
	defer r.store.enter(r.locked)()
	product, ok := r.store.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (r *memoryProductRepo) FindByIDForUpdate(ctx context.Context, id int) (*models.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *memoryProductRepo) FindByName(ctx context.Context, name string) (*models.Product, error) {
	defer r.store.enter(r.locked)()
	for _, product := range r.store.products {
		if product.Name == name {
			p := product
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	defer r.store.enter(r.locked)()
	products := make([]models.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *memoryProductRepo) FindAvailable(ctx context.Context) ([]models.Product, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]models.Product, 0, len(all))
	for _, product := range all {
		if product.Count > 0 {
			available = append(available, product)
		}
	}
	return available, nil
}

func (r *memoryProductRepo) Save(ctx context.Context, product *models.Product) error {
	defer r.store.enter(r.locked)()
	for _, existing := range r.store.products {
		if existing.Name == product.Name && existing.ID != product.ID {
			return ErrDuplicate
		}
	}
	if product.ID == 0 {
		product.ID = r.store.nextProductID
		r.store.nextProductID++
	}
	r.store.products[product.ID] = *product
	return nil
}

type memoryTransactionRepo struct {
	store  *MemoryStore
	locked bool
}

func (r *memoryTransactionRepo) Create(ctx context.Context, transaction *models.Transaction) error {
	defer r.store.enter(r.locked)()
	transaction.ID = r.store.nextTransactionID
	r.store.nextTransactionID++
	r.store.transactions = append(r.store.transactions, *transaction)
	return nil
}

func (r *memoryTransactionRepo) FindByAccountID(ctx context.Context, accountID int) ([]models.Transaction, error) {
	defer r.store.enter(r.locked)()
	var transactions []models.Transaction
	for _, transaction := range r.store.transactions {
		if transaction.AccountID == accountID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

type memoryTransactionTypeRepo struct {
	store  *MemoryStore
	locked bool
}

func (r *memoryTransactionTypeRepo) FindByID(ctx context.Context, id int) (*models.TransactionType, error) {
	defer r.store.enter(r.locked)()
	transactionType, ok := r.store.transactionTypes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &transactionType, nil
}
