package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"accountservice/models"
)

// GormUnitOfWork backs the store contracts with gorm. Atomic units run as
// serializable database transactions so concurrent writers against the same
// account or product row are forced to serialize.
type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Atomic(ctx context.Context, fn func(ctx context.Context, s Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, newGormStores(tx))
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (u *GormUnitOfWork) Stores() Stores {
	return newGormStores(u.db)
}

func newGormStores(db *gorm.DB) Stores {
	return Stores{
		Accounts:         &gormAccountRepo{db: db},
		Products:         &gormProductRepo{db: db},
		Transactions:     &gormTransactionRepo{db: db},
		TransactionTypes: &gormTransactionTypeRepo{db: db},
	}
}

func translateGormError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value") {
		return ErrDuplicate
	}
	return err
}

type gormAccountRepo struct {
	db *gorm.DB
}

func (r *gormAccountRepo) FindByID(ctx context.Context, id int) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &account, nil
}

func (r *gormAccountRepo) FindByIDForUpdate(ctx context.Context, id int) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&account, id).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &account, nil
}

func (r *gormAccountRepo) Save(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return translateGormError(err)
	}
	return nil
}

type gormProductRepo struct {
	db *gorm.DB
}

func (r *gormProductRepo) FindByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &product, nil
}

func (r *gormProductRepo) FindByIDForUpdate(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, id).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &product, nil
}

func (r *gormProductRepo) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &product, nil
}

func (r *gormProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return nil, translateGormError(err)
	}
	return products, nil
}

func (r *gormProductRepo) FindAvailable(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("count > 0").
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return products, nil
}

func (r *gormProductRepo) Save(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return translateGormError(err)
	}
	return nil
}

type gormTransactionRepo struct {
	db *gorm.DB
}

func (r *gormTransactionRepo) Create(ctx context.Context, transaction *models.Transaction) error {
	// Omit the associations: account and product rows are managed by their
	// own repositories and must not be upserted from here.
	err := r.db.WithContext(ctx).
		Omit("Account", "Product", "Type").
		Create(transaction).Error
	if err != nil {
		return translateGormError(err)
	}
	return nil
}

func (r *gormTransactionRepo) FindByAccountID(ctx context.Context, accountID int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Type").
		Where("account_id = ?", accountID).
		Order("id asc").
		Find(&transactions).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return transactions, nil
}

type gormTransactionTypeRepo struct {
	db *gorm.DB
}

func (r *gormTransactionTypeRepo) FindByID(ctx context.Context, id int) (*models.TransactionType, error) {
	var transactionType models.TransactionType
	if err := r.db.WithContext(ctx).First(&transactionType, id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &transactionType, nil
}
