package services

import (
	"context"

	"go.uber.org/zap"

	"accountservice/apperror"
	"accountservice/models"
	"accountservice/repository"
)

// StoreService composes the ledger, the catalog and the journal into the
// purchase workflow. Debit, unit depletion and the journal append run as
// one atomic unit; a partial purchase never commits.
type StoreService struct {
	uow      repository.UnitOfWork
	accounts *AccountService
	products *ProductService
	log      *zap.SugaredLogger
}

func NewStoreService(uow repository.UnitOfWork, accounts *AccountService, products *ProductService, log *zap.SugaredLogger) *StoreService {
	return &StoreService{uow: uow, accounts: accounts, products: products, log: log}
}

func (s *StoreService) Buy(ctx context.Context, accountID, productID int) (*models.Transaction, error) {
	s.log.Infow("buyProduct method was called",
		"account_id", accountID, "product_id", productID)

	if err := apperror.Require(accountID < 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Account Id")); err != nil {
		return nil, err
	}
	if err := apperror.Require(productID < 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Product Id")); err != nil {
		return nil, err
	}

	var transaction *models.Transaction
	err := s.uow.Atomic(ctx, func(ctx context.Context, st repository.Stores) error {
		account, err := orNotFound(st.Accounts.FindByIDForUpdate(ctx, accountID))
		if err != nil {
			return err
		}
		if err := apperror.Require(account == nil, apperror.CodeBadRequest,
			apperror.MsgAccountNotFound); err != nil {
			return err
		}

		product, err := orNotFound(st.Products.FindByIDForUpdate(ctx, productID))
		if err != nil {
			return err
		}
		if err := apperror.Require(product == nil, apperror.CodeBadRequest,
			apperror.MsgProductIsNotValid); err != nil {
			return err
		}

		newBalance := account.Balance.Sub(product.Price)
		if err := apperror.Require(newBalance.IsNegative(), apperror.CodeBadRequest,
			apperror.MsgBalanceBelowPrice); err != nil {
			return err
		}

		purchaseType, err := orNotFound(st.TransactionTypes.FindByID(ctx, models.TypePurchase))
		if err != nil {
			return err
		}
		if purchaseType == nil {
			return apperror.New(apperror.CodeUnprocessable, apperror.MsgMethodNotWorked)
		}

		s.log.Infow("updateAccountAmount method is starting in buyProduct method",
			"account_id", accountID, "new_balance", newBalance)

		// The post-purchase balance is already computed, so the ledger
		// step runs on the direct-set path rather than as a withdrawal.
		updatedAccount, err := s.accounts.updateAmount(ctx, st, accountID, newBalance, models.TypePurchase)
		if err != nil {
			return err
		}

		if _, err := s.products.deleteUnit(ctx, st, productID); err != nil {
			return err
		}
		depleted, err := st.Products.FindByID(ctx, productID)
		if err != nil {
			return err
		}

		transaction = models.NewTransaction(*purchaseType, product.Price, updatedAccount, depleted)
		if err := st.Transactions.Create(ctx, transaction); err != nil {
			return apperror.New(apperror.CodeUnprocessable, apperror.MsgTransactionNotCreated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// ListAvailable returns only products with remaining inventory.
func (s *StoreService) ListAvailable(ctx context.Context) ([]models.Product, error) {
	s.log.Infow("listAllAvailableProducts method was called")
	return s.uow.Stores().Products.FindAvailable(ctx)
}
