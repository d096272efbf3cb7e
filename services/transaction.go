package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"accountservice/apperror"
	"accountservice/models"
	"accountservice/repository"
)

// TransactionService is the append-only journal of ledger events. The
// balance mutation and the journal append always commit together.
type TransactionService struct {
	uow      repository.UnitOfWork
	accounts *AccountService
	log      *zap.SugaredLogger
}

func NewTransactionService(uow repository.UnitOfWork, accounts *AccountService, log *zap.SugaredLogger) *TransactionService {
	return &TransactionService{uow: uow, accounts: accounts, log: log}
}

func (s *TransactionService) Create(ctx context.Context, accountID int, amount decimal.Decimal, typeCode int) (*models.Transaction, error) {
	s.log.Infow("createTransaction method was called",
		"account_id", accountID, "amount", amount, "type", typeCode)

	if err := apperror.Require(accountID < 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Account Id")); err != nil {
		return nil, err
	}
	if err := apperror.Require(amount.Sign() <= 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Amount")); err != nil {
		return nil, err
	}

	var transaction *models.Transaction
	err := s.uow.Atomic(ctx, func(ctx context.Context, st repository.Stores) error {
		transactionType, err := orNotFound(st.TransactionTypes.FindByID(ctx, typeCode))
		if err != nil {
			return err
		}
		if transactionType == nil {
			return apperror.New(apperror.CodeUnprocessable, apperror.MsgTransactionNotCreated)
		}

		account, err := s.accounts.updateAmount(ctx, st, accountID, amount, typeCode)
		if err != nil {
			return err
		}

		transaction = models.NewTransaction(*transactionType, amount, account, nil)
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

func (s *TransactionService) ListByAccount(ctx context.Context, accountID int) ([]models.Transaction, error) {
	s.log.Infow("getTransactionsByAccountId method was called", "account_id", accountID)

	if err := apperror.Require(accountID < 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Account Id")); err != nil {
		return nil, err
	}
	return s.uow.Stores().Transactions.FindByAccountID(ctx, accountID)
}
