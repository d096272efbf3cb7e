package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"accountservice/apperror"
	"accountservice/models"
	"accountservice/repository"
)

// AccountService owns the balance mutation rules. Balances never go
// negative after a committed mutation.
type AccountService struct {
	uow repository.UnitOfWork
	log *zap.SugaredLogger
}

func NewAccountService(uow repository.UnitOfWork, log *zap.SugaredLogger) *AccountService {
	return &AccountService{uow: uow, log: log}
}

func (s *AccountService) FindByID(ctx context.Context, id int) (*models.Account, error) {
	s.log.Infow("findById method was called", "account_id", id)

	if err := apperror.Require(id < 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Account Id")); err != nil {
		return nil, err
	}

	account, err := orNotFound(s.uow.Stores().Accounts.FindByID(ctx, id))
	if err != nil {
		return nil, err
	}
	if err := apperror.Require(account == nil, apperror.CodeBadRequest,
		apperror.MsgAccountNotFound); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Create(ctx context.Context) (*models.Account, error) {
	s.log.Infow("createAccount method was called")

	account := models.NewAccount()
	err := s.uow.Atomic(ctx, func(ctx context.Context, st repository.Stores) error {
		return st.Accounts.Save(ctx, account)
	})
	if err != nil {
		s.log.Errorw("account could not be created", "error", err)
		return nil, apperror.New(apperror.CodeUnprocessable, apperror.MsgAccountNotCreated)
	}
	return account, nil
}

// UpdateAmount applies one balance mutation as its own atomic unit.
func (s *AccountService) UpdateAmount(ctx context.Context, accountID int, amount decimal.Decimal, typeCode int) (*models.Account, error) {
	var account *models.Account
	err := s.uow.Atomic(ctx, func(ctx context.Context, st repository.Stores) error {
		var err error
		account, err = s.updateAmount(ctx, st, accountID, amount, typeCode)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// updateAmount is the ledger's core step, run inside the caller's unit of
// work so journal appends and purchases share one transaction with it.
// DEPOSIT adds, WITHDRAW subtracts after the balance check, any other code
// sets the balance directly to an already-computed value.
func (s *AccountService) updateAmount(ctx context.Context, st repository.Stores, accountID int, amount decimal.Decimal, typeCode int) (*models.Account, error) {
	s.log.Infow("updateAccountAmount method was called",
		"account_id", accountID, "amount", amount, "type", typeCode)

	account, err := orNotFound(st.Accounts.FindByIDForUpdate(ctx, accountID))
	if err != nil {
		return nil, err
	}

	badAmount := amount.Sign() < 0
	if typeCode == models.TypeDeposit || typeCode == models.TypeWithdraw {
		badAmount = amount.Sign() <= 0
	}

	if err := apperror.Require(account == nil, apperror.CodeBadRequest,
		apperror.MsgAccountNotFound); err != nil {
		return nil, err
	}
	if err := apperror.Require(badAmount, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Amount")); err != nil {
		return nil, err
	}

	switch typeCode {
	case models.TypeDeposit:
		account.Balance = account.Balance.Add(amount)
	case models.TypeWithdraw:
		if err := apperror.Require(account.Balance.Sub(amount).IsNegative(),
			apperror.CodeBadRequest, apperror.MsgNoEnoughBalance); err != nil {
			return nil, err
		}
		account.Balance = account.Balance.Sub(amount)
	default:
		account.Balance = amount
	}

	account.UpdatedAt = time.Now()
	if err := st.Accounts.Save(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}
