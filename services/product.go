package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"accountservice/apperror"
	"accountservice/models"
	"accountservice/repository"
)

// ProductService owns the catalog rules: unique names, non-negative price
// and count, and unit depletion that never removes the row.
type ProductService struct {
	uow repository.UnitOfWork
	log *zap.SugaredLogger
}

func NewProductService(uow repository.UnitOfWork, log *zap.SugaredLogger) *ProductService {
	return &ProductService{uow: uow, log: log}
}

func (s *ProductService) Create(ctx context.Context, name string, price decimal.Decimal, count int) (*models.Product, error) {
	s.log.Infow("createProduct method was called", "name", name)

	var product *models.Product
	err := s.uow.Atomic(ctx, func(ctx context.Context, st repository.Stores) error {
		existing, err := orNotFound(st.Products.FindByName(ctx, name))
		if err != nil {
			return err
		}
		if err := apperror.Require(existing != nil, apperror.CodeBadRequest,
			apperror.MsgNameShouldBeUnique); err != nil {
			return err
		}
		if err := apperror.Require(strings.TrimSpace(name) == "", apperror.CodeBadRequest,
			apperror.MsgNameShouldBeFilled); err != nil {
			return err
		}
		if err := apperror.Require(price.Sign() <= 0, apperror.CodeBadRequest,
			apperror.MsgShouldBeGreaterThanZero("Product Price")); err != nil {
			return err
		}
		if err := apperror.Require(count < 0, apperror.CodeBadRequest,
			apperror.MsgShouldBeGreaterThanZero("Product Count")); err != nil {
			return err
		}

		product = models.NewProduct(name, price, count)
		if err := st.Products.Save(ctx, product); err != nil {
			// The unique index is the safety net for a concurrent create
			// that slipped past the pre-check.
			if errors.Is(err, repository.ErrDuplicate) {
				return apperror.New(apperror.CodeBadRequest, apperror.MsgNameShouldBeUnique)
			}
			return apperror.New(apperror.CodeUnprocessable, apperror.MsgProductNotCreated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	s.log.Infow("findAll method was called for getting all product")
	return s.uow.Stores().Products.FindAll(ctx)
}

// DeleteUnit depletes one unit of inventory. Despite the route it serves
// ("/product/delete"), the row itself is never removed; count zero models
// a sold-out product.
func (s *ProductService) DeleteUnit(ctx context.Context, id int) (*models.Product, error) {
	var product *models.Product
	err := s.uow.Atomic(ctx, func(ctx context.Context, st repository.Stores) error {
		var err error
		product, err = s.deleteUnit(ctx, st, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) deleteUnit(ctx context.Context, st repository.Stores, id int) (*models.Product, error) {
	s.log.Infow("deleteProduct method was called", "product_id", id)

	if err := apperror.Require(id < 1, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Product Id")); err != nil {
		return nil, err
	}

	product, err := orNotFound(st.Products.FindByIDForUpdate(ctx, id))
	if err != nil {
		return nil, err
	}
	if err := apperror.Require(product == nil, apperror.CodeBadRequest,
		apperror.MsgProductIsNotValid); err != nil {
		return nil, err
	}
	if err := apperror.Require(product.Count <= 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Product count")); err != nil {
		return nil, err
	}

	product.Count--
	product.UpdatedAt = time.Now()
	if err := st.Products.Save(ctx, product); err != nil {
		return nil, apperror.New(apperror.CodeUnprocessable, apperror.MsgDeleteProductFailed)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id int, name string, price decimal.Decimal, count int) (*models.Product, error) {
	s.log.Infow("updateProduct method was called", "product_id", id)

	if err := apperror.Require(id < 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Product Id")); err != nil {
		return nil, err
	}
	if err := apperror.Require(strings.TrimSpace(name) == "", apperror.CodeBadRequest,
		apperror.MsgNameShouldBeFilled); err != nil {
		return nil, err
	}
	if err := apperror.Require(price.Sign() < 0, apperror.CodeBadRequest,
		apperror.MsgShouldBeGreaterThanZero("Amount")); err != nil {
		return nil, err
	}
	if err := apperror.Require(count < 0, apperror.CodeBadRequest,
		apperror.MsgShouldNotBeSmallerThanZero("Product Count")); err != nil {
		return nil, err
	}

	var product *models.Product
	err := s.uow.Atomic(ctx, func(ctx context.Context, st repository.Stores) error {
		var err error
		product, err = orNotFound(st.Products.FindByIDForUpdate(ctx, id))
		if err != nil {
			return err
		}
		if err := apperror.Require(product == nil, apperror.CodeBadRequest,
			apperror.MsgProductIsNotValid); err != nil {
			return err
		}

		other, err := orNotFound(st.Products.FindByName(ctx, name))
		if err != nil {
			return err
		}
		if err := apperror.Require(other != nil && other.ID != id, apperror.CodeBadRequest,
			apperror.MsgNameShouldBeUnique); err != nil {
			return err
		}

		product.Name = name
		product.Price = price
		product.Count = count
		product.UpdatedAt = time.Now()
		if err := st.Products.Save(ctx, product); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return apperror.New(apperror.CodeBadRequest, apperror.MsgNameShouldBeUnique)
			}
			return apperror.New(apperror.CodeUnprocessable, apperror.MsgMethodNotWorked)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
