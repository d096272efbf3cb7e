// Package services holds the business rules: the account ledger, the
// product catalog, the transaction journal and the purchase orchestrator.
// Every multi-row mutation runs inside one repository.UnitOfWork unit.
package services

import (
	"errors"

	"accountservice/repository"
)

// orNotFound maps the repository's not-found sentinel to a nil entity so
// the callers can phrase existence checks as guard clauses.
func orNotFound[T any](entity *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entity, nil
}
