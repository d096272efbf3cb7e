package apperror

import "fmt"

// User-facing error messages.
const (
	MsgRateLimiterFlow       = "Too many requests within short period. Please wait and try again."
	MsgNoEnoughBalance       = "There is no enough balance"
	MsgAccountNotFound       = "Account not found exception"
	MsgAccountNotCreated     = "Account couldn't be created"
	MsgProductNotCreated     = "Product couldn't be created"
	MsgNameShouldBeFilled    = "Name should be filled"
	MsgProductIsNotValid     = "Product is not valid"
	MsgDeleteProductFailed   = "Delete product method didn't work"
	MsgMethodNotWorked       = "Method didn't completed successfully"
	MsgBalanceBelowPrice     = "Current balance should be greater than product price"
	MsgTransactionNotCreated = "Transaction couldn't be created"
	MsgNoMandatoryField      = "Mandatory field is missing"
	MsgNameShouldBeUnique    = "Name should be unique"
)

func MsgShouldBeGreaterThanZero(field string) string {
	return fmt.Sprintf("%s should be greater than zero", field)
}

func MsgShouldNotBeSmallerThanZero(field string) string {
	return fmt.Sprintf("%s should not be smaller than zero", field)
}
