package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"accountservice/apperror"
	"accountservice/models"
	"accountservice/services"
)

type AccountController struct {
	accounts     *services.AccountService
	transactions *services.TransactionService
}

func NewAccountController(accounts *services.AccountService, transactions *services.TransactionService) *AccountController {
	return &AccountController{accounts: accounts, transactions: transactions}
}

// Create opens a new account with a zero balance.
func (ctl *AccountController) Create(c *gin.Context) {
	account, err := ctl.accounts.Create(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": newAccountView(account)})
}

// Find fetches one account by id. A non-numeric id is treated as an
// absent account, not a malformed request.
func (ctl *AccountController) Find(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, apperror.New(apperror.CodeNotFound, apperror.MsgAccountNotFound))
		return
	}

	account, err := ctl.accounts.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": newAccountView(account)})
}

type amountRequest struct {
	AccountID *int             `json:"accountId" binding:"required"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
}

// Deposit records a DEPOSIT transaction and returns the updated account.
func (ctl *AccountController) Deposit(c *gin.Context) {
	ctl.applyAmount(c, models.TypeDeposit)
}

// Withdraw records a WITHDRAW transaction and returns the updated account.
func (ctl *AccountController) Withdraw(c *gin.Context) {
	ctl.applyAmount(c, models.TypeWithdraw)
}

func (ctl *AccountController) applyAmount(c *gin.Context, typeCode int) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	if _, err := ctl.transactions.Create(c.Request.Context(), *req.AccountID, *req.Amount, typeCode); err != nil {
		respondError(c, err)
		return
	}

	account, err := ctl.accounts.FindByID(c.Request.Context(), *req.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": newAccountView(account)})
}

type listTransactionsRequest struct {
	AccountID *int `json:"accountId" binding:"required"`
}

// ListTransactions returns the account's journal in creation order.
func (ctl *AccountController) ListTransactions(c *gin.Context) {
	var req listTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	transactions, err := ctl.transactions.ListByAccount(c.Request.Context(), *req.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": newTransactionViews(transactions)})
}
