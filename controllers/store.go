package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accountservice/services"
)

type StoreController struct {
	store *services.StoreService
}

func NewStoreController(store *services.StoreService) *StoreController {
	return &StoreController{store: store}
}

// List returns the products still in stock.
func (ctl *StoreController) List(c *gin.Context) {
	products, err := ctl.store.ListAvailable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": newProductViews(products)})
}

type buyRequest struct {
	AccountID *int `json:"accountId" binding:"required"`
	ProductID *int `json:"productId" binding:"required"`
}

// Buy debits the account, depletes one unit of inventory and returns the
// purchase transaction.
func (ctl *StoreController) Buy(c *gin.Context) {
	var req buyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	transaction, err := ctl.store.Buy(c.Request.Context(), *req.AccountID, *req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": newTransactionView(transaction)})
}
