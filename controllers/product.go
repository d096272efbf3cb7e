package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"accountservice/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

type productCreateRequest struct {
	Name  *string          `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
	Count *int             `json:"count" binding:"required"`
}

func (ctl *ProductController) Create(c *gin.Context) {
	var req productCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	product, err := ctl.products.Create(c.Request.Context(), *req.Name, *req.Price, *req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": newProductView(product)})
}

func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.products.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": newProductViews(products)})
}

type productDeleteRequest struct {
	ID *int `json:"id" binding:"required"`
}

// Delete depletes one unit of the product's inventory.
func (ctl *ProductController) Delete(c *gin.Context) {
	var req productDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	product, err := ctl.products.DeleteUnit(c.Request.Context(), *req.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": newProductView(product)})
}

type productUpdateRequest struct {
	ID    *int             `json:"id" binding:"required"`
	Name  *string          `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
	Count *int             `json:"count" binding:"required"`
}

func (ctl *ProductController) Update(c *gin.Context) {
	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c)
		return
	}

	product, err := ctl.products.Update(c.Request.Context(), *req.ID, *req.Name, *req.Price, *req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": newProductView(product)})
}
