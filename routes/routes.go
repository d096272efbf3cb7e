package routes

import (
	"github.com/gin-gonic/gin"

	"accountservice/controllers"
	"accountservice/ratelimit"
)

// SetupRoutes wires every resource route behind the shared rate limit.
func SetupRoutes(
	r *gin.Engine,
	limiter *ratelimit.Limiter,
	accounts *controllers.AccountController,
	products *controllers.ProductController,
	store *controllers.StoreController,
) {
	limited := r.Group("/", limiter.Middleware())

	// ----------------------
	// Account routes
	// ----------------------
	account := limited.Group("/account")
	account.POST("/create", accounts.Create)
	account.GET("/:id", accounts.Find)
	account.POST("/deposit", accounts.Deposit)
	account.POST("/withdraw", accounts.Withdraw)
	account.POST("/listTransactions", accounts.ListTransactions)

	// ----------------------
	// Product routes
	// ----------------------
	product := limited.Group("/product")
	product.POST("/create", products.Create)
	product.GET("/list", products.List)
	product.POST("/delete", products.Delete)
	product.POST("/update", products.Update)

	// ----------------------
	// Store routes
	// ----------------------
	storeGroup := limited.Group("/store")
	storeGroup.GET("/list", store.List)
	storeGroup.POST("/buy", store.Buy)
}
