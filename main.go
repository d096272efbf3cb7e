package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"accountservice/config"
	"accountservice/controllers"
	"accountservice/ratelimit"
	"accountservice/repository"
	"accountservice/routes"
	"accountservice/services"
	"accountservice/utils/logger"
)

// setupRouter wires middleware, resource routes and the health endpoint.
func setupRouter(limiter *ratelimit.Limiter, accounts *controllers.AccountController, products *controllers.ProductController, store *controllers.StoreController) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, limiter, accounts, products, store)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	cfg := config.Load()
	log := logger.New()
	defer log.Sync()

	db := config.SetupDatabase(cfg.DatabaseURL)
	uow := repository.NewGormUnitOfWork(db)

	accountService := services.NewAccountService(uow, log)
	productService := services.NewProductService(uow, log)
	transactionService := services.NewTransactionService(uow, accountService, log)
	storeService := services.NewStoreService(uow, accountService, productService, log)

	// Counters live in redis when configured, falling back to the
	// in-process store for single-instance runs.
	var counter ratelimit.Counter = ratelimit.NewMemoryCounter()
	if cfg.RedisAddr != "" {
		counter = ratelimit.NewRedisCounter(config.SetupRedis(cfg))
	}
	limiter := ratelimit.NewLimiter(counter, cfg.RateLimit,
		time.Duration(cfg.RateWindowSeconds)*time.Second, log)

	router := setupRouter(limiter,
		controllers.NewAccountController(accountService, transactionService),
		controllers.NewProductController(productService),
		controllers.NewStoreController(storeService),
	)

	log.Infof("Account service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
