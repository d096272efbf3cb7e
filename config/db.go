package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"accountservice/models"
)

// SetupDatabase connects to postgres, runs migrations and seeds the
// transaction type reference rows.
func SetupDatabase(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Product{},
		&models.TransactionType{},
		&models.Transaction{},
	); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}

	seedTransactionTypes(db)

	log.Println("Database connected and migrated")
	return db
}

// seedTransactionTypes inserts DEPOSIT/WITHDRAW/PURCHASE once; the rows
// are immutable reference data afterwards.
func seedTransactionTypes(db *gorm.DB) {
	for _, t := range models.SeedTransactionTypes() {
		if err := db.FirstOrCreate(&models.TransactionType{}, t).Error; err != nil {
			log.Fatalf("[FATAL] Seeding transaction types failed: %v", err)
		}
	}
}
