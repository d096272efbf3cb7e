package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int             `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Count     int             `gorm:"not null" json:"count"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewProduct(name string, price decimal.Decimal, count int) *Product {
	now := time.Now()
	return &Product{
		Name:      name,
		Price:     price,
		Count:     count,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
