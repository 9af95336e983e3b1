package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installments describes the financing plan advertised for a product.
type Installments struct {
	Months         int             `json:"months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TCEA           *float64        `json:"tcea,omitempty"`
}

// Product is a catalog listing. Rows are seeded by migrations and treated as
// read-only by the API.
type Product struct {
	ID              string           `gorm:"column:id;primaryKey"`
	Name            string           `gorm:"column:name;not null"`
	Description     string           `gorm:"column:description;not null"`
	Price           decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null"`
	OriginalPrice   *decimal.Decimal `gorm:"column:original_price;type:numeric(12,2)"`
	Category        string           `gorm:"column:category;not null"`
	Subcategory     string           `gorm:"column:subcategory;not null"`
	Brand           string           `gorm:"column:brand;not null"`
	Seller          string           `gorm:"column:seller;not null"`
	Stock           int              `gorm:"column:stock;not null;default:0"`
	DiscountPercent *int             `gorm:"column:discount_percent"`
	Featured        bool             `gorm:"column:featured;not null;default:false"`
	IsCombo         bool             `gorm:"column:is_combo;not null;default:false"`
	Tags            []string         `gorm:"column:tags;type:jsonb;serializer:json"`
	Specs           map[string]any   `gorm:"column:specs;type:jsonb;serializer:json"`
	Images          []string         `gorm:"column:images;type:jsonb;serializer:json"`
	Installments    Installments     `gorm:"column:installments;type:jsonb;serializer:json"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
