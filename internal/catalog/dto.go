package catalog

import (
	"time"

	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// InstallmentsDTO mirrors the financing plan shown on product cards.
type InstallmentsDTO struct {
	Months         int             `json:"months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TCEA           *float64        `json:"tcea,omitempty"`
}

// ProductDTO is the listing/detail projection served to clients.
type ProductDTO struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	Category        string           `json:"category"`
	Subcategory     string           `json:"subcategory"`
	Brand           string           `json:"brand"`
	Seller          string           `json:"seller"`
	Stock           int              `json:"stock"`
	DiscountPercent *int             `json:"discount_percent,omitempty"`
	Featured        bool             `json:"featured"`
	IsCombo         bool             `json:"is_combo"`
	Tags            []string         `json:"tags,omitempty"`
	Specs           map[string]any   `json:"specs,omitempty"`
	Images          []string         `json:"images,omitempty"`
	Installments    InstallmentsDTO  `json:"installments"`
	CreatedAt       time.Time        `json:"created_at"`
}

// CategoryDTO is the browse projection for categories.
type CategoryDTO struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	Description   *string              `json:"description,omitempty"`
	Subcategories []models.Subcategory `json:"subcategories,omitempty"`
}

// PageDTO describes offset pagination metadata for product listings.
type PageDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ProductPageDTO bundles one page of products with its pagination metadata.
type ProductPageDTO struct {
	Products   []ProductDTO `json:"products"`
	Pagination PageDTO      `json:"pagination"`
}

func newProductDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Brand:           p.Brand,
		Seller:          p.Seller,
		Stock:           p.Stock,
		DiscountPercent: p.DiscountPercent,
		Featured:        p.Featured,
		IsCombo:         p.IsCombo,
		Tags:            p.Tags,
		Specs:           p.Specs,
		Images:          p.Images,
		Installments: InstallmentsDTO{
			Months:         p.Installments.Months,
			MonthlyPayment: p.Installments.MonthlyPayment,
			TCEA:           p.Installments.TCEA,
		},
		CreatedAt: p.CreatedAt,
	}
}

func newCategoryDTO(c models.Category) CategoryDTO {
	return CategoryDTO{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		Description:   c.Description,
		Subcategories: c.Subcategories,
	}
}
