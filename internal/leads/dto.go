package leads

import (
	"time"

	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// LeadProductDTO is the per-product snapshot served with a lead record.
type LeadProductDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Seller   string          `json:"seller"`
}

// LeadDTO is the back-office projection of one captured lead.
type LeadDTO struct {
	ID              string           `json:"id"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	DNI             string           `json:"dni"`
	Email           string           `json:"email"`
	AcceptMarketing bool             `json:"accept_marketing"`
	Source          string           `json:"source"`
	ProductCount    int              `json:"product_count"`
	Products        []LeadProductDTO `json:"products"`
	TotalValue      decimal.Decimal  `json:"total_value"`
	SubmittedAt     time.Time        `json:"submitted_at"`
}

// LeadPageDTO bundles one page of leads with the cursor for the next one.
type LeadPageDTO struct {
	Leads      []LeadDTO `json:"leads"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

func newLeadDTO(record models.LeadRecord) LeadDTO {
	products := make([]LeadProductDTO, 0, len(record.Products))
	for _, p := range record.Products {
		products = append(products, LeadProductDTO{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Brand:    p.Brand,
			Category: p.Category,
			Seller:   p.Seller,
		})
	}

	return LeadDTO{
		ID:              record.ID.String(),
		FirstName:       record.FirstName,
		LastName:        record.LastName,
		DNI:             record.DNI,
		Email:           record.Email,
		AcceptMarketing: record.AcceptMarketing,
		Source:          record.Source,
		ProductCount:    record.ProductCount,
		Products:        products,
		TotalValue:      record.TotalValue,
		SubmittedAt:     record.SubmittedAt,
	}
}
