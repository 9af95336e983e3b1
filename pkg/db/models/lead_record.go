package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeadRecordSchemaVersion tags persisted rows so future shape changes can
// migrate or discard old entries instead of failing silently.
const LeadRecordSchemaVersion = 1

// LeadProduct is the flattened per-product snapshot stored with a lead.
type LeadProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Seller   string          `json:"seller"`
}

// LeadRecord is one captured inquiry. Rows are append-only and never mutated
// after creation; resubmissions create new rows.
type LeadRecord struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	SchemaVersion   int             `gorm:"column:schema_version;not null"`
	FirstName       string          `gorm:"column:first_name;not null"`
	LastName        string          `gorm:"column:last_name;not null"`
	DNI             string          `gorm:"column:dni;not null"`
	Email           string          `gorm:"column:email;not null"`
	AcceptMarketing bool            `gorm:"column:accept_marketing;not null;default:false"`
	Source          string          `gorm:"column:source;not null"`
	ProductCount    int             `gorm:"column:product_count;not null"`
	Products        []LeadProduct   `gorm:"column:products;type:jsonb;serializer:json"`
	TotalValue      decimal.Decimal `gorm:"column:total_value;type:numeric(12,2);not null"`
	SubmittedAt     time.Time       `gorm:"column:submitted_at;not null"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (LeadRecord) TableName() string { return "lead_records" }
