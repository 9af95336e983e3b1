package models

import "time"

// Subcategory is a nested grouping inside a Category.
type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Category groups catalog products for browsing.
type Category struct {
	ID            string        `gorm:"column:id;primaryKey"`
	Name          string        `gorm:"column:name;not null"`
	Slug          string        `gorm:"column:slug;not null;uniqueIndex"`
	Description   *string       `gorm:"column:description"`
	Icon          *string       `gorm:"column:icon"`
	Position      int           `gorm:"column:position;not null;default:0"`
	Subcategories []Subcategory `gorm:"column:subcategories;type:jsonb;serializer:json"`
	CreatedAt     time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}

func (Category) TableName() string { return "categories" }
