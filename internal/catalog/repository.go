package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/encuotas/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository encapsulates read access to the seeded catalog tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns one page of products matching the filters plus the total match count.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})
	query = applyFilters(query, input.Filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	limit := pagination.NormalizeLimit(input.Limit)
	page := input.Page
	if page < 1 {
		page = 1
	}

	var records []models.Product
	err := query.
		Order(orderClause(input.Sort)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return records, total, nil
}

// GetByID loads a single product or gorm.ErrRecordNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var record models.Product
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByIDs loads the products for the given ids, preserving only existing rows.
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var records []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListCategories returns every category ordered by its configured position.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var records []models.Category
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func applyFilters(query *gorm.DB, filters ListFilters) *gorm.DB {
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Subcategory != "" {
		query = query.Where("subcategory = ?", filters.Subcategory)
	}
	if filters.Brand != "" {
		query = query.Where("brand = ?", filters.Brand)
	}
	if filters.Seller != "" {
		query = query.Where("seller = ?", filters.Seller)
	}
	if filters.PriceMin != nil {
		query = query.Where("price >= ?", filters.PriceMin)
	}
	if filters.PriceMax != nil {
		query = query.Where("price <= ?", filters.PriceMax)
	}
	if filters.Featured != nil {
		query = query.Where("featured = ?", *filters.Featured)
	}
	if filters.IsCombo != nil {
		query = query.Where("is_combo = ?", *filters.IsCombo)
	}
	if tag := strings.TrimSpace(filters.Tag); tag != "" {
		// tags are stored as a JSON array; match the quoted element so
		// "tv" does not match "smart tv" substrings of other fields.
		query = query.Where("CAST(tags AS TEXT) LIKE ?", `%"`+escapeLike(tag)+`"%`)
	}
	if q := strings.TrimSpace(filters.Query); q != "" {
		needle := "%" + strings.ToLower(escapeLike(q)) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?",
			needle, needle, needle,
		)
	}
	return query
}

func orderClause(sort SortOption) string {
	switch sort {
	case SortPriceAsc:
		return "price ASC, id ASC"
	case SortPriceDesc:
		return "price DESC, id ASC"
	case SortName:
		return "name ASC, id ASC"
	case SortDiscount:
		return "discount_percent DESC NULLS LAST, id ASC"
	default:
		return "created_at DESC, id DESC"
	}
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
