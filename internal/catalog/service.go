package catalog

import (
	"context"
	goerrors "errors"
	"fmt"

	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/encuotas/storefront-backend/pkg/errors"
	"github.com/encuotas/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Store is the data access surface the catalog service depends on.
type Store interface {
	List(ctx context.Context, input ListInput) ([]models.Product, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Service exposes catalog browsing operations to the API layer and to the
// cart/lead services, which resolve products through it.
type Service interface {
	ListProducts(ctx context.Context, input ListInput) (*ProductPageDTO, error)
	GetProduct(ctx context.Context, id string) (*ProductDTO, error)
	ResolveProducts(ctx context.Context, ids []string) (map[string]models.Product, error)
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
}

type service struct {
	store Store
}

// NewService wires a catalog service over the given store.
func NewService(store Store) Service {
	return &service{store: store}
}

func (s *service) ListProducts(ctx context.Context, input ListInput) (*ProductPageDTO, error) {
	if input.Sort != "" && !ValidSort(input.Sort) {
		return nil, errors.BadRequest(fmt.Sprintf("unknown sort option %q", input.Sort))
	}
	if input.Page < 1 {
		input.Page = 1
	}
	input.Limit = pagination.NormalizeLimit(input.Limit)

	records, total, err := s.store.List(ctx, input)
	if err != nil {
		return nil, errors.Internal("failed to list products", err)
	}

	items := make([]ProductDTO, 0, len(records))
	for i := range records {
		items = append(items, newProductDTO(records[i]))
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit != 0 {
		totalPages++
	}
	return &ProductPageDTO{
		Products: items,
		Pagination: PageDTO{
			Page:       input.Page,
			Limit:      input.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*ProductDTO, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound(fmt.Sprintf("product %s not found", id))
		}
		return nil, errors.Internal("failed to load product", err)
	}
	dto := newProductDTO(*record)
	return &dto, nil
}

// ResolveProducts returns the catalog rows for the requested ids keyed by id.
// Missing ids are simply absent from the map; callers decide whether that is
// an error for them.
func (s *service) ResolveProducts(ctx context.Context, ids []string) (map[string]models.Product, error) {
	records, err := s.store.GetByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Internal("failed to resolve products", err)
	}
	resolved := make(map[string]models.Product, len(records))
	for i := range records {
		resolved[records[i].ID] = records[i]
	}
	return resolved, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	records, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, errors.Internal("failed to list categories", err)
	}
	items := make([]CategoryDTO, 0, len(records))
	for i := range records {
		items = append(items, newCategoryDTO(records[i]))
	}
	return items, nil
}
