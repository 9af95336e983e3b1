package cart

import (
	"context"
	"fmt"

	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/encuotas/storefront-backend/pkg/errors"
	"github.com/encuotas/storefront-backend/pkg/metrics"
)

// Store is the persistence surface the cart service depends on.
type Store interface {
	Save(ctx context.Context, sessionID string, c Cart) error
	Restore(ctx context.Context, sessionID string) (Cart, error)
	Delete(ctx context.Context, sessionID string) error
}

// ProductResolver loads catalog rows for the ids the cart needs to snapshot.
type ProductResolver interface {
	ResolveProducts(ctx context.Context, ids []string) (map[string]models.Product, error)
}

// Service exposes the per-session cart operations.
type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	AddItem(ctx context.Context, sessionID, productID string) (Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (Cart, error)
	Clear(ctx context.Context, sessionID string) (Cart, error)
}

type service struct {
	store    Store
	products ProductResolver
	metrics  *metrics.StorefrontMetrics
}

// NewService wires the cart service.
func NewService(store Store, products ProductResolver, m *metrics.StorefrontMetrics) Service {
	return &service{store: store, products: products, metrics: m}
}

func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	current, err := s.store.Restore(ctx, sessionID)
	if err != nil {
		return Empty(), errors.Dependency("failed to restore cart", err)
	}
	return current, nil
}

func (s *service) AddItem(ctx context.Context, sessionID, productID string) (Cart, error) {
	resolved, err := s.products.ResolveProducts(ctx, []string{productID})
	if err != nil {
		return Empty(), err
	}
	product, ok := resolved[productID]
	if !ok {
		return Empty(), errors.NotFound(fmt.Sprintf("product %s not found", productID))
	}

	return s.mutate(ctx, sessionID, "add", func(current Cart) Cart {
		return AddItem(current, itemFromProduct(product))
	})
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Cart, error) {
	return s.mutate(ctx, sessionID, "update_quantity", func(current Cart) Cart {
		return UpdateQuantity(current, productID, quantity)
	})
}

func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) (Cart, error) {
	return s.mutate(ctx, sessionID, "remove", func(current Cart) Cart {
		return RemoveItem(current, productID)
	})
}

func (s *service) Clear(ctx context.Context, sessionID string) (Cart, error) {
	return s.mutate(ctx, sessionID, "clear", func(current Cart) Cart {
		return Clear(current)
	})
}

func (s *service) mutate(ctx context.Context, sessionID, kind string, fn func(Cart) Cart) (Cart, error) {
	current, err := s.store.Restore(ctx, sessionID)
	if err != nil {
		return Empty(), errors.Dependency("failed to restore cart", err)
	}

	next := fn(current)
	if err := s.store.Save(ctx, sessionID, next); err != nil {
		return Empty(), errors.Dependency("failed to persist cart", err)
	}
	s.metrics.IncCartMutation(kind)
	return next, nil
}

func itemFromProduct(p models.Product) Item {
	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return Item{
		ProductID:    p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Brand:        p.Brand,
		Seller:       p.Seller,
		Image:        image,
		Installments: p.Installments,
	}
}
