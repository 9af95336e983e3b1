package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/encuotas/storefront-backend/pkg/db/models"
	pkgerrors "github.com/encuotas/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCartStore struct {
	carts      map[string]Cart
	restoreErr error
	saveErr    error
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: map[string]Cart{}}
}

func (s *stubCartStore) Save(_ context.Context, sessionID string, c Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.carts[sessionID] = c
	return nil
}

func (s *stubCartStore) Restore(_ context.Context, sessionID string) (Cart, error) {
	if s.restoreErr != nil {
		return Empty(), s.restoreErr
	}
	if c, ok := s.carts[sessionID]; ok {
		return c, nil
	}
	return Empty(), nil
}

func (s *stubCartStore) Delete(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

type stubResolver struct {
	products map[string]models.Product
	err      error
}

func (s *stubResolver) ResolveProducts(_ context.Context, ids []string) (map[string]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := map[string]models.Product{}
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func cartFixtureProduct(id, price string) models.Product {
	return models.Product{
		ID:     id,
		Name:   "Producto " + id,
		Price:  decimal.RequireFromString(price),
		Brand:  "ACME",
		Seller: "encuotas",
		Images: []string{"https://cdn.example.com/" + id + ".jpg"},
	}
}

func newCartService(store Store, resolver ProductResolver) Service {
	return NewService(store, resolver, nil)
}

func TestServiceAddItem(t *testing.T) {
	store := newStubCartStore()
	resolver := &stubResolver{products: map[string]models.Product{
		"p1": cartFixtureProduct("p1", "450.50"),
	}}
	svc := newCartService(store, resolver)
	ctx := context.Background()

	c, err := svc.AddItem(ctx, "sess-1", "p1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "https://cdn.example.com/p1.jpg", c.Items[0].Image)

	c, err = svc.AddItem(ctx, "sess-1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Items[0].Quantity)

	// snapshot was persisted per mutation
	persisted := store.carts["sess-1"]
	assert.Equal(t, 2, persisted.TotalItems)
}

func TestServiceAddItem_UnknownProduct(t *testing.T) {
	svc := newCartService(newStubCartStore(), &stubResolver{products: map[string]models.Product{}})

	_, err := svc.AddItem(context.Background(), "sess-1", "ghost")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestServiceUpdateRemoveClear(t *testing.T) {
	store := newStubCartStore()
	resolver := &stubResolver{products: map[string]models.Product{
		"p1": cartFixtureProduct("p1", "100.00"),
		"p2": cartFixtureProduct("p2", "50.00"),
	}}
	svc := newCartService(store, resolver)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "p1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sess-1", "p2")
	require.NoError(t, err)

	c, err := svc.UpdateQuantity(ctx, "sess-1", "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, c.TotalItems)

	c, err = svc.RemoveItem(ctx, "sess-1", "p2")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.True(t, c.TotalAmount.Equal(decimal.RequireFromString("400.00")))

	c, err = svc.Clear(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Empty(t, store.carts["sess-1"].Items)
}

func TestServiceGet_IsolatedPerSession(t *testing.T) {
	store := newStubCartStore()
	resolver := &stubResolver{products: map[string]models.Product{
		"p1": cartFixtureProduct("p1", "100.00"),
	}}
	svc := newCartService(store, resolver)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", "p1")
	require.NoError(t, err)

	other, err := svc.Get(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestServiceMutation_StoreFailure(t *testing.T) {
	store := newStubCartStore()
	store.saveErr = errors.New("redis down")
	resolver := &stubResolver{products: map[string]models.Product{
		"p1": cartFixtureProduct("p1", "100.00"),
	}}
	svc := newCartService(store, resolver)

	_, err := svc.AddItem(context.Background(), "sess-1", "p1")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}
