package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/encuotas/storefront-backend/api/middleware"
	cartsvc "github.com/encuotas/storefront-backend/internal/cart"
	pkgerrors "github.com/encuotas/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

type stubCartService struct {
	cart cartsvc.Cart
	err  error

	lastSession  string
	lastProduct  string
	lastQuantity int
}

func (s *stubCartService) Get(_ context.Context, sessionID string) (cartsvc.Cart, error) {
	s.lastSession = sessionID
	return s.cart, s.err
}

func (s *stubCartService) AddItem(_ context.Context, sessionID, productID string) (cartsvc.Cart, error) {
	s.lastSession = sessionID
	s.lastProduct = productID
	return s.cart, s.err
}

func (s *stubCartService) UpdateQuantity(_ context.Context, sessionID, productID string, quantity int) (cartsvc.Cart, error) {
	s.lastSession = sessionID
	s.lastProduct = productID
	s.lastQuantity = quantity
	return s.cart, s.err
}

func (s *stubCartService) RemoveItem(_ context.Context, sessionID, productID string) (cartsvc.Cart, error) {
	s.lastSession = sessionID
	s.lastProduct = productID
	return s.cart, s.err
}

func (s *stubCartService) Clear(_ context.Context, sessionID string) (cartsvc.Cart, error) {
	s.lastSession = sessionID
	return s.cart, s.err
}

func withSession(req *http.Request, sessionID string) *http.Request {
	return req.WithContext(middleware.WithSessionID(req.Context(), sessionID))
}

func sampleCart() cartsvc.Cart {
	c := cartsvc.Empty()
	c.Items = []cartsvc.Item{{
		ProductID: "iphone-16",
		Name:      "iPhone 16 128GB",
		Price:     decimal.RequireFromString("4064.00"),
		Quantity:  1,
	}}
	c.TotalItems = 1
	c.TotalAmount = decimal.RequireFromString("4064.00")
	return c
}

func TestGetCart(t *testing.T) {
	svc := &stubCartService{cart: sampleCart()}
	handler := GetCart(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastSession != "sess-1" {
		t.Fatalf("expected session sess-1, got %q", svc.lastSession)
	}

	var envelope struct {
		Data cartsvc.Cart `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalItems != 1 {
		t.Fatalf("unexpected total items %d", envelope.Data.TotalItems)
	}
}

func TestGetCart_MissingSessionContext(t *testing.T) {
	handler := GetCart(&stubCartService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

func TestAddCartItem(t *testing.T) {
	svc := &stubCartService{cart: sampleCart()}
	handler := AddCartItem(svc, nil)

	body := strings.NewReader(`{"product_id":"iphone-16"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastProduct != "iphone-16" {
		t.Fatalf("expected product iphone-16, got %q", svc.lastProduct)
	}
}

func TestAddCartItem_MissingProductID(t *testing.T) {
	handler := AddCartItem(&stubCartService{}, nil)

	body := strings.NewReader(`{}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAddCartItem_UnknownProduct(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.NotFound("product ghost not found")}
	handler := AddCartItem(svc, nil)

	body := strings.NewReader(`{"product_id":"ghost"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", body), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestUpdateCartItem(t *testing.T) {
	svc := &stubCartService{cart: sampleCart()}
	handler := UpdateCartItem(svc, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "iphone-16")

	body := strings.NewReader(`{"quantity":3}`)
	req := withSession(httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/iphone-16", body), "sess-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastQuantity != 3 {
		t.Fatalf("expected quantity 3, got %d", svc.lastQuantity)
	}
}

func TestClearCart(t *testing.T) {
	svc := &stubCartService{cart: cartsvc.Empty()}
	handler := ClearCart(svc, nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), "sess-1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
