package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/encuotas/storefront-backend/internal/catalog"
	"github.com/encuotas/storefront-backend/pkg/db/models"
	pkgerrors "github.com/encuotas/storefront-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

type stubCatalogService struct {
	page       *catalog.ProductPageDTO
	product    *catalog.ProductDTO
	categories []catalog.CategoryDTO
	resolved   map[string]models.Product
	err        error

	lastInput catalog.ListInput
}

func (s *stubCatalogService) ListProducts(_ context.Context, input catalog.ListInput) (*catalog.ProductPageDTO, error) {
	s.lastInput = input
	return s.page, s.err
}

func (s *stubCatalogService) GetProduct(_ context.Context, id string) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) ResolveProducts(_ context.Context, ids []string) (map[string]models.Product, error) {
	return s.resolved, s.err
}

func (s *stubCatalogService) ListCategories(_ context.Context) ([]catalog.CategoryDTO, error) {
	return s.categories, s.err
}

func TestListProducts(t *testing.T) {
	svc := &stubCatalogService{page: &catalog.ProductPageDTO{
		Products: []catalog.ProductDTO{{ID: "iphone-16", Name: "iPhone 16 128GB"}},
		Pagination: catalog.PageDTO{
			Page:       1,
			Limit:      25,
			Total:      1,
			TotalPages: 1,
		},
	}}
	handler := ListProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=celulares&sort=price_asc&page=2&limit=10&featured=true&price_min=100.50", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	if svc.lastInput.Filters.Category != "celulares" {
		t.Fatalf("unexpected category filter %q", svc.lastInput.Filters.Category)
	}
	if svc.lastInput.Sort != catalog.SortPriceAsc {
		t.Fatalf("unexpected sort %q", svc.lastInput.Sort)
	}
	if svc.lastInput.Page != 2 || svc.lastInput.Limit != 10 {
		t.Fatalf("unexpected pagination %d/%d", svc.lastInput.Page, svc.lastInput.Limit)
	}
	if svc.lastInput.Filters.Featured == nil || !*svc.lastInput.Filters.Featured {
		t.Fatal("expected featured filter to be true")
	}
	want := decimal.RequireFromString("100.50")
	if svc.lastInput.Filters.PriceMin == nil || !svc.lastInput.Filters.PriceMin.Equal(want) {
		t.Fatalf("unexpected price_min %v", svc.lastInput.Filters.PriceMin)
	}

	var envelope struct {
		Data catalog.ProductPageDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Products) != 1 {
		t.Fatalf("expected one product, got %d", len(envelope.Data.Products))
	}
}

func TestListProducts_InvalidQuery(t *testing.T) {
	handler := ListProducts(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?limit=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetProduct(t *testing.T) {
	svc := &stubCatalogService{product: &catalog.ProductDTO{ID: "iphone-16"}}
	handler := GetProduct(svc, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "iphone-16")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/iphone-16", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := &stubCatalogService{err: pkgerrors.NotFound("product missing not found")}
	handler := GetProduct(svc, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "missing")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/missing", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestListCategories(t *testing.T) {
	svc := &stubCatalogService{categories: []catalog.CategoryDTO{
		{ID: "celulares", Name: "Celulares", Slug: "celulares"},
	}}
	handler := ListCategories(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []catalog.CategoryDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Slug != "celulares" {
		t.Fatalf("unexpected categories payload: %+v", envelope.Data)
	}
}
