package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/encuotas/storefront-backend/api/responses"
	"github.com/encuotas/storefront-backend/api/validators"
	"github.com/encuotas/storefront-backend/internal/catalog"
	pkgerrors "github.com/encuotas/storefront-backend/pkg/errors"
	"github.com/encuotas/storefront-backend/pkg/logger"
	"github.com/encuotas/storefront-backend/pkg/pagination"
)

// ListProducts serves the filtered, sorted, paginated product listing.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := listInputFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListProducts(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// GetProduct serves a single product by id.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.BadRequest("product id is required"))
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ListCategories serves the browse categories in display order.
func ListCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

func listInputFromQuery(r *http.Request) (catalog.ListInput, error) {
	page, err := validators.ParseQueryInt(r, "page", 1, 1, 100000)
	if err != nil {
		return catalog.ListInput{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return catalog.ListInput{}, err
	}
	priceMin, err := validators.ParseQueryDecimal(r, "price_min")
	if err != nil {
		return catalog.ListInput{}, err
	}
	priceMax, err := validators.ParseQueryDecimal(r, "price_max")
	if err != nil {
		return catalog.ListInput{}, err
	}
	featured, err := validators.ParseQueryBool(r, "featured")
	if err != nil {
		return catalog.ListInput{}, err
	}
	isCombo, err := validators.ParseQueryBool(r, "is_combo")
	if err != nil {
		return catalog.ListInput{}, err
	}

	q := r.URL.Query()
	return catalog.ListInput{
		Filters: catalog.ListFilters{
			Category:    strings.TrimSpace(q.Get("category")),
			Subcategory: strings.TrimSpace(q.Get("subcategory")),
			Brand:       strings.TrimSpace(q.Get("brand")),
			Seller:      strings.TrimSpace(q.Get("seller")),
			PriceMin:    priceMin,
			PriceMax:    priceMax,
			Featured:    featured,
			IsCombo:     isCombo,
			Tag:         strings.TrimSpace(q.Get("tag")),
			Query:       strings.TrimSpace(q.Get("q")),
		},
		Sort:  catalog.SortOption(strings.TrimSpace(q.Get("sort"))),
		Page:  page,
		Limit: limit,
	}, nil
}
