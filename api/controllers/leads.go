package controllers

import (
	"net/http"
	"strings"

	"github.com/encuotas/storefront-backend/api/middleware"
	"github.com/encuotas/storefront-backend/api/responses"
	"github.com/encuotas/storefront-backend/api/validators"
	"github.com/encuotas/storefront-backend/internal/cart"
	"github.com/encuotas/storefront-backend/internal/catalog"
	"github.com/encuotas/storefront-backend/internal/leads"
	pkgerrors "github.com/encuotas/storefront-backend/pkg/errors"
	"github.com/encuotas/storefront-backend/pkg/logger"
	"github.com/encuotas/storefront-backend/pkg/pagination"
)

type submitLeadRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	DNI             string `json:"dni" validate:"required"`
	Email           string `json:"email" validate:"required"`
	AcceptMarketing bool   `json:"accept_marketing"`
	Source          string `json:"source" validate:"required,oneof=product cart"`
	ProductID       string `json:"product_id,omitempty"`
}

type submitLeadResponse struct {
	LeadID             string `json:"lead_id"`
	HandoffURL         string `json:"handoff_url"`
	PersistenceWarning bool   `json:"persistence_warning,omitempty"`
}

// SubmitLead captures a lead and returns the WhatsApp handoff URL. Product
// leads reference a single catalog product; cart leads snapshot every line in
// the session's cart.
func SubmitLead(leadSvc leads.Service, catalogSvc catalog.Service, cartSvc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload submitLeadRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := leadProducts(r, payload, catalogSvc, cartSvc)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := leadSvc.Submit(r.Context(), leads.SubmitInput{
			FirstName:       strings.TrimSpace(payload.FirstName),
			LastName:        strings.TrimSpace(payload.LastName),
			DNI:             strings.TrimSpace(payload.DNI),
			Email:           strings.TrimSpace(payload.Email),
			AcceptMarketing: payload.AcceptMarketing,
			Source:          payload.Source,
			Products:        products,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, submitLeadResponse{
			LeadID:             result.LeadID.String(),
			HandoffURL:         result.HandoffURL,
			PersistenceWarning: result.PersistenceWarning,
		})
	}
}

// ListLeads pages the captured lead log for back-office export, newest first.
// The cursor query parameter continues from a previous page.
func ListLeads(leadSvc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := leadSvc.List(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

func leadProducts(r *http.Request, payload submitLeadRequest, catalogSvc catalog.Service, cartSvc cart.Service) ([]leads.SubmitProduct, error) {
	switch payload.Source {
	case leads.SourceProduct:
		productID := strings.TrimSpace(payload.ProductID)
		if productID == "" {
			return nil, pkgerrors.BadRequest("product_id is required for product leads")
		}
		resolved, err := catalogSvc.ResolveProducts(r.Context(), []string{productID})
		if err != nil {
			return nil, err
		}
		product, ok := resolved[productID]
		if !ok {
			return nil, pkgerrors.NotFound("product " + productID + " not found")
		}
		return []leads.SubmitProduct{{
			ID:           product.ID,
			Name:         product.Name,
			Price:        product.Price,
			Brand:        product.Brand,
			Category:     product.Category,
			Seller:       product.Seller,
			Installments: product.Installments,
		}}, nil

	case leads.SourceCart:
		sessionID := middleware.SessionIDFromContext(r.Context())
		current, err := cartSvc.Get(r.Context(), sessionID)
		if err != nil {
			return nil, err
		}
		if len(current.Items) == 0 {
			return nil, pkgerrors.BadRequest("cart is empty")
		}

		ids := make([]string, 0, len(current.Items))
		for _, item := range current.Items {
			ids = append(ids, item.ProductID)
		}
		resolved, err := catalogSvc.ResolveProducts(r.Context(), ids)
		if err != nil {
			return nil, err
		}

		products := make([]leads.SubmitProduct, 0, len(current.Items))
		for _, item := range current.Items {
			p := leads.SubmitProduct{
				ID:           item.ProductID,
				Name:         item.Name,
				Price:        item.Price,
				Brand:        item.Brand,
				Seller:       item.Seller,
				Installments: item.Installments,
			}
			// the cart snapshot has no category; fill it from the catalog
			// when the product still exists there
			if row, ok := resolved[item.ProductID]; ok {
				p.Category = row.Category
			}
			products = append(products, p)
		}
		return products, nil
	}

	return nil, pkgerrors.BadRequest("source must be product or cart")
}
