package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/encuotas/storefront-backend/api/controllers"
	"github.com/encuotas/storefront-backend/api/middleware"
	"github.com/encuotas/storefront-backend/internal/cart"
	"github.com/encuotas/storefront-backend/internal/catalog"
	"github.com/encuotas/storefront-backend/internal/leads"
	"github.com/encuotas/storefront-backend/pkg/config"
	"github.com/encuotas/storefront-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	deps map[string]controllers.Pinger,
	catalogService catalog.Service,
	cartService cart.Service,
	leadService leads.Service,
	metricsGatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps))
	})

	if metricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", controllers.ListCategories(catalogService, logg))
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Get("/products/{id}", controllers.GetProduct(catalogService, logg))
		r.Get("/leads", controllers.ListLeads(leadService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(cartService, logg))
				r.Delete("/", controllers.ClearCart(cartService, logg))
				r.Post("/items", controllers.AddCartItem(cartService, logg))
				r.Put("/items/{id}", controllers.UpdateCartItem(cartService, logg))
				r.Delete("/items/{id}", controllers.RemoveCartItem(cartService, logg))
			})

			r.Post("/leads", controllers.SubmitLead(leadService, catalogService, cartService, logg))
		})
	})

	return r
}
