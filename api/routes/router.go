package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Walid-EM/restaurantsitev0-sub000/api/controllers"
	cartcontrollers "github.com/Walid-EM/restaurantsitev0-sub000/api/controllers/cart"
	"github.com/Walid-EM/restaurantsitev0-sub000/api/middleware"
	cartsvc "github.com/Walid-EM/restaurantsitev0-sub000/internal/cart"
	"github.com/Walid-EM/restaurantsitev0-sub000/internal/catalog"
	checkoutsvc "github.com/Walid-EM/restaurantsitev0-sub000/internal/checkout"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/config"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/logger"
	pkgredis "github.com/Walid-EM/restaurantsitev0-sub000/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           controllers.Pinger
	Redis        *pkgredis.Client
	Catalog      catalog.Service
	Cart         *cartsvc.Service
	Checkout     *checkoutsvc.Service
	ExtraOrigins []string
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(deps.ExtraOrigins...),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readinessDeps(deps)))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/categories", controllers.MenuCategories(deps.Catalog, logg))
			r.Get("/products", controllers.MenuProducts(deps.Catalog, logg))
			r.Get("/products/{productId}/steps", controllers.MenuProductSteps(deps.Catalog, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.CartFetch(deps.Cart, logg))
				r.Delete("/", cartcontrollers.CartClear(deps.Cart, logg))
				r.Post("/items", cartcontrollers.CartAddItem(deps.Cart, logg))
				r.Patch("/items/{lineId}", cartcontrollers.CartUpdateQuantity(deps.Cart, logg))
				r.Delete("/items/{lineId}", cartcontrollers.CartRemoveItem(deps.Cart, logg))
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.Idempotency(idempotencyStore(deps.Redis), cfg.Checkout.IdempotencyTTL, logg))
				r.Post("/checkout", controllers.Checkout(deps.Checkout, deps.Cart, logg))
			})
		})
	})

	return r
}

func readinessDeps(deps Deps) map[string]controllers.Pinger {
	checks := map[string]controllers.Pinger{
		"database": deps.DB,
		"redis":    nil,
	}
	if deps.Redis != nil {
		checks["redis"] = deps.Redis
	}
	return checks
}

// idempotencyStore avoids handing a typed-nil client to the middleware.
func idempotencyStore(client *pkgredis.Client) pkgredis.IdempotencyStore {
	if client == nil {
		return nil
	}
	return client
}
