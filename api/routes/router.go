package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlefevre-dev/vitrine-backend/api/controllers"
	"github.com/mlefevre-dev/vitrine-backend/api/middleware"
	"github.com/mlefevre-dev/vitrine-backend/internal/about"
	"github.com/mlefevre-dev/vitrine-backend/internal/auth"
	"github.com/mlefevre-dev/vitrine-backend/internal/content"
	"github.com/mlefevre-dev/vitrine-backend/internal/media"
	"github.com/mlefevre-dev/vitrine-backend/internal/products"
	"github.com/mlefevre-dev/vitrine-backend/internal/shops"
	"github.com/mlefevre-dev/vitrine-backend/pkg/auth/session"
	"github.com/mlefevre-dev/vitrine-backend/pkg/config"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
	"github.com/mlefevre-dev/vitrine-backend/pkg/metrics"
	"github.com/mlefevre-dev/vitrine-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          controllers.Pinger
	Redis       *redis.Client
	Sessions    session.AccessSessionChecker
	Auth        auth.Service
	Content     *content.Services
	Media       media.Service
	Shops       shops.Service
	Products    products.Service
	About       about.Service
	HTTPMetrics *metrics.RequestMetrics
}

// NewRouter assembles the full route tree. Reads are public; every mutation
// sits behind the bearer-token middleware.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	guard := middleware.Auth(cfg.JWT, deps.Sessions, logg)
	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": deps.DB,
			"redis":    deps.Redis,
		}))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
			Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.Auth, logg))
		r.With(guard).Post("/logout", controllers.AuthLogout(deps.Auth, logg))
		if !cfg.App.IsProd() {
			r.Post("/register", controllers.AuthRegister(deps.Auth, logg))
		}
	})

	mountCollection(r, "/api/carousel", deps.Content.Carousel, guard, logg,
		controllers.CarouselPatchColumns, controllers.BindCarouselCreate, controllers.BindCarouselUpdate)
	mountCollection(r, "/api/team", deps.Content.Team, guard, logg,
		controllers.TeamPatchColumns, controllers.BindTeamCreate, controllers.BindTeamUpdate)
	mountCollection(r, "/api/faq", deps.Content.Faq, guard, logg,
		controllers.FaqPatchColumns, controllers.BindFaqCreate, controllers.BindFaqUpdate)
	mountCollection(r, "/api/values", deps.Content.Values, guard, logg,
		controllers.ValuesPatchColumns, controllers.BindValueCreate, controllers.BindValueUpdate)
	mountCollection(r, "/api/milestones", deps.Content.Milestones, guard, logg,
		controllers.MilestonesPatchColumns, controllers.BindMilestoneCreate, controllers.BindMilestoneUpdate)
	mountCollection(r, "/api/contact", deps.Content.Contact, guard, logg,
		controllers.ContactPatchColumns, controllers.BindContactCreate, controllers.BindContactUpdate)
	mountCollection(r, "/api/publicite", deps.Content.Publicite, guard, logg,
		controllers.PublicitePatchColumns, controllers.BindPubliciteCreate, controllers.BindPubliciteUpdate)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", controllers.ProductsList(deps.Products, logg))
		r.Get("/{id}", controllers.ProductsGet(deps.Products, logg))
		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", controllers.ProductsCreate(deps.Products, logg))
			r.Put("/{id}", controllers.ProductsUpdate(deps.Products, logg))
			r.Delete("/{id}", controllers.ProductsDelete(deps.Products, logg))
		})
	})

	r.Route("/api/shops", func(r chi.Router) {
		r.Get("/", controllers.ShopsList(deps.Shops, logg))
		r.Get("/{id:[0-9]+}", controllers.ShopsGet(deps.Shops, logg))
		r.Get("/by-slug/{slug}", controllers.ShopsGetBySlug(deps.Shops, logg))
		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", controllers.ShopsCreate(deps.Shops, logg))
			r.Put("/{id}", controllers.ShopsUpdate(deps.Shops, logg))
			r.Delete("/{id}", controllers.ShopsDelete(deps.Shops, logg))
			r.Route("/{id}/staff", func(r chi.Router) {
				r.Post("/", controllers.ShopsAddStaff(deps.Shops, logg))
				r.Put("/{staffID}", controllers.ShopsUpdateStaff(deps.Shops, logg))
				r.Delete("/{staffID}", controllers.ShopsRemoveStaff(deps.Shops, logg))
			})
		})
	})

	r.Route("/api/about", func(r chi.Router) {
		r.Get("/", controllers.AboutGet(deps.About, logg))
		r.With(guard).Put("/", controllers.AboutPut(deps.About, logg))
	})

	r.With(guard).Post("/api/upload", controllers.Upload(deps.Media, cfg.Uploads, logg))

	// Uploaded assets are served straight from disk under the public base
	// path they were stored with.
	uploadsFS := http.StripPrefix(cfg.Uploads.PublicBasePath+"/",
		http.FileServer(http.Dir(cfg.Uploads.Dir)))
	r.Get(cfg.Uploads.PublicBasePath+"/*", func(w http.ResponseWriter, req *http.Request) {
		uploadsFS.ServeHTTP(w, req)
	})

	return r
}

// mountCollection wires the shared ordered-collection handler set under one
// path: public reads, guarded writes, a move endpoint and a reindex repair
// endpoint.
func mountCollection[T any, PT interface {
	models.Orderable
	*T
}](
	r chi.Router,
	path string,
	svc *content.Collection[T, PT],
	guard func(http.Handler) http.Handler,
	logg *logger.Logger,
	patchColumns map[string]string,
	bindCreate func(*http.Request) (PT, error),
	bindUpdate func(*http.Request, uint) (PT, error),
) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", controllers.CollectionList(svc, logg))
		r.Get("/{id}", controllers.CollectionGet(svc, logg))
		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", controllers.CollectionCreate(svc, logg, bindCreate))
			r.Put("/{id}", controllers.CollectionUpdate(svc, logg, bindUpdate))
			r.Patch("/{id}", controllers.CollectionPatch(svc, logg, patchColumns))
			r.Delete("/{id}", controllers.CollectionDelete(svc, logg))
			r.Post("/{id}/move", controllers.CollectionMove(svc, logg))
			r.Post("/reindex", controllers.CollectionReindex(svc, logg))
		})
	})
}
