package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KSunShin4/EcoMart/api/controllers"
	"github.com/KSunShin4/EcoMart/api/middleware"
	authsvc "github.com/KSunShin4/EcoMart/internal/auth"
	cartsvc "github.com/KSunShin4/EcoMart/internal/cart"
	ordersvc "github.com/KSunShin4/EcoMart/internal/orders"
	productsvc "github.com/KSunShin4/EcoMart/internal/products"
	searchsvc "github.com/KSunShin4/EcoMart/internal/search"
	usersvc "github.com/KSunShin4/EcoMart/internal/users"
	wishlistsvc "github.com/KSunShin4/EcoMart/internal/wishlist"
	"github.com/KSunShin4/EcoMart/pkg/config"
	"github.com/KSunShin4/EcoMart/pkg/db"
	"github.com/KSunShin4/EcoMart/pkg/logger"
	"github.com/KSunShin4/EcoMart/pkg/metrics"
	"github.com/KSunShin4/EcoMart/pkg/redis"
)

// Services groups everything the router mounts.
type Services struct {
	Auth     authsvc.Service
	Products productsvc.Service
	Search   searchsvc.Service
	Cart     cartsvc.Service
	Wishlist wishlistsvc.Service
	Orders   ordersvc.Service
	Users    usersvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/otp/request", controllers.AuthRequestOTP(svcs.Auth, logg))
		r.Post("/otp/verify", controllers.AuthVerifyOTP(svcs.Auth, logg))
	})

	// Catalog browsing and search stay open; a bearer token only enriches
	// them with per-user history.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(cfg.JWT, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(svcs.Products, logg))
			r.Get("/featured", controllers.FeaturedProducts(svcs.Products, logg))
			r.Get("/flash-sale", controllers.FlashSaleProducts(svcs.Products, logg))
			r.Get("/{productId}", controllers.ProductDetail(svcs.Products, logg))
			r.Get("/{productId}/reviews", controllers.ProductReviews(svcs.Products, logg))
		})
		r.Get("/categories", controllers.CategoryList(svcs.Products, logg))
		r.Get("/banners", controllers.BannerList(svcs.Products, logg))

		r.Route("/search", func(r chi.Router) {
			r.Get("/", controllers.Search(svcs.Search, logg))
			r.Get("/suggest", controllers.SearchSuggest(svcs.Search, logg))
		})
	})

	r.Route("/api/v1/me", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/", controllers.UserProfile(svcs.Users, logg))
		r.Put("/", controllers.UserUpdateProfile(svcs.Users, logg))

		r.Route("/addresses", func(r chi.Router) {
			r.Get("/", controllers.AddressList(svcs.Users, logg))
			r.Post("/", controllers.AddressCreate(svcs.Users, logg))
			r.Put("/{addressId}", controllers.AddressUpdate(svcs.Users, logg))
			r.Delete("/{addressId}", controllers.AddressDelete(svcs.Users, logg))
		})

		r.Route("/search-history", func(r chi.Router) {
			r.Get("/", controllers.SearchHistory(svcs.Search, logg))
			r.Delete("/", controllers.ClearSearchHistory(svcs.Search, logg))
			r.Delete("/{entryId}", controllers.DeleteSearchHistory(svcs.Search, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(svcs.Cart, logg))
			r.Post("/items", controllers.CartAddItem(svcs.Cart, logg))
			r.Put("/items/{productId}", controllers.CartUpdateItem(svcs.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(svcs.Cart, logg))
			r.Delete("/", controllers.CartClear(svcs.Cart, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistFetch(svcs.Wishlist, logg))
			r.Post("/", controllers.WishlistAdd(svcs.Wishlist, logg))
			r.Get("/{productId}", controllers.WishlistContains(svcs.Wishlist, logg))
			r.Delete("/{productId}", controllers.WishlistRemove(svcs.Wishlist, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrderList(svcs.Orders, logg))
			r.Post("/checkout", controllers.Checkout(svcs.Orders, svcs.Cart, logg))
			r.Get("/{orderId}", controllers.OrderDetail(svcs.Orders, logg))
			r.Post("/{orderId}/cancel", controllers.OrderCancel(svcs.Orders, logg))
		})
	})

	return r
}
