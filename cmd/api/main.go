package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/KSunShin4/EcoMart/api/routes"
	"github.com/KSunShin4/EcoMart/internal/auth"
	"github.com/KSunShin4/EcoMart/internal/cart"
	ordersvc "github.com/KSunShin4/EcoMart/internal/orders"
	productsvc "github.com/KSunShin4/EcoMart/internal/products"
	"github.com/KSunShin4/EcoMart/internal/search"
	usersvc "github.com/KSunShin4/EcoMart/internal/users"
	"github.com/KSunShin4/EcoMart/internal/wishlist"
	"github.com/KSunShin4/EcoMart/pkg/config"
	"github.com/KSunShin4/EcoMart/pkg/db"
	"github.com/KSunShin4/EcoMart/pkg/logger"
	"github.com/KSunShin4/EcoMart/pkg/metrics"
	"github.com/KSunShin4/EcoMart/pkg/migrate"
	"github.com/KSunShin4/EcoMart/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	svcs, err := buildServices(cfg, dbClient, redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	addr := listenAddr(cfg)

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, dbClient, redisClient, httpMetrics, metricsHandler, svcs),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		shutdownErr := server.Shutdown(shutdownCtx)
		if serveErr := <-errCh; serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			shutdownErr = multierr.Append(shutdownErr, serveErr)
		}
		if shutdownErr != nil {
			logg.Error(ctx, "shutdown finished with errors", shutdownErr)
			os.Exit(1)
		}
	}
}

// listenAddr prefers the platform-injected PORT over the configured one.
func listenAddr(cfg *config.Config) string {
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	return ":" + port
}

func buildServices(cfg *config.Config, dbClient *db.Client, redisClient *redis.Client, logg *logger.Logger) (routes.Services, error) {
	productService, err := productsvc.NewService(productsvc.NewRepository(dbClient.DB()))
	if err != nil {
		return routes.Services{}, err
	}

	searchService, err := search.NewService(productService, search.NewRepository(dbClient.DB()), cfg.Search, logg)
	if err != nil {
		return routes.Services{}, err
	}

	cartStore, err := cart.NewStore(redisClient)
	if err != nil {
		return routes.Services{}, err
	}
	cartService, err := cart.NewService(cartStore, productService)
	if err != nil {
		return routes.Services{}, err
	}

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		WishlistRepo: wishlist.NewRepository(dbClient.DB()),
		Products:     productService,
	})
	if err != nil {
		return routes.Services{}, err
	}

	orderService, err := ordersvc.NewService(ordersvc.NewRepository(dbClient.DB()), cartService)
	if err != nil {
		return routes.Services{}, err
	}

	userService, err := usersvc.NewService(usersvc.NewRepository(dbClient.DB()))
	if err != nil {
		return routes.Services{}, err
	}

	otpStore, err := auth.NewOTPStore(redisClient)
	if err != nil {
		return routes.Services{}, err
	}
	authService, err := auth.NewService(auth.ServiceParams{
		OTPStore:  otpStore,
		Users:     usersvc.NewRepository(dbClient.DB()),
		JWTConfig: cfg.JWT,
		OTPConfig: cfg.OTP,
		RateLimit: cfg.AuthRateLimit,
		Logger:    logg,
	})
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:     authService,
		Products: productService,
		Search:   searchService,
		Cart:     cartService,
		Wishlist: wishlistService,
		Orders:   orderService,
		Users:    userService,
	}, nil
}
