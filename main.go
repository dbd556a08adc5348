package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"mortgage-api/config"
	httpLayer "mortgage-api/http"
	"mortgage-api/metrics"
	"mortgage-api/repository"
	"mortgage-api/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("unknown log level %q, using info", cfg.LogLevel)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		defer redisCache.Close()
		cache = redisCache
		log.WithField("addr", cfg.RedisAddr).Info("using redis result cache")
	} else {
		cache = repository.NewMockCache()
	}

	mortgageService := service.NewMortgageService(cache, log)
	mortgageHandler := httpLayer.NewMortgageHandler(mortgageService, log)

	scheduleService := service.NewScheduleService(mortgageService)
	scheduleHandler := httpLayer.NewScheduleHandler(scheduleService, log)

	termService := service.NewTermService(mortgageService)
	termHandler := httpLayer.NewTermHandler(termService, log)

	healthHandler := httpLayer.NewHealthHandler()

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/api/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(mortgageHandler.Calculate),
		),
	)

	mux.Handle(
		"/api/amortization-schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.Schedule),
		),
	)

	mux.Handle(
		"/api/compare-terms",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(termHandler.CompareTerms),
		),
	)

	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/metrics", metrics.Handler())

	handler := httpLayer.RequestIDMiddleware(
		httpLayer.LoggingMiddleware(log,
			httpLayer.CORSMiddleware(cfg.CORSAllowedOrigins,
				metrics.InstrumentHandler(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("mortgage API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("error starting server")
		return
	case <-quit:
		log.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during server shutdown")
	}

	log.Info("server exited")
}
