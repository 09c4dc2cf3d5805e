// Package main starts the membership portal API: configuration, logging,
// Mongo and Redis connections, the identity gateway, the session controller,
// the user flows and the HTTP server.
//
// @title        Membership Portal API
// @version      1.0
// @description  Session, registration and password-reset flows of the youth ministry membership portal.
// @BasePath     /
package main

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jovens-paroquia/membership/internal/api"
	"github.com/jovens-paroquia/membership/internal/api/handler"
	"github.com/jovens-paroquia/membership/internal/api/metrics"
	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/service"
	"github.com/jovens-paroquia/membership/internal/infrastructure/config"
	"github.com/jovens-paroquia/membership/internal/infrastructure/db/mongo"
	"github.com/jovens-paroquia/membership/internal/infrastructure/db/redis"
	"github.com/jovens-paroquia/membership/internal/infrastructure/identity"
	"github.com/jovens-paroquia/membership/internal/infrastructure/navigation"
	"github.com/jovens-paroquia/membership/internal/infrastructure/queue"
	"github.com/jovens-paroquia/membership/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "membership",
		AppID:   cfg.AppID,
	})

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect mongodb")
	}
	profiles := mongo.NewProfileRepository(db)
	if err := profiles.EnsureIndexes(ctx, domain.ProfilesPath(cfg.AppID)); err != nil {
		log.Warn().Err(err).Msg("ensure profile indexes failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	sealKey, err := cfg.SessionSealKey()
	if errors.Is(err, config.ErrNoSealKey) {
		log.Warn().Msg("SESSION_SEAL_KEY not set, sessions will not survive a restart")
		_, err = rand.Read(sealKey[:])
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid session seal key")
	}

	// --- Event loop and view ---
	loop := queue.NewLoop(logger.Component("loop"))
	loop.Start(ctx)

	pages := navigation.NewRouter(domain.PageLoading, logger.Component("navigation"),
		navigation.WithHook(func(_, to domain.Destination) {
			metrics.NavigationsTotal.WithLabelValues(string(to)).Inc()
		}),
	)

	// --- Identity ---
	client := identity.NewClient(identity.Config{
		BaseURL:  cfg.Identity.BaseURL,
		TokenURL: cfg.Identity.TokenURL,
		APIKey:   cfg.Identity.APIKey,
		Timeout:  cfg.Identity.Timeout,
	})
	gateway := identity.NewGateway(client, redis.NewSessionStore(rdb, cfg.AppID, sealKey), loop, logger.Component("identity"))
	if err := gateway.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("could not restore previous session")
	}
	unsubscribeMetrics := gateway.OnUserChanged(countUserChanged)
	defer unsubscribeMetrics()

	bootstrap := identity.FirstCredential{
		identity.NewStaticCredential(cfg.InitialAuthToken),
		redis.NewBootstrapCredential(rdb, cfg.AppID),
	}

	// --- Services ---
	session := service.NewSession()
	controller := service.NewSessionController(session, gateway, pages, loop, bootstrap, logger.Component("session"))
	controller.Initialize(ctx)
	defer controller.Close()

	forms := handler.NewValidator()
	registration := service.NewRegistrationFlow(session, gateway, profiles, forms, cfg.AppID, logger.Component("registration"))
	passwordReset := service.NewPasswordResetFlow(gateway, logger.Component("password_reset"))
	profileReader := service.NewProfileReader(profiles, cfg.AppID)

	// --- HTTP ---
	router := api.NewRouter(api.Deps{
		Session:       controller,
		Registration:  registration,
		PasswordReset: passwordReset,
		Profiles:      profileReader,
		Pages:         pages,
		Navigator:     pages,
		Scheduler:     loop,
		Validator:     forms,
		RedirectDelay: cfg.RegistrationRedirectDelay,
		Checks: map[string]handler.Check{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
		Log: log,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	<-loop.Done()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}

	log.Info().Msg("server exited cleanly")
}

func countUserChanged(user *domain.Account) {
	state := "signed_out"
	if user != nil {
		state = "signed_in"
	}
	metrics.UserChangedTotal.WithLabelValues(state).Inc()
}
