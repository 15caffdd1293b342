package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/lumengallery/lumen-api/internal/config"
	"github.com/lumengallery/lumen-api/internal/domain/assets"
	"github.com/lumengallery/lumen-api/internal/domain/catalog"
	"github.com/lumengallery/lumen-api/internal/domain/design"
	"github.com/lumengallery/lumen-api/internal/domain/exhibit"
	"github.com/lumengallery/lumen-api/internal/domain/links"
	"github.com/lumengallery/lumen-api/internal/domain/wall"
	"github.com/lumengallery/lumen-api/internal/middleware"
	"github.com/lumengallery/lumen-api/internal/pkg/database"
	"github.com/lumengallery/lumen-api/internal/pkg/imagecdn"
	"github.com/lumengallery/lumen-api/internal/pkg/imaging"
	"github.com/lumengallery/lumen-api/internal/pkg/logger"
	pkgresponse "github.com/lumengallery/lumen-api/internal/pkg/response"
	"github.com/lumengallery/lumen-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Lumen Gallery API")

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	// Image delivery: missing CDN keys are a warning, never a crash
	resolver := imagecdn.NewResolver(cfg.CloudinaryCloudName, "/assets")
	resolver.WarnIfUnconfigured(cfg.MissingKeys())

	assetStore, err := storage.New(storage.Config{
		Dir:       cfg.AssetsDir,
		Bucket:    cfg.AssetsBucket,
		AccountID: cfg.AssetsAccountID,
		AccessKey: cfg.AssetsAccessKey,
		SecretKey: cfg.AssetsSecretKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create asset store")
	}

	downscaler := imaging.NewDownscaler(cfg.MaxAssetDimension)

	// ---------- Services ----------
	catalogService := catalog.NewService(catalog.Photos, cfg.DefaultEtsyURL)
	wallService := wall.NewService(resolver)

	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute

	designStore := design.NewStore(redis, sessionTTL)
	go designStore.StartCleanup(5 * time.Minute)
	defer designStore.Stop()

	designHub := design.NewHub(redis)
	go designHub.Run()
	defer designHub.Shutdown()

	designService := design.NewService(designStore, catalogService, wallService, designHub)

	exhibitService := exhibit.NewService(catalogService, exhibit.NewClock(), sessionTTL)
	go exhibitService.StartCleanup(5 * time.Minute)
	defer exhibitService.Stop()

	// ---------- Handlers ----------
	catalogHandler := catalog.NewHandler(catalogService, resolver)
	wallHandler := wall.NewHandler(wallService, catalogService)
	designHandler := design.NewHandler(designService, designHub)
	exhibitHandler := exhibit.NewHandler(exhibitService, catalogService, resolver)
	linksHandler := links.NewHandler(cfg.DefaultEtsyURL)
	assetsHandler := assets.NewHandler(assetStore, downscaler)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Origin asset delivery sits outside the API prefix so local photo
	// paths resolve as-is
	r.Mount("/assets", assetsHandler.Routes())

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/photos", catalogHandler.Routes())
		r.Mount("/wall", wallHandler.Routes())
		r.Mount("/design", designHandler.Routes())
		r.Mount("/exhibit", exhibitHandler.Routes())
		r.Mount("/links", linksHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
