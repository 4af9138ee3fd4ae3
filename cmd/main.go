package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/config"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/handler"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/health"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/infra/alertpublisher"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/infra/cyclerecorder"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/infra/mapimage"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/observability/metrics"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/observability/middleware"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/classifier"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/dashboard"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/notification"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/reading"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/refresh"
	"github.com/KasumiMercury/campus-crowd-dashboard/internal/service/registry"
)

// Version is set via ldflags at build time
var Version = "dev"

var errNoCycleYet = errors.New("no dashboard cycle completed yet")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// .env is optional
	_ = godotenv.Load()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	cycleMetrics, err := metrics.NewCycleMetrics()
	if err != nil {
		slog.Error("failed to initialize cycle metrics", slog.String("error", err.Error()))
		return 1
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	zoneGauges, err := metrics.NewZoneGauges(promRegistry)
	if err != nil {
		slog.Error("failed to register zone gauges", slog.String("error", err.Error()))
		return 1
	}

	recorder := cyclerecorder.NewRecorder(ctx, cyclerecorder.LoadConfig())
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close cycle recorder", slog.String("error", err.Error()))
		}
	}()

	publisher, err := alertpublisher.NewPublisher(ctx, alertpublisher.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize alert publisher", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Warn("failed to close alert publisher", slog.String("error", err.Error()))
		}
	}()

	history, redisClient, err := initHistory(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize trend history", slog.String("error", err.Error()))
		return 1
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()
	}

	mapImage, err := loadMap(cfg.Map)
	if err != nil {
		slog.Error("failed to load map image", slog.String("error", err.Error()))
		return 1
	}

	cls, err := classifier.NewClassifier(cfg.Classifier.High, cfg.Classifier.Medium)
	if err != nil {
		slog.Error("failed to initialize classifier", slog.String("error", err.Error()))
		return 1
	}

	notifications := notification.NewLog(cfg.Dashboard.LogCapacity, cfg.Dashboard.NotificationsEnabled)
	state := dashboard.NewState(history, notifications, dashboard.Settings{
		NotificationsEnabled: cfg.Dashboard.NotificationsEnabled,
		Freeze:               cfg.Dashboard.Freeze,
		AutoRefresh:          cfg.Dashboard.AutoRefresh,
		RefreshInterval:      cfg.Dashboard.RefreshInterval,
	})

	// Trends start fresh with every session, including a shared redis history.
	if err := state.ResetHistory(ctx); err != nil {
		slog.Error("failed to reset trend history", slog.String("error", err.Error()))
		return 1
	}

	svc := dashboard.NewService(
		registry.New(cfg.Zones),
		reading.NewSource(cfg.Reading.Min, cfg.Reading.Max, cfg.Reading.Seed),
		cls,
		state,
		dashboard.MapSize{Width: mapImage.Width(), Height: mapImage.Height()},
		dashboard.WithCycleMetrics(cycleMetrics),
		dashboard.WithZoneGauges(zoneGauges),
		dashboard.WithRecorder(recorder),
		dashboard.WithPublisher(publisher),
		dashboard.WithFeedSize(cfg.Dashboard.FeedSize),
	)

	if _, err := svc.RunCycle(ctx); err != nil {
		slog.Error("initial dashboard cycle failed", slog.String("error", err.Error()))
		return 1
	}

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      moduleName,
		TracerName:  "github.com/KasumiMercury/campus-crowd-dashboard/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(Version,
		health.WithRedis(redisClient),
		health.WithProbe("dashboard", func(context.Context) error {
			if state.Latest() == nil {
				return errNoCycleYet
			}
			return nil
		}),
	)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())
	r.GET("/metrics", gin.WrapH(zoneGauges.Handler()))

	handler.RegisterRoutes(r, cfg.Auth, handler.Handlers{
		Dashboard: handler.NewDashboardHandler(svc),
		Settings:  handler.NewSettingsHandler(state),
		Map:       handler.NewMapHandler(svc, mapImage),
		Info:      handler.NewInfoHandler(Version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("zones", len(cfg.Zones)),
			slog.Int("threshold_high", cfg.Classifier.High),
			slog.Int("threshold_medium", cfg.Classifier.Medium),
			slog.String("history_backend", string(cfg.History.Backend)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return refresh.NewRunner(svc, state).Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}

	if err := recorder.Flush(context.Background()); err != nil {
		slog.Warn("failed to flush cycle recorder", slog.String("error", err.Error()))
	}

	slog.Info("server exited properly")
	return 0
}

func loadMap(cfg *config.MapConfig) (*mapimage.Map, error) {
	if cfg.ImagePath == "" {
		slog.Info("no map image configured, using blank background",
			slog.Int("width", cfg.Width),
			slog.Int("height", cfg.Height),
		)
		return mapimage.Blank(cfg.Width, cfg.Height)
	}

	m, err := mapimage.Load(cfg.ImagePath)
	if err != nil {
		return nil, err
	}

	slog.Info("map image loaded",
		slog.String("path", cfg.ImagePath),
		slog.String("format", m.Format()),
		slog.Int("width", m.Width()),
		slog.Int("height", m.Height()),
	)
	return m, nil
}
