package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/jorik41/entsoe-collector/internal/area"
	"github.com/jorik41/entsoe-collector/internal/config"
	"github.com/jorik41/entsoe-collector/internal/coordinator"
	"github.com/jorik41/entsoe-collector/internal/entsoe"
	"github.com/jorik41/entsoe-collector/internal/scheduler"
	"github.com/jorik41/entsoe-collector/internal/web"
)

const (
	// initialRefreshTimeout bounds the startup warm-up of a single target.
	// Total-Europe targets walk every bidding zone behind a shared rate
	// limiter, so this is generous on purpose.
	initialRefreshTimeout = 15 * time.Minute

	shutdownTimeout = 10 * time.Second
)

// Command entsoe-collector polls the ENTSO-E transparency platform and
// serves the collected series over HTTP.
//
// The collector supports:
//   - Day-ahead electricity prices with VAT-aware market metadata
//   - Generation per production type, realised and forecast
//   - Load forecasts over day, week, month and year horizons
//   - Total-Europe aggregates summed across all bidding zones
//   - Prometheus metrics
//
// Usage:
//
//	entsoe-collector [flags]
//
// The flags are:
//
//	-config string
//	      path to config file (default "config.yaml")
//	-port int
//	      HTTP server port, overriding the config file
func main() {
	cliCfg := parseFlags()

	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	appConfig, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cliCfg.Port != 0 {
		appConfig.Server.Port = cliCfg.Port
	}

	logger := newLogger(appConfig.Logging)

	logger.WithFields(logrus.Fields{
		"area": appConfig.Collector.Area,
		"port": appConfig.Server.Port,
	}).Info("Starting collector")

	registry := prometheus.NewRegistry()

	client, err := entsoe.NewClient(appConfig.API.Key, entsoe.Options{
		Endpoints:    appConfig.API.Endpoints,
		RequestDelay: appConfig.API.RequestDelay,
		Logger:       logger,
		Metrics:      entsoe.NewMetrics(registry),
	})
	if err != nil {
		logger.Fatalf("Failed to create platform client: %v", err)
	}

	targets, err := buildTargets(appConfig, client, logger, coordinator.NewMetrics(registry))
	if err != nil {
		logger.Fatalf("Failed to build targets: %v", err)
	}

	// Create a context that will be canceled on shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Warm every target before serving traffic. Coming up without data
	// means every endpoint would answer 503 until the first cycle lands.
	for _, target := range targets {
		refreshCtx, cancelRefresh := context.WithTimeout(ctx, initialRefreshTimeout)
		err := target.Refresh(refreshCtx)
		cancelRefresh()
		if err != nil {
			logger.Fatalf("Initial refresh of %s failed: %v", target.Key(), err)
		}
		logger.WithField("target", target.Key()).Info("Initial refresh complete")
	}

	sched := scheduler.NewScheduler(ctx, logger)
	for _, target := range targets {
		if err := sched.Register(target); err != nil {
			logger.Fatalf("Failed to schedule %s: %v", target.Key(), err)
		}
	}
	sched.Start()

	serverConfig := web.ServerConfig{
		Host:           appConfig.Server.Host,
		Port:           appConfig.Server.Port,
		CacheSize:      appConfig.Server.CacheSize,
		CacheTTL:       appConfig.Server.CacheTTL,
		RateLimit:      appConfig.Server.RateLimit,
		RateLimitBurst: appConfig.Server.RateLimitBurst,
	}

	srv, err := web.NewServer(serverConfig, logger, registry, targets)
	if err != nil {
		logger.Fatalf("Failed to setup server: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	// Handle shutdown gracefully
	go handleShutdown(ctx, cancel, sched, srv, logger)

	if err := <-errChan; err != nil {
		logger.Fatalf("Service error: %v", err)
	}
	logger.Info("Shutdown complete")
}

type cliConfig struct {
	ConfigPath string
	Port       int
}

func parseFlags() *cliConfig {
	cfg := &cliConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "config.yaml", "Path to the configuration file")
	flag.IntVar(&cfg.Port, "port", 0, "HTTP server port, overriding the configuration file")

	flag.Parse()

	return cfg
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// buildTargets assembles the coordinators selected by the collector
// configuration, primary-area targets first, Total-Europe aggregates after.
func buildTargets(appConfig *config.Config, client *entsoe.Client, logger *logrus.Logger, metrics *coordinator.Metrics) ([]coordinator.Target, error) {
	primary, err := area.ResolveMarket(appConfig.Collector.Area)
	if err != nil {
		return nil, err
	}
	europe, err := area.Resolve(area.TotalEuropeKey)
	if err != nil {
		return nil, err
	}

	base := func(a area.Area) coordinator.Config {
		return coordinator.Config{
			Querier: client,
			Area:    a,
			Logger:  logger,
			Metrics: metrics,
		}
	}

	var targets []coordinator.Target

	c := appConfig.Collector
	primaryLoads := map[string]bool{
		coordinator.HorizonDayAhead.Name:   c.Load,
		coordinator.HorizonWeekAhead.Name:  c.LoadWeekAhead,
		coordinator.HorizonMonthAhead.Name: c.LoadMonthAhead,
		coordinator.HorizonYearAhead.Name:  c.LoadYearAhead,
	}
	europeLoads := map[string]bool{
		coordinator.HorizonDayAhead.Name:   c.LoadEurope,
		coordinator.HorizonWeekAhead.Name:  c.LoadWeekAheadEurope,
		coordinator.HorizonMonthAhead.Name: c.LoadMonthAheadEurope,
		coordinator.HorizonYearAhead.Name:  c.LoadYearAheadEurope,
	}
	addLoads := func(a area.Area, enabled map[string]bool) {
		for _, h := range coordinator.LoadHorizons() {
			if enabled[h.Name] {
				targets = append(targets, coordinator.NewLoadCoordinator(base(a), h))
			}
		}
	}

	if c.Prices {
		targets = append(targets, coordinator.NewPriceCoordinator(base(primary)))
	}
	if c.Generation {
		targets = append(targets, coordinator.NewGenerationCoordinator(base(primary)))
	}
	addLoads(primary, primaryLoads)
	if c.GenerationForecast {
		targets = append(targets, coordinator.NewGenerationForecastCoordinator(base(primary)))
	}
	if c.WindSolarForecast {
		targets = append(targets, coordinator.NewWindSolarCoordinator(base(primary)))
	}

	if c.GenerationEurope {
		targets = append(targets, coordinator.NewGenerationCoordinator(base(europe)))
	}
	addLoads(europe, europeLoads)
	if c.GenerationForecastEurope {
		targets = append(targets, coordinator.NewGenerationForecastCoordinator(base(europe)))
	}
	if c.WindSolarForecastEurope {
		targets = append(targets, coordinator.NewWindSolarCoordinator(base(europe)))
	}

	if len(targets) == 0 {
		return nil, errors.New("no datasets enabled in collector configuration")
	}
	return targets, nil
}

// Handle graceful shutdown
func handleShutdown(ctx context.Context, cancel context.CancelFunc, sched *scheduler.Scheduler, srv *web.Server, logger *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		logger.Println("Context canceled, initiating shutdown")
	case sig := <-sigChan:
		logger.Printf("Received signal %v, initiating shutdown", sig)
	}

	// Cancel the root context first so in-flight refreshes abort instead
	// of holding up the scheduler stop.
	cancel()

	logger.Println("Stopping scheduler...")
	sched.Stop()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("HTTP shutdown error: %v", err)
	}
	logger.Println("Server stopped")
}
