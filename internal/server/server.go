package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"fleettrack/internal/config"
	"fleettrack/internal/database"
	"fleettrack/internal/handlers"
	"fleettrack/internal/middleware"
	"fleettrack/internal/repositories"
	"fleettrack/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Server is the fleet dashboard HTTP API
type Server struct {
	cfg     *config.Config
	echo    *echo.Echo
	logger  *zap.Logger
	limiter *middleware.RateLimiter
}

// New wires repositories, services and handlers on top of db and registers
// every route. Metrics are exposed from registry at /metrics.
func New(cfg *config.Config, db *database.DB, logger *zap.Logger, registry *prometheus.Registry) *Server {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(logger, registry).Handle

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		ExposeHeaders: []string{
			middleware.TraceIDHeader,
			echo.HeaderContentDisposition,
		},
	}))
	e.Use(limiter.Middleware())

	customerRepo := repositories.NewCustomerRepository(db.DB)
	vehicleRepo := repositories.NewVehicleRepository(db.DB)
	alertRepo := repositories.NewAlertRepository(db.DB)
	telemetryRepo := repositories.NewTelemetryRepository(db.DB)
	reportRepo := repositories.NewReportRepository(db.DB)
	activityRepo := repositories.NewActivityRepository(db.DB)

	fleetLogger := services.NewFleetLogger(logger)
	metrics := services.NewPrometheusMetrics(registry)
	breaker := services.WithCircuitBreaker(services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()))
	limits := services.PageLimits{Default: cfg.Fleet.DefaultPageSize, Max: cfg.Fleet.MaxPageSize}

	customerHandler := handlers.NewCustomerHandler(
		services.NewCustomerDirectoryService(customerRepo, fleetLogger, metrics, limits, breaker),
		fleetLogger,
	)
	vehicleHandler := handlers.NewVehicleHandler(
		services.NewVehicleFleetService(vehicleRepo, fleetLogger, metrics, limits, breaker),
		fleetLogger,
	)
	monitoringHandler := handlers.NewMonitoringHandler(
		services.NewMonitoringService(alertRepo, telemetryRepo, vehicleRepo, fleetLogger, metrics, breaker),
		fleetLogger,
	)
	reportHandler := handlers.NewReportHandler(services.NewReportService(reportRepo, fleetLogger), fleetLogger)
	dashboardHandler := handlers.NewDashboardHandler(
		services.NewDashboardService(customerRepo, vehicleRepo, alertRepo, activityRepo),
		fleetLogger,
	)

	e.GET("/health", handlers.NewHealthCheckHandler(db).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")

	customers := api.Group("/customers")
	customers.GET("", customerHandler.ListCustomers)
	customers.GET("/stats", customerHandler.CustomerStats)
	customers.GET("/export", customerHandler.ExportCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)

	vehicles := api.Group("/vehicles")
	vehicles.GET("", vehicleHandler.ListVehicles)
	vehicles.GET("/stats", vehicleHandler.VehicleStats)
	vehicles.GET("/export", vehicleHandler.ExportVehicles)
	vehicles.GET("/:id", vehicleHandler.GetVehicle)

	monitoring := api.Group("/monitoring")
	monitoring.GET("/alerts", monitoringHandler.ListAlerts)
	monitoring.GET("/locations", monitoringHandler.Locations)
	monitoring.GET("/performance", monitoringHandler.Performance)
	monitoring.GET("/fuel-efficiency", monitoringHandler.FuelEfficiency)
	monitoring.GET("/status-distribution", monitoringHandler.StatusDistribution)

	reports := api.Group("/reports")
	reports.GET("/monthly", reportHandler.MonthlyMetrics)
	reports.GET("/fuel-trends", reportHandler.FuelTrends)
	reports.GET("/catalog", reportHandler.Catalog)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/overview", dashboardHandler.Overview)
	dashboard.GET("/activity", dashboardHandler.RecentActivity)

	if cfg.IsDevelopment() {
		seeder := services.NewFleetSeeder(
			services.NewFleetGenerator(uint64(time.Now().UnixNano())),
			customerRepo,
			vehicleRepo,
			db,
			fleetLogger,
		)
		devHandler := handlers.NewDevHandler(seeder, fleetLogger)
		api.POST("/dev/generate", devHandler.GenerateFleetData)
	}

	return &Server{
		cfg:     cfg,
		echo:    e,
		logger:  logger,
		limiter: limiter,
	}
}

// Handler exposes the router, mainly for in-process tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.echo.Listener = ln

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.limiter.Run(gctx)
		return nil
	})

	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("address", ln.Addr().String()))
		if err := s.echo.Start(ln.Addr().String()); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down http server")
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
