package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/dashboard"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/prescription"
	"github.com/hms/hms/internal/platform/fixtures"
	"github.com/hms/hms/internal/platform/memstore"
	"github.com/hms/hms/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a fixtures data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			seed, _ := cmd.Flags().GetInt64("seed")

			data := fixtures.Generate(fixtures.DefaultConfig(), seed)
			if err := fixtures.WriteDir(dir, data); err != nil {
				return err
			}
			fmt.Printf("Wrote %d patients, %d doctors, %d appointments, %d bills, %d prescriptions to %s\n",
				len(data.Patients), len(data.Doctors), len(data.Appointments),
				len(data.Bills), len(data.Prescriptions), dir)
			return nil
		},
	}
	cmd.Flags().String("dir", "./fixtures", "Directory to write the data set to")
	cmd.Flags().Int64("seed", 1, "Random seed, same seed yields the same data")
	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Seed data
	data, err := fixtures.Load(cfg.FixturesDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load fixtures")
	}
	logger.Info().
		Int("patients", len(data.Patients)).
		Int("doctors", len(data.Doctors)).
		Int("appointments", len(data.Appointments)).
		Int("bills", len(data.Bills)).
		Int("prescriptions", len(data.Prescriptions)).
		Msg("fixtures loaded")

	// Stores
	opts := memstore.Options{Latency: cfg.SimulatedLatency()}
	patientRepo := patient.NewMemRepo(opts, data.Patients)
	doctorRepo := doctor.NewMemRepo(opts, data.Doctors)
	appointmentRepo := appointment.NewMemRepo(opts, data.Appointments)
	billRepo := billing.NewMemRepo(opts, data.Bills)
	prescriptionRepo := prescription.NewMemRepo(opts, data.Prescriptions)

	// Services
	patientSvc := patient.NewService(patientRepo)
	doctorSvc := doctor.NewService(doctorRepo)
	appointmentSvc := appointment.NewService(appointmentRepo)
	billingSvc := billing.NewService(billRepo)
	prescriptionSvc := prescription.NewService(prescriptionRepo)
	dashboardSvc := dashboard.NewService(patientRepo, doctorRepo, appointmentRepo, billRepo, prescriptionRepo, nil)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Routes
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	doctor.NewHandler(doctorSvc).RegisterRoutes(apiV1)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(apiV1)
	billing.NewHandler(billingSvc).RegisterRoutes(apiV1)
	prescription.NewHandler(prescriptionSvc).RegisterRoutes(apiV1)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(apiV1)

	// Start server
	addr := ":" + cfg.Port
	go func() {
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
