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

	"github.com/medidash/medidash/internal/config"
	"github.com/medidash/medidash/internal/domain/appointment"
	"github.com/medidash/medidash/internal/domain/department"
	"github.com/medidash/medidash/internal/domain/doctor"
	"github.com/medidash/medidash/internal/domain/inventory"
	"github.com/medidash/medidash/internal/domain/labreport"
	"github.com/medidash/medidash/internal/domain/leave"
	"github.com/medidash/medidash/internal/domain/notification"
	"github.com/medidash/medidash/internal/domain/patient"
	"github.com/medidash/medidash/internal/domain/prescription"
	"github.com/medidash/medidash/internal/domain/settings"
	"github.com/medidash/medidash/internal/platform/auth"
	"github.com/medidash/medidash/internal/platform/db"
	"github.com/medidash/medidash/internal/platform/middleware"
	"github.com/medidash/medidash/internal/reporting"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medidash-server",
		Short: "MediDash hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MediDash API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health and login stay outside the authenticated group.
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))
	auth.NewLoginHandler(cfg.JWTSecret).RegisterRoutes(e)

	api := e.Group("/api")
	if cfg.IsDev() {
		api.Use(auth.DevAuthMiddleware())
	} else {
		api.Use(auth.JWTMiddleware(cfg.JWTSecret))
	}

	// Repositories
	doctorRepo := doctor.NewRepo(pool)
	patientRepo := patient.NewRepo(pool)
	departmentRepo := department.NewRepo(pool)
	appointmentRepo := appointment.NewRepo(pool)
	labReportRepo := labreport.NewRepo(pool)
	prescriptionRepo := prescription.NewRepo(pool)
	inventoryRepo := inventory.NewRepo(pool)
	notificationRepo := notification.NewRepo(pool)
	leaveRepo := leave.NewRepo(pool)
	settingsRepo := settings.NewRepo(pool)

	// Services
	notificationSvc := notification.NewService(notificationRepo)
	doctorSvc := doctor.NewService(doctorRepo)
	patientSvc := patient.NewService(patientRepo)
	departmentSvc := department.NewService(departmentRepo)
	appointmentSvc := appointment.NewService(appointmentRepo, patientRepo, doctorRepo, notificationSvc, pool)
	labReportSvc := labreport.NewService(labReportRepo)
	prescriptionSvc := prescription.NewService(prescriptionRepo, inventoryRepo, notificationSvc, pool)
	inventorySvc := inventory.NewService(inventoryRepo)
	leaveSvc := leave.NewService(leaveRepo, notificationSvc)
	settingsSvc := settings.NewService(settingsRepo)

	// Handlers
	doctor.NewHandler(doctorSvc).RegisterRoutes(api)
	patient.NewHandler(patientSvc).RegisterRoutes(api)
	department.NewHandler(departmentSvc).RegisterRoutes(api)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(api)
	labreport.NewHandler(labReportSvc).RegisterRoutes(api)
	prescription.NewHandler(prescriptionSvc).RegisterRoutes(api)
	inventory.NewHandler(inventorySvc).RegisterRoutes(api)
	notification.NewHandler(notificationSvc).RegisterRoutes(api)
	leave.NewHandler(leaveSvc).RegisterRoutes(api)
	settings.NewHandler(settingsSvc).RegisterRoutes(api)
	reporting.NewHandler(doctorRepo, patientRepo, appointmentRepo, labReportRepo,
		prescriptionRepo, departmentRepo, cfg.TotalBeds).RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
