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

	"github.com/dentaldesk/dentaldesk/internal/config"
	"github.com/dentaldesk/dentaldesk/internal/domain/appointment"
	"github.com/dentaldesk/dentaldesk/internal/domain/billing"
	"github.com/dentaldesk/dentaldesk/internal/domain/catalog"
	"github.com/dentaldesk/dentaldesk/internal/domain/expense"
	"github.com/dentaldesk/dentaldesk/internal/domain/inventory"
	"github.com/dentaldesk/dentaldesk/internal/domain/labcase"
	"github.com/dentaldesk/dentaldesk/internal/domain/patient"
	"github.com/dentaldesk/dentaldesk/internal/domain/prescription"
	"github.com/dentaldesk/dentaldesk/internal/domain/treatment"
	"github.com/dentaldesk/dentaldesk/internal/platform/auth"
	"github.com/dentaldesk/dentaldesk/internal/platform/db"
	"github.com/dentaldesk/dentaldesk/internal/platform/middleware"
	"github.com/dentaldesk/dentaldesk/internal/platform/notification"
	"github.com/dentaldesk/dentaldesk/internal/platform/reporting"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Dental clinic management API server",
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
		Short: "Start the clinic API server",
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

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default procedure catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			svc := treatment.NewService(treatment.NewProcedureRepoPG(pool), treatment.NewPlanRepoPG(pool))

			_, total, err := svc.ListProcedures(ctx, false, 1, 0)
			if err != nil {
				return err
			}
			if total > 0 {
				fmt.Printf("Procedure catalog already has %d entries, nothing to seed.\n", total)
				return nil
			}

			for _, p := range defaultProcedures() {
				if err := svc.CreateProcedure(ctx, p); err != nil {
					return fmt.Errorf("seeding procedure %s: %w", p.Code, err)
				}
			}
			fmt.Printf("Seeded %d procedures.\n", len(defaultProcedures()))
			return nil
		},
	}
}

// defaultProcedures is the starter price list loaded by the seed command.
// Prices are in whole rupees and meant to be edited per clinic afterwards.
func defaultProcedures() []*treatment.Procedure {
	return []*treatment.Procedure{
		{Code: "CONS", Name: "Consultation", Category: "diagnostic", Price: 500},
		{Code: "XRAY-IOPA", Name: "IOPA X-Ray", Category: "diagnostic", Price: 300},
		{Code: "SCAL", Name: "Scaling and Polishing", Category: "preventive", Price: 1500},
		{Code: "FLUO", Name: "Fluoride Application", Category: "preventive", Price: 800},
		{Code: "FILL-C", Name: "Composite Filling", Category: "restorative", Price: 1800},
		{Code: "FILL-G", Name: "GIC Filling", Category: "restorative", Price: 1200},
		{Code: "RCT", Name: "Root Canal Treatment", Category: "endodontic", Price: 6000},
		{Code: "RCT-RE", Name: "Re-RCT", Category: "endodontic", Price: 8000},
		{Code: "EXT", Name: "Simple Extraction", Category: "surgical", Price: 1500},
		{Code: "EXT-S", Name: "Surgical Extraction", Category: "surgical", Price: 4000},
		{Code: "CRWN-M", Name: "Metal Crown", Category: "prosthodontic", Price: 3500},
		{Code: "CRWN-Z", Name: "Zirconia Crown", Category: "prosthodontic", Price: 9000},
		{Code: "DENT-P", Name: "Partial Denture (per arch)", Category: "prosthodontic", Price: 7000},
		{Code: "IMPL", Name: "Dental Implant", Category: "surgical", Price: 30000},
	}
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

	e.Use(echomw.RequestID())
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.Metrics())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	e.GET("/health", db.HealthHandler(pool))
	e.GET("/metrics", middleware.MetricsHandler())

	api := e.Group("/api/v1")
	if cfg.IsDev() {
		api.Use(auth.DevAuthMiddleware())
	} else {
		api.Use(auth.JWTMiddleware([]byte(cfg.JWTSecret)))
	}

	// Medication formulary and condition protocols (in-memory registry).
	registry := catalog.Default()
	catalog.NewHandler(registry).RegisterRoutes(api)

	// Patients and medical histories. The patient service doubles as the
	// lookup dependency for every domain that references a patient.
	patientRepo := patient.NewRepoPG(pool)
	historyRepo := patient.NewMedicalHistoryRepoPG(pool)
	patientSvc := patient.NewService(patientRepo, historyRepo)
	patient.NewHandler(patientSvc).RegisterRoutes(api)

	// Prescriptions with safety screening.
	rxRepo := prescription.NewRepoPG(pool)
	rxSvc := prescription.NewService(registry, patientSvc, rxRepo)
	prescription.NewHandler(rxSvc).RegisterRoutes(api)

	// Invoicing and payments.
	invoiceRepo := billing.NewRepoPG(pool)
	billingSvc := billing.NewService(invoiceRepo, patientSvc, billing.TaxConfig{
		RatePercent: cfg.TaxRatePercent,
		Enabled:     cfg.TaxEnabled,
		OverdueDays: cfg.OverdueDays,
	})
	billing.NewHandler(billingSvc).RegisterRoutes(api)

	// Procedure catalog and treatment plans.
	procedureRepo := treatment.NewProcedureRepoPG(pool)
	planRepo := treatment.NewPlanRepoPG(pool)
	treatmentSvc := treatment.NewService(procedureRepo, planRepo)
	treatment.NewHandler(treatmentSvc).RegisterRoutes(api)

	// Appointment book.
	apptRepo := appointment.NewRepoPG(pool)
	apptSvc := appointment.NewService(apptRepo, patientSvc)
	appointment.NewHandler(apptSvc).RegisterRoutes(api)

	// Lab case tracking.
	labRepo := labcase.NewRepoPG(pool)
	labSvc := labcase.NewService(labRepo, patientSvc)
	labcase.NewHandler(labSvc).RegisterRoutes(api)

	// Consumables stock.
	invRepo := inventory.NewRepoPG(pool)
	invSvc := inventory.NewService(invRepo)
	inventory.NewHandler(invSvc).RegisterRoutes(api)

	// Clinic expenses.
	expRepo := expense.NewRepoPG(pool)
	expSvc := expense.NewService(expRepo)
	expense.NewHandler(expSvc).RegisterRoutes(api)

	// Dashboard measures.
	reporting.NewHandler(pool).RegisterRoutes(api)

	// Reminder messages.
	reminderBuilder := notification.NewBuilder(cfg.ClinicName, nil)
	notification.NewHandler(reminderBuilder).RegisterRoutes(api.Group("", auth.RequireRole(auth.RoleReception, auth.RoleBilling)))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
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
