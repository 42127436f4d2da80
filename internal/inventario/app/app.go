// Package app assembles the inventory service: configuration, database,
// signing keys, services and the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	httpapi "github.com/mrrinformatica/inventario/internal/inventario/http"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
	"github.com/mrrinformatica/inventario/internal/inventario/store/drivers/sqlite"
	"github.com/mrrinformatica/inventario/pkg/cryptox"
	"github.com/mrrinformatica/inventario/pkg/jwtx"
	"github.com/mrrinformatica/inventario/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the inventory service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.EdDSASigner
	keys   *jwtx.KeySet

	authService      *service.AuthService
	mfaService       *service.MFAService
	userService      *service.UserService
	equipmentService *service.EquipmentService
	licenseService   *service.LicenseService
	ticketService    *service.TicketService
	settingsService  *service.SettingsService
	auditService     *service.AuditService
	approvalService  *service.ApprovalService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "inventario",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, keys, err := initSigningKey(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.signer = signer
	app.keys = keys

	app.initServices()

	if err := app.seedAdmin(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("inventario starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the server and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down inventario...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("inventario stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   app.signer,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.SessionTTL,
	}
	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: app.cfg.Issuer,
	}
	app.userService = &service.UserService{Store: app.db}
	app.equipmentService = &service.EquipmentService{Store: app.db}
	app.licenseService = &service.LicenseService{Store: app.db}
	app.ticketService = &service.TicketService{Store: app.db}
	app.settingsService = &service.SettingsService{Store: app.db}
	app.auditService = &service.AuditService{Store: app.db}
	app.approvalService = &service.ApprovalService{Store: app.db}
}

// seedAdmin provisions the first admin account when the users table is empty,
// so a fresh deployment is reachable. The generated password is logged once.
func (app *Application) seedAdmin(ctx context.Context) error {
	empty, err := app.db.Users().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("failed to check users table: %w", err)
	}
	if !empty {
		return nil
	}

	password := app.cfg.AdminPassword
	generated := false
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return err
		}
		generated = true
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	id, err := app.db.Users().CreateUser(ctx, domain.User{
		Username:     app.cfg.AdminUsername,
		RealName:     "Administrador",
		Email:        app.cfg.AdminUsername + "@localhost",
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	if generated {
		// Shown once; rotate it after first login.
		app.logger.Info("seeded initial admin account",
			"user_id", id, "username", app.cfg.AdminUsername, "password", password)
	} else {
		app.logger.Info("seeded initial admin account",
			"user_id", id, "username", app.cfg.AdminUsername)
	}
	return nil
}

func (app *Application) initHTTP() {
	verifier := jwtx.NewVerifierEdDSA(app.keys, app.cfg.Issuer)

	router := httpapi.NewRouter(
		verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.MFAService = app.mfaService
	router.UserService = app.userService
	router.EquipmentService = app.equipmentService
	router.LicenseService = app.licenseService
	router.TicketService = app.ticketService
	router.SettingsService = app.settingsService
	router.AuditService = app.auditService
	router.ApprovalService = app.approvalService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
