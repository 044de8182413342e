package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/feedbackhq/feedbackhq/internal/config"
	"github.com/feedbackhq/feedbackhq/internal/db"
	internalhttp "github.com/feedbackhq/feedbackhq/internal/http"
	"github.com/feedbackhq/feedbackhq/internal/settings"
	"github.com/feedbackhq/feedbackhq/internal/store"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// shutdownTimeout bounds graceful shutdown after ctx cancellation.
const shutdownTimeout = 10 * time.Second

// Migrate opens the database and runs schema migrations.
func Migrate(ctx context.Context, cfg config.Config) error {
	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer closeConn(conn)
	return db.Migrate(conn)
}

// RunServer boots the HTTP API. An unreachable database is fatal: the process
// never serves without a backing store.
func RunServer(ctx context.Context, cfg config.Config) error {
	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer closeConn(conn)

	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	if errRefresh := settings.RefreshSnapshot(ctx, conn); errRefresh != nil {
		return fmt.Errorf("refresh settings: %w", errRefresh)
	}

	router := internalhttp.NewRouter(conn, cfg)
	srv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("server listening on %s", cfg.Server.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if errShutdown := srv.Shutdown(shutdownCtx); errShutdown != nil {
			return errShutdown
		}
		return nil
	case errServe := <-errCh:
		if errors.Is(errServe, http.ErrServerClosed) {
			return nil
		}
		return errServe
	}
}

// SeedAdmin creates a bootstrap admin account when it does not already exist.
// It is idempotent: an existing account with the same email is left untouched.
func SeedAdmin(ctx context.Context, cfg config.Config, email, password, name string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New("seed admin: email and password are required")
	}

	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer closeConn(conn)

	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}

	admins := store.NewAdminStore(conn)
	admin, errCreate := admins.Create(ctx, email, password, name)
	if errCreate != nil {
		if errors.Is(errCreate, store.ErrDuplicateEmail) {
			log.Infof("admin %s already exists", store.NormalizeEmail(email))
			return nil
		}
		return errCreate
	}
	log.Infof("admin %s created", admin.Email)
	return nil
}

// closeConn closes the underlying sql.DB of a GORM connection.
func closeConn(conn *gorm.DB) {
	sqlDB, err := conn.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
