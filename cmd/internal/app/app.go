// Package app wires the marketplace server runtime: config, logging, the
// database, the session authority and the HTTP routes.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"marketplace/cmd/identity"
	authapi "marketplace/cmd/internal/auth/api"
	"marketplace/cmd/internal/auth/session"
	"marketplace/cmd/internal/merchant"
	"marketplace/cmd/internal/product"
)

// App is the server runtime. It owns the database handle and the HTTP server
// wiring.
type App struct {
	cfg Config
	log Logger

	db     *gorm.DB
	engine http.Handler
}

// New constructs a fully wired App instance from config and logger.
func New(ctx context.Context, cfg Config, log Logger) (*App, error) {
	if log == nil {
		log = NewLogger(cfg.LogLevel)
	}

	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	sessCfg, err := session.LoadConfigFromEnv()
	if err != nil {
		_ = CloseDB(db)
		return nil, err
	}

	authority := session.NewAuthority(sessCfg, session.NewGormStore(db), session.NewPasetoV4LocalCodec(sessCfg))
	auth := authapi.NewHandler(log, identity.NewGormStore(db), authority)
	merchants := merchant.NewHandler(log, merchant.NewGormStore(db))
	products := product.NewHandler(log, product.NewGormStore(db))

	return &App{
		cfg:    cfg,
		log:    log,
		db:     db,
		engine: NewRouter(log, db, auth, merchants, products),
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal
// server error.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           a.engine,
		ReadHeaderTimeout: a.cfg.ReadHeaderTimeout,
		ReadTimeout:       a.cfg.ReadTimeout,
		WriteTimeout:      a.cfg.WriteTimeout,
		IdleTimeout:       a.cfg.IdleTimeout,
		MaxHeaderBytes:    a.cfg.MaxHeaderBytes,
	}

	a.log.Info("server.start", "addr", a.cfg.HTTPAddr)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.log.Info("server.stop", "reason", "context_done")
	case err := <-errCh:
		a.log.Error("server.fail", "err", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Error("server.shutdown.fail", "err", err)
		return err
	}

	if err := CloseDB(a.db); err != nil {
		a.log.Error("db.close.fail", "err", err)
	}

	a.log.Info("server.stopped")
	return nil
}
