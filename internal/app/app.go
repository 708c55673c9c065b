package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slot_engine/internal/config"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) initLogger() {
	cfg := s.ServiceProvider.LogCfg()

	level, err := log.ParseLevel(cfg.Level())
	if err != nil {
		log.WithError(err).Warn("unknown LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format() == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()
	s.initLogger()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)

	scheduler := s.ServiceProvider.Scheduler()
	if err := scheduler.Start(); err != nil {
		return err
	}
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr":  srv.Addr,
			"store": s.ServiceProvider.StoreCfg().Driver(),
		}).Info("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
