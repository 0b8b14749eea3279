// Package server initializes and runs the main application server: config,
// logging, the MongoDB repository manager, services, and the HTTP endpoint,
// with graceful shutdown on OS signals.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/deepthoughts/internal/logging"
	"github.com/dmitrijs2005/deepthoughts/internal/server/config"
	"github.com/dmitrijs2005/deepthoughts/internal/server/httpapi"
	"github.com/dmitrijs2005/deepthoughts/internal/server/services"
	"github.com/dmitrijs2005/deepthoughts/internal/server/shared/db"
)

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	return &App{config: c, logger: logger}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	manager, err := db.NewMongoRepositoryManager(ctx, app.config.DatabaseDSN, app.config.DatabaseName)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	defer func() {
		if err := manager.Close(context.Background()); err != nil {
			app.logger.Error(ctx, "error closing db connection", "error", err.Error())
		}
	}()

	if err := manager.EnsureIndexes(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	us := services.NewUserService(manager.Users(), manager.Thoughts(), app.config)
	ts := services.NewThoughtService(manager.Users(), manager.Thoughts(), app.logger)

	srv, err := httpapi.NewServer(app.config.EndpointAddr, app.logger, us, ts, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	return nil
}
