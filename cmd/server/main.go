package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aaronblog/internal/handlers"
	"aaronblog/internal/logger"
	"aaronblog/internal/repository"
	"aaronblog/internal/repository/db"
	"aaronblog/internal/repository/memory"
	"aaronblog/internal/server"
	"aaronblog/internal/service"

	"github.com/spf13/viper"
)

const templateGlob = "web/templates/*.html"

func main() {
	// load config.yml first so the log level comes from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open storage per configured driver
	repos, closeStorage, err := openStorage(log)
	if err != nil {
		log.Fatalw("failed to init storage", "err", err)
	}
	defer func() {
		if cerr := closeStorage(); cerr != nil {
			log.Errorw("failed to close storage", "err", cerr)
		}
	}()

	// wire dependencies
	services := service.NewService(repos, service.AuthOptions{
		SigningKey: viper.GetString("session.secret"),
		SessionTTL: viper.GetString("session.ttl"),
	})
	webHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), webHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openStorage builds the repository layer for the configured driver:
// "sqlite" (default) or "memory".
func openStorage(log *logger.Logger) (*repository.Repository, func() error, error) {
	noop := func() error { return nil }

	switch driver := viper.GetString("storage.driver"); driver {
	case "memory":
		log.Infow("using in-process storage; all data is lost on restart")
		return memory.NewRepository(), noop, nil
	default:
		dbPath := viper.GetString("db.path")
		if dbPath == "" {
			log.Infow("db.path not set in config; using default file", "default", "blog.db")
			dbPath = "blog.db"
		}
		sqldb, err := db.InitDB(dbPath)
		if err != nil {
			return nil, noop, err
		}
		return repository.NewRepository(sqldb), sqldb.Close, nil
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes(templateGlob)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
