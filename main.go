package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ihdeveloper/nateq-server/cliparse"
	"github.com/ihdeveloper/nateq-server/db"
	"github.com/ihdeveloper/nateq-server/handlers"
	"github.com/ihdeveloper/nateq-server/middleware"
	"github.com/ihdeveloper/nateq-server/registry"
	"github.com/ihdeveloper/nateq-server/router"
)

func main() {
	// Optional local overrides; the environment wins when both are set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env file", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Registries live in memory and reset on restart.
	clients := registry.NewClients(cfg.TokenSecret)
	screens := registry.NewScreens(cfg.TokenSecret, cfg.DefaultLanguage)
	groups := registry.NewGroups()

	// The archive is optional; without it registrations stay in memory.
	var archive handlers.Archiver
	if cfg.DatabaseURL != "" {
		store, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("archive connection failed", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		if err := store.CreateSchema(); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Archive schema ready", "type", cfg.DatabaseType)
		archive = store
	} else {
		slog.Info("No archive configured, registrations are memory only")
	}

	// Create router
	mux := router.NewRouter(cfg, clients, screens, groups, archive)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
