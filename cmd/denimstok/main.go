package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/adiwjy/denimstok/internal/api"
	"github.com/adiwjy/denimstok/internal/config"
	"github.com/adiwjy/denimstok/internal/db"
	"github.com/adiwjy/denimstok/internal/store"
)

var (
	flagAddr    string
	flagDB      string
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "denimstok",
	Short: "Jeans inventory tracking backend",
	Long: `Denimstok is a small inventory-tracking backend for a jeans retailer:
categories, suppliers, products, inventory line items, and stock
movements, exposed as a JSON API over HTTP.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database file and apply the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return initdb()
	},
}

func init() {
	for _, cmd := range []*cobra.Command{serveCmd, initdbCmd} {
		cmd.Flags().StringVar(&flagDB, "db", "", "SQLite database path (overrides DENIMSTOK_DB)")
	}
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides DENIMSTOK_ADDR)")
	serveCmd.Flags().StringVar(&flagLogFile, "log", "", "log file path (overrides DENIMSTOK_LOG_FILE)")
	rootCmd.AddCommand(serveCmd, initdbCmd)
}

// loadConfig reads .env and the environment, then applies flag overrides.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	return cfg, nil
}

func initdb() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.DBPath); err == nil {
		return fmt.Errorf("database file %s already exists", cfg.DBPath)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		os.Remove(cfg.DBPath)
		return err
	}

	fmt.Printf("Database created: %s\n", cfg.DBPath)
	fmt.Println("Schema initialized.")
	return nil
}

func serve() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	closeLog, err := setupLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	// Open the database once for the whole process; closed on shutdown.
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Ensure schema exists (idempotent).
	if err := db.EnsureSchema(database); err != nil {
		return fmt.Errorf("ensuring database schema: %w", err)
	}
	slog.Info("database ready", "path", cfg.DBPath)

	// Session token signing key, generated and persisted on first run.
	sessionSecret, err := store.SessionSecret(context.Background(), database)
	if err != nil {
		return fmt.Errorf("loading session secret: %w", err)
	}

	// Hash the configured admin password once; login compares against it.
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	router := api.NewRouter(database, cfg.AdminUsername, adminHash, sessionSecret)
	handler := api.LoggingMiddleware(api.Recoverer(api.CORS(cfg.CORSOrigins)(router)))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped, closing database")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
