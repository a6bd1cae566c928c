package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/internmatch/backend/auth"
	"github.com/internmatch/backend/handlers"
	"github.com/internmatch/backend/mcp"
	"github.com/internmatch/backend/storage"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start the REST API with recommendation, chat, catalog browsing, admin and MCP endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Port = servePort
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.CatalogRefreshCron != "" {
		scheduler, err := storage.NewRefreshScheduler(a.catalog, cfg.CatalogRefreshCron, time.Minute)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	authenticator := auth.NewAdminAuthenticator(cfg)
	if !authenticator.Enabled() {
		log.Println("ADMIN_PASSWORD_HASH not set, admin endpoints are disabled")
	}

	router := handlers.NewRouter(handlers.Dependencies{
		Version:       version,
		Catalog:       a.catalog,
		Recommender:   a.recommender,
		Assistant:     a.assistant,
		Registry:      a.registry,
		MCP:           mcp.NewServer(a.registry, serviceName, version),
		JWTService:    auth.NewJWTService(cfg),
		Authenticator: authenticator,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited gracefully")
	return nil
}
