package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hairizuan-noorazman/jobly/auth"
	"github.com/hairizuan-noorazman/jobly/cmd/backend/handlers"
	"github.com/hairizuan-noorazman/jobly/company"
	"github.com/hairizuan-noorazman/jobly/job"
	"github.com/hairizuan-noorazman/jobly/logger"
	"github.com/hairizuan-noorazman/jobly/storage"
	"github.com/hairizuan-noorazman/jobly/user"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log := logger.NewLogrusLoggerWithOutput(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	log.Info(ctx, "starting server", map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    BuildDate,
	})

	db, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	log.Info(ctx, "database connected", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	issuer, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}

	blobStorage, err := storage.NewBlobStorage(ctx, storage.Config{
		Type:      cfg.Storage.Type,
		BaseDir:   cfg.Storage.BaseDir,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.S3Bucket,
		Region:    cfg.Storage.S3Region,
		Endpoint:  cfg.Storage.S3Endpoint,
		PublicURL: cfg.Storage.S3PublicURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info(ctx, "storage initialized", map[string]interface{}{
		"type": cfg.Storage.Type,
	})

	routerCfg := handlers.RouterConfig{
		JobStore:     job.NewPostgresStore(db, log),
		CompanyStore: company.NewPostgresStore(db, log),
		UserStore:    user.NewPostgresStore(db, log),
		Issuer:       issuer,
		BlobStorage:  blobStorage,
		MaxLogoBytes: cfg.Storage.MaxLogoBytes,
		DB:           sqlDB,
		Logger:       log,
	}
	if local, ok := blobStorage.(*storage.LocalStorage); ok && strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		routerCfg.FilesDir = local.BaseDir()
		routerCfg.FilesPrefix = cfg.Storage.BaseURL
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handlers.NewRouter(routerCfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info(ctx, "server listening", map[string]interface{}{
			"address": addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info(ctx, "server stopped", nil)
	return nil
}
