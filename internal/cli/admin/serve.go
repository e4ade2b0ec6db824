package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gujjar-pranav/portfolio/internal/api/handlers"
	"github.com/gujjar-pranav/portfolio/internal/chat"
	"github.com/gujjar-pranav/portfolio/internal/config"
	"github.com/gujjar-pranav/portfolio/internal/github"
	"github.com/gujjar-pranav/portfolio/internal/jobs"
	"github.com/gujjar-pranav/portfolio/internal/knowledge"
	"github.com/gujjar-pranav/portfolio/internal/server"
	"github.com/gujjar-pranav/portfolio/internal/telemetry"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the portfolio API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().Bool("no-refresh", false, "Disable the background repository cache refresher")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if a DSN is configured
	if cfg.HasSentry() {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              cfg.SentryDSN,
			Environment:      environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}

	kb := knowledge.Default()

	ghClient := github.NewClient(cfg.GitHubOwner, cfg.GitHubToken)
	repoCache := github.NewCache(ghClient, cfg.GitHubCacheTTL)
	if cfg.HasGitHubToken() {
		log.Printf("github: authenticated requests for owner %s", cfg.GitHubOwner)
	} else {
		log.Printf("github: unauthenticated requests for owner %s (low rate limit)", cfg.GitHubOwner)
	}

	var refreshWorker *jobs.Worker
	noRefresh, _ := cmd.Flags().GetBool("no-refresh")
	if !noRefresh {
		refreshWorker = jobs.NewWorker(repoCache, cfg.GitHubCacheTTL)
		go refreshWorker.Start(ctx)
		log.Println("repository cache refresher started")
	}

	store := chat.NewStore(chat.NewRouter(kb, repoCache))

	routerCfg := server.RouterConfig{
		ChatHandler:      handlers.NewChatHandler(store),
		RepoHandler:      handlers.NewRepoHandler(repoCache),
		PortfolioHandler: handlers.NewPortfolioHandler(kb),
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	if refreshWorker != nil {
		refreshWorker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}
