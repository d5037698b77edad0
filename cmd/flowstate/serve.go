package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowstate-live/flowstate/internal/api"
	"github.com/flowstate-live/flowstate/internal/conf"
	"github.com/flowstate-live/flowstate/internal/data"
	"github.com/flowstate-live/flowstate/internal/infra/openai"
	"github.com/flowstate-live/flowstate/internal/infra/youtube"
	"github.com/flowstate-live/flowstate/internal/server"
	"github.com/flowstate-live/flowstate/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the websocket and HTTP backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}
}

// newHub builds the repositories and the live hub shared by serve and watch
func newHub(ctx context.Context, cfg *conf.Config) (*service.Hub, *data.Repositories, error) {
	if err := cfg.RequireChatSource(); err != nil {
		return nil, nil, err
	}

	ytClient, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
	if err != nil {
		return nil, nil, err
	}

	baseURL, apiKey, model := cfg.LLM.Endpoint()
	completionClient := openai.NewClient(baseURL, apiKey, model)
	slog.Info("completion service", "provider", cfg.LLM.ActiveProvider(), "model", model)

	repos, err := data.NewRepositories(ytClient, completionClient, cfg.Archive.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create repositories: %w", err)
	}
	if repos.Archive != nil {
		slog.Info("archive enabled", "path", cfg.Archive.DBPath, "retention", cfg.Archive.RetentionWindow())
	}

	hub := service.NewHub(repos.ChatSource, repos.Completion, repos.Archive, service.HubConfig{
		Session: cfg.Pipeline.ToSessionConfig(),
		Spam:    cfg.Spam.ToSpamConfig(),
		Prompts: cfg.ToPromptConfig(),
	})
	return hub, repos, nil
}

func runServe(ctx context.Context, cfg *conf.Config) error {
	hub, repos, err := newHub(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	var janitor *service.ArchiveJanitor
	if repos.Archive != nil {
		janitor = service.NewArchiveJanitor(repos.Archive, cfg.Archive.RetentionWindow(), 0)
		janitor.Start(ctx)
	}

	ws := server.NewWebSocketServer(hub.Registry)
	httpServer := api.NewServer(cfg.Server.Address(), hub.Registry, repos.Archive, ws)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start()
	}()

	slog.Info("flowstate backend started", "profile", cfg.Profile, "addr", cfg.Server.Address())

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err = <-errCh:
		if err != nil {
			slog.Error("http server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if stopErr := httpServer.Stop(shutdownCtx); stopErr != nil {
		slog.Warn("http shutdown incomplete", "error", stopErr)
	}
	ws.CloseAll()
	if stopErr := hub.Registry.Shutdown(shutdownCtx); stopErr != nil {
		slog.Warn("pipelines did not stop in time", "error", stopErr)
	}
	if janitor != nil {
		janitor.Stop()
	}

	return err
}
