// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/taibuivan/xkcdbot/internal/api"
	"github.com/taibuivan/xkcdbot/internal/bot"
	"github.com/taibuivan/xkcdbot/internal/core/comic"
	"github.com/taibuivan/xkcdbot/internal/platform/config"
	"github.com/taibuivan/xkcdbot/internal/platform/constants"
	"github.com/taibuivan/xkcdbot/internal/platform/httpclient"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and answer comic commands",
		Long: `Connect to the Discord gateway and answer comic commands.

Startup sequence:
1. Load configuration from the environment (and ./.env)
2. Build the archive transport and comic resolver
3. Open the Discord session and register slash commands
4. Start the ops HTTP server when OPS_PORT is set
5. Wait for SIGINT/SIGTERM and shut down gracefully`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	// ── 1. Logger & Configuration ─────────────────────────────────────────
	log := newLogger(os.Stdout, false)
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		return startupFailure(log, err, "load configuration")
	}
	if cfg.Debug {
		log = newLogger(os.Stdout, true)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}
	if err := cfg.Validate(); err != nil {
		return startupFailure(log, err, "validate configuration")
	}
	if err := cfg.RequireToken(); err != nil {
		return startupFailure(log, err, "validate configuration")
	}
	prefixMode, err := comic.ParseMode("PREFIX_RENDER_MODE", cfg.PrefixRenderMode)
	if err != nil {
		return startupFailure(log, err, "validate configuration")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("archive", cfg.ArchiveBaseURL),
		slog.String("prefix_mode", cfg.PrefixRenderMode),
	)

	// ── 2. Resolution Pipeline ────────────────────────────────────────────
	client := httpclient.New(cfg.FetchTimeout, cfg.UserAgent)
	service := comic.NewService(client, cfg.ArchiveBaseURL)

	// ── 3. Discord Session ────────────────────────────────────────────────
	commands := bot.NewCommands(service, cfg.CommandPrefix, prefixMode)
	chatBot, err := bot.New(bot.Options{
		Token:            cfg.DiscordToken,
		GuildID:          cfg.GuildID,
		RegisterCommands: cfg.RegisterCommands,
	}, commands, log)
	if err != nil {
		return startupFailure(log, err, "create discord session")
	}
	if err := chatBot.Open(); err != nil {
		return startupFailure(log, err, "open discord session")
	}
	defer func() {
		log.Info("closing discord session")
		if cerr := chatBot.Close(); cerr != nil {
			log.Error("discord close error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Ops Server ─────────────────────────────────────────────────────
	serverErr := make(chan error, 1)
	var server *api.Server

	if cfg.OpsEnabled() {
		liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{CheckSession: chatBot.Ready})
		server = api.NewServer(cfg.OpsPort, log, api.Handlers{
			Liveness:  liveness,
			Readiness: readiness,
			Comic:     comic.NewHandler(service),
		})

		go func() {
			if err := server.ListenAndServe(); err != nil {
				serverErr <- err
			}
		}()
	}

	// ── 5. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case <-cmd.Context().Done():
		log.Info("shutdown requested")
	case err := <-serverErr:
		log.Error("ops server error", slog.Any("error", err))
		runErr = err
	}

	if server != nil {
		log.Info("shutting down ops server", slog.Duration("timeout", constants.ShutdownTimeout))
		if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
			log.Error("shutdown error", slog.Any("error", err))
		}
	}

	log.Info("bot stopped")
	return runErr
}

// startupFailure logs a structured startup error and returns it for cobra.
func startupFailure(log *slog.Logger, err error, step string) error {
	log.Error("startup failure",
		slog.String("context", step),
		slog.Any("error", err),
	)
	return fmt.Errorf("%s: %w", step, err)
}
