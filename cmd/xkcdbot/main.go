// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command xkcdbot runs the xkcd chat bot.
//
// # Commands
//
//   - serve (default): connect to Discord and start the ops HTTP server.
//   - fetch: resolve a single comic against the archive and print the reply
//     payload as JSON. Needs no Discord token.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/xkcdbot/internal/platform/constants"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the root command alone serves.
func newRootCmd() *cobra.Command {
	serveCmd := newServeCmd()

	root := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Discord bot that posts xkcd comics",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	root.AddCommand(serveCmd, newFetchCmd())

	return root
}

// newLogger builds the process logger: JSON on w, tagged with the app name.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
}
