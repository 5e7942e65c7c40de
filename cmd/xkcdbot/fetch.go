// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/xkcdbot/internal/core/comic"
	"github.com/taibuivan/xkcdbot/internal/platform/config"
	"github.com/taibuivan/xkcdbot/internal/platform/ctxutil"
	"github.com/taibuivan/xkcdbot/internal/platform/httpclient"
	"github.com/taibuivan/xkcdbot/pkg/convert"
)

type fetchOptions struct {
	mode    string
	baseURL string
	debug   bool
}

// fetchResult is printed by the fetch command.
type fetchResult struct {
	Comic   *comic.Comic  `json:"comic,omitempty"`
	Payload comic.Payload `json:"payload"`
}

func newFetchCmd() *cobra.Command {
	options := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch [number]",
		Short: "Resolve one comic and print the reply payload",
		Long: `Resolve a comic against the archive and print what the bot would reply.

Without a number the latest comic is fetched. The exit status is non-zero when
the comic cannot be resolved; the "Comic not found." payload is still printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args, options)
		},
	}

	cmd.Flags().StringVar(&options.mode, "mode", config.RenderRich, "reply style: rich or plain")
	cmd.Flags().StringVar(&options.baseURL, "base-url", "", "archive base URL (defaults to ARCHIVE_BASE_URL)")
	cmd.Flags().BoolVar(&options.debug, "debug", false, "log transport details to stderr")

	return cmd
}

func runFetch(cmd *cobra.Command, args []string, options *fetchOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if options.baseURL != "" {
		cfg.ArchiveBaseURL = options.baseURL
	}

	// 1. Validate flags and archive settings
	mode, err := comic.ParseMode("mode", options.mode)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ref := comic.Latest()
	if len(args) == 1 {
		number, ok := convert.ToUint32(args[0])
		if !ok {
			return fmt.Errorf("invalid comic number %q", args[0])
		}
		ref = comic.Number(number)
	}

	// 2. Resolve through the same pipeline the bot uses
	log := newLogger(os.Stderr, options.debug || cfg.Debug)
	ctx := cmd.Context()
	service := comic.NewService(httpclient.New(cfg.FetchTimeout, cfg.UserAgent), cfg.ArchiveBaseURL)

	resolved, resolveErr := service.Resolve(ctxutil.WithLogger(ctx, log), ref)
	if resolveErr != nil {
		resolved = nil
	}

	// 3. Print the payload even on failure
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(fetchResult{Comic: resolved, Payload: comic.Render(mode, resolved)}); err != nil {
		return err
	}

	return resolveErr
}
