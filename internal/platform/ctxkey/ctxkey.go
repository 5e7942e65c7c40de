// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys shared by the chat entry points
// and the ops HTTP server.
//
// # Safety
//
// Using a private, unexported type for keys prevents collisions with third-party
// packages (discordgo, chi) that might also use context for storage.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
type key string

const (
	// KeyRequestID is the context key for the per-invocation correlation value.
	// Chat commands and HTTP requests share it.
	KeyRequestID key = "request_id"

	// KeyLogger is the context key for the per-invocation [*log/slog.Logger].
	KeyLogger key = "logger"
)
