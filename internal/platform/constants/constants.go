// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire bot.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the ops HTTP server.
  - Archive: Default comic archive location and transport limits.
  - Chat: Command names, replies, and platform limits.

Using this package keeps magic strings and numbers out of the command and
resolution logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "xkcdbot"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	// It must exceed the archive fetch timeout so preview requests can finish.
	DefaultWriteTimeout = 20 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 15 * time.Second

	// DefaultOpsPort is used when OPS_PORT is not set at all.
	DefaultOpsPort = "8080"

	// ShutdownTimeout is how long we wait for in-flight work to complete during shutdown.
	ShutdownTimeout = 15 * time.Second
)

// # Archive

const (
	// DefaultArchiveBaseURL is the public numbered-comic archive.
	DefaultArchiveBaseURL = "https://xkcd.com"

	// ArchiveInfoFile is the per-comic metadata document name.
	ArchiveInfoFile = "info.0.json"

	// DefaultFetchTimeout bounds a single archive GET.
	DefaultFetchTimeout = 10 * time.Second

	// MaxRecordBytes caps the size of an archive response body.
	MaxRecordBytes = 1 << 20

	// DefaultUserAgent identifies the bot to the archive.
	DefaultUserAgent = AppName + "/" + AppVersion
)

// # Chat

const (
	// DefaultCommandPrefix is the prefix for message commands, e.g. "~xkcd 353".
	DefaultCommandPrefix = "~"

	// CommandXKCD is the comic command name for both prefix and slash entry points.
	CommandXKCD = "xkcd"

	// CommandPing is the liveness command name.
	CommandPing = "ping"

	// OptionNumber is the slash command option carrying the comic ordinal.
	OptionNumber = "number"

	// ReplyNotFound is shown for every failed resolution.
	ReplyNotFound = "Comic not found."

	// ReplyPong answers the ping command.
	ReplyPong = "Pong!"

	// EmbedTitleMaxRunes and EmbedFieldMaxRunes are Discord embed limits.
	EmbedTitleMaxRunes = 256
	EmbedFieldMaxRunes = 1024

	// EmbedColor is the embed accent colour (xkcd-ish slate).
	EmbedColor = 0x96A8C8
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"
	HeaderAccept        = "Accept"
)

// # JSON Field Identifiers

const (
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
	FieldChecks = "checks"
)
