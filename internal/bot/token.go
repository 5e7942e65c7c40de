// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot

import (
	"encoding/base64"
	"strings"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
)

/*
ValidateToken checks the shape of a bot token before any network login.

A token is three dot-separated segments; the first is the base64 (padding
optional) of the bot's numeric user id. Surrounding whitespace and a leading
"Bot " are accepted and removed. The signature parts are not verified; the
gateway does that on login.

Returns:
  - string: the bare token, without the "Bot " scheme
  - error: apperr VALIDATION_ERROR naming DISCORD_TOKEN, never echoing the token
*/
func ValidateToken(token string) (string, error) {
	invalid := func(message string) (string, error) {
		return "", apperr.ValidationError("Invalid bot token format", apperr.FieldError{
			Field:   "DISCORD_TOKEN",
			Message: message,
		})
	}

	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bot "))
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return invalid("Must have three dot-separated segments")
	}
	for _, part := range parts {
		if part == "" {
			return invalid("Segments must not be empty")
		}
	}

	id, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[0], "="))
	if err != nil {
		id, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(parts[0], "="))
	}
	if err != nil || len(id) == 0 || strings.Trim(string(id), "0123456789") != "" {
		return invalid("First segment must encode a numeric user id")
	}

	return token, nil
}
