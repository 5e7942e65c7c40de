// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bot_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/xkcdbot/internal/bot"
	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
)

/*
TestValidateToken checks the token shape rules without contacting Discord.
*/
func TestValidateToken(t *testing.T) {
	id := base64.RawStdEncoding.EncodeToString([]byte("123456789012345678"))

	tests := []struct {
		name    string
		token   string
		isValid bool
	}{
		{"well_formed", id + ".GhQk2a.abcdefghijklmnopqrstuvwxyz", true},
		{"with_bot_prefix", "Bot " + id + ".GhQk2a.signature", true},
		{"surrounding_space", "  " + id + ".GhQk2a.signature\n", true},
		{"padded_id", base64.StdEncoding.EncodeToString([]byte("1234567")) + ".a.b", true},
		{"two_segments", id + ".signature", false},
		{"empty_segment", id + "..signature", false},
		{"non_numeric_id", base64.RawStdEncoding.EncodeToString([]byte("not-an-id")) + ".a.b", false},
		{"not_base64", "***.a.b", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := bot.ValidateToken(tt.token)
			if tt.isValid {
				assert.NoError(t, err)
				assert.NotContains(t, normalized, "Bot ")
				return
			}

			assert.Empty(t, normalized)

			assert.True(t, apperr.IsCode(err, apperr.CodeValidation))
			if tt.token != "" {
				assert.NotContains(t, err.Error(), tt.token)
			}
		})
	}
}

/*
TestValidateToken_Normalizes returns the bare token for every accepted spelling.
*/
func TestValidateToken_Normalizes(t *testing.T) {
	bare := base64.RawStdEncoding.EncodeToString([]byte("123456789012345678")) + ".GhQk2a.signature"

	for _, input := range []string{bare, "Bot " + bare, " Bot " + bare + " \n", "\t" + bare} {
		normalized, err := bot.ValidateToken(input)
		require.NoError(t, err)
		assert.Equal(t, bare, normalized)
	}
}
