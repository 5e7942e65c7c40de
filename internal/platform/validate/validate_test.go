// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
	"github.com/taibuivan/xkcdbot/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "token", "abc", false},
		{"empty_string", "token", "", true},
		{"whitespace_only", "token", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Present distinguishes absent fields from empty ones.
*/
func TestValidator_Present(t *testing.T) {
	v := &validate.Validator{}
	v.Present("link", true).Present("news", false)

	details := v.Details()
	require.Len(t, details, 1)
	assert.Equal(t, "news", details[0].Field)
}

/*
TestValidator_URL checks the absolute URL rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"https", "https://imgs.xkcd.com/comics/barrel_cropped_(1).jpg", true},
		{"http", "http://xkcd.com", true},
		{"relative", "/comics/barrel.jpg", false},
		{"other_scheme", "ftp://xkcd.com/file", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("img", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("token", "").                   // Fails
		Range("num", 0, 1, 10).                  // Fails
		OneOf("mode", "fancy", "rich", "plain"). // Fails
		Custom("num", false, "never").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_Details_IsCopy ensures callers cannot mutate collected errors.
*/
func TestValidator_Details_IsCopy(t *testing.T) {
	v := &validate.Validator{}
	v.Required("token", "")

	details := v.Details()
	details[0].Field = "mutated"

	assert.Equal(t, "token", v.Details()[0].Field)
}
