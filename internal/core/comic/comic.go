// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comic resolves numbered webcomics from the public archive and turns
them into chat-ready payloads.

Pipeline:

  - Reference: "latest" or an explicit ordinal, chosen by an entry point.
  - Fetch: one GET through a [Fetcher] (the archive transport).
  - Decode: the JSON record is validated into a [RawRecord].
  - Normalize: the day/month/year text fields become a UTC date.
  - Assemble: a [Comic] with a guaranteed permalink.
  - Render: a [Payload] in plain or rich form.

Every stage failure aborts the resolution with an apperr TRANSPORT_FAILURE or
DECODE_FAILURE. Nothing is cached; each call owns its record and result.

[Render] treats any mode other than [ModePlain] as [ModeRich]. Values coming
from outside (config, flags, query strings) go through [ParseMode] first, so
a typo is rejected instead of silently rendering rich.
*/
package comic

import (
	"strconv"
	"time"

	"github.com/taibuivan/xkcdbot/pkg/convert"
)

// # References

// Reference selects which comic to resolve.
//
// The zero value is the latest comic.
type Reference struct {
	ordinal  uint32
	byNumber bool
}

// Latest references the most recently published comic.
func Latest() Reference {
	return Reference{}
}

// Number references the comic with the given ordinal.
func Number(ordinal uint32) Reference {
	return Reference{ordinal: ordinal, byNumber: true}
}

// IsLatest reports whether r is the latest-comic sentinel.
func (r Reference) IsLatest() bool { return !r.byNumber }

// Ordinal returns the requested ordinal, or 0 for [Latest].
func (r Reference) Ordinal() uint32 { return r.ordinal }

// String renders the reference for logs.
func (r Reference) String() string {
	if r.IsLatest() {
		return "latest"
	}
	return strconv.FormatUint(uint64(r.ordinal), 10)
}

// ParseReference maps a text command argument to a [Reference].
//
// An absent or unparsable argument (not an unsigned base-10 integer that fits
// in 32 bits) falls back to [Latest].
func ParseReference(arg string) Reference {
	ordinal, ok := convert.ToUint32(arg)
	if !ok {
		return Latest()
	}
	return Number(ordinal)
}

// ReferenceFromOption maps a structured integer option to a [Reference].
//
// A missing option, or one outside the uint32 range, falls back to [Latest].
func ReferenceFromOption(value *int64) Reference {
	if value == nil || *value < 0 || *value > int64(^uint32(0)) {
		return Latest()
	}
	return Number(uint32(*value))
}

// # Core Entities

// Comic is one resolved, presentable archive entry.
//
// It is built once per resolution and never shared across requests.
type Comic struct {
	Title      string    `json:"title"`
	SafeTitle  string    `json:"safe_title"`
	Num        uint32    `json:"num"`
	Date       time.Time `json:"date"`
	ImageURL   string    `json:"img_url"`
	Alt        string    `json:"alt"`
	Transcript string    `json:"transcript"`
	News       string    `json:"news"`

	// Link is never empty; see [Service.Permalink].
	Link string `json:"link"`
}
