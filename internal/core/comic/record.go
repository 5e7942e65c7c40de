// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
	"github.com/taibuivan/xkcdbot/internal/platform/validate"
)

// RawRecord is the archive's info.0.json document after validation.
//
// Date parts stay textual here; [NormalizeDate] turns them into a date.
type RawRecord struct {
	Title      string
	SafeTitle  string
	Num        uint32
	Img        string
	Alt        string
	Transcript string
	News       string
	Link       string
	Day        string
	Month      string
	Year       string
}

// wireRecord mirrors the JSON document. Pointers tell absent keys apart from
// empty strings.
type wireRecord struct {
	Title      *string `json:"title"`
	SafeTitle  *string `json:"safe_title"`
	Num        *int64  `json:"num"`
	Img        *string `json:"img"`
	Alt        *string `json:"alt"`
	Transcript *string `json:"transcript"`
	News       *string `json:"news"`
	Link       *string `json:"link"`
	Day        *string `json:"day"`
	Month      *string `json:"month"`
	Year       *string `json:"year"`
}

var errInvalidRecord = errors.New("comic: invalid archive record")

/*
DecodeRecord parses an archive response body into a [RawRecord].

Unknown keys are ignored. Every key of [RawRecord] is required, num must be a
positive 32-bit integer and img an absolute URL.

Returns:
  - *RawRecord: the validated record
  - error: apperr DECODE_FAILURE listing the offending fields
*/
func DecodeRecord(body []byte) (*RawRecord, error) {
	var wire wireRecord
	if err := json.Unmarshal(body, &wire); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, apperr.DecodeFailure(err, apperr.FieldError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("Has the wrong JSON type (got %s)", typeErr.Value),
			})
		}
		return nil, apperr.DecodeFailure(fmt.Errorf("comic: malformed archive record: %w", err))
	}

	v := &validate.Validator{}
	v.Present("title", wire.Title != nil).
		Present("safe_title", wire.SafeTitle != nil).
		Present("num", wire.Num != nil).
		Present("img", wire.Img != nil).
		Present("alt", wire.Alt != nil).
		Present("transcript", wire.Transcript != nil).
		Present("news", wire.News != nil).
		Present("link", wire.Link != nil).
		Present("day", wire.Day != nil).
		Present("month", wire.Month != nil).
		Present("year", wire.Year != nil)

	if wire.Num != nil {
		v.Custom("num", *wire.Num < 1 || *wire.Num > math.MaxUint32, "Must be a positive 32-bit integer")
	}
	if wire.Img != nil {
		v.URL("img", *wire.Img)
	}

	if v.HasErrors() {
		return nil, apperr.DecodeFailure(errInvalidRecord, v.Details()...)
	}

	return &RawRecord{
		Title:      *wire.Title,
		SafeTitle:  *wire.SafeTitle,
		Num:        uint32(*wire.Num),
		Img:        *wire.Img,
		Alt:        *wire.Alt,
		Transcript: *wire.Transcript,
		News:       *wire.News,
		Link:       *wire.Link,
		Day:        *wire.Day,
		Month:      *wire.Month,
		Year:       *wire.Year,
	}, nil
}
