// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/xkcdbot/internal/platform/apperr"
	"github.com/taibuivan/xkcdbot/internal/platform/validate"
)

var errMalformedDate = errors.New("comic: malformed publication date")

/*
NormalizeDate builds a UTC calendar date from the archive's textual parts.

Each part is parsed as a base-10 integer. Non-numeric text, an out-of-range
month or day, or an impossible date such as 31/02 is reported as a
DECODE_FAILURE.

Parameters:
  - day, month, year: string (e.g. "1", "1", "2006")

Returns:
  - time.Time: midnight UTC on that date
  - error: apperr DECODE_FAILURE
*/
func NormalizeDate(day, month, year string) (time.Time, error) {
	d, dayErr := strconv.Atoi(strings.TrimSpace(day))
	m, monthErr := strconv.Atoi(strings.TrimSpace(month))
	y, yearErr := strconv.Atoi(strings.TrimSpace(year))

	v := &validate.Validator{}
	v.Custom("day", dayErr != nil, "Must be a base-10 integer").
		Custom("month", monthErr != nil, "Must be a base-10 integer").
		Custom("year", yearErr != nil, "Must be a base-10 integer")
	if v.HasErrors() {
		return time.Time{}, apperr.DecodeFailure(errMalformedDate, v.Details()...)
	}

	v.Range("day", d, 1, 31).
		Range("month", m, 1, 12).
		Range("year", y, 1, 9999)
	if v.HasErrors() {
		return time.Time{}, apperr.DecodeFailure(errMalformedDate, v.Details()...)
	}

	// time.Date normalizes overflow (Feb 31 -> Mar 3); a round trip catches it.
	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if date.Day() != d || int(date.Month()) != m {
		return time.Time{}, apperr.DecodeFailure(
			fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", errMalformedDate, y, m, d),
			apperr.FieldError{Field: "day", Message: "Does not exist in that month"},
		)
	}

	return date, nil
}
