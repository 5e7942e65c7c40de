// Copyright (c) 2026 xkcdbot. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] to provide fault-tolerant conversions for command
arguments and URL parameters, where a malformed value simply means "not
given".
*/
package convert

import (
	"strconv"
	"strings"
)

// ToUint32 parses s as an unsigned base-10 integer that fits in 32 bits.
// Surrounding whitespace is ignored. ok is false for empty or malformed input.
func ToUint32(s string) (value uint32, ok bool) {

	// Ignore padding around the argument
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Signs, decimals and overflow are all rejected by ParseUint
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(v), true
}
