// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package logging

import (
	"strings"
	"unicode"
)

// MaxQueryLogLength bounds how much of a user query is written to logs.
const MaxQueryLogLength = 100

// SanitizeQuery prepares user-supplied query text for a log field: control
// characters become spaces and the result is truncated to MaxQueryLogLength
// runes with a trailing ellipsis.
func SanitizeQuery(q string) string {
	var b strings.Builder
	n := 0
	for _, r := range q {
		if n == MaxQueryLogLength {
			b.WriteString("...")
			break
		}
		if unicode.IsControl(r) {
			r = ' '
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
