// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package similarity

import (
	"strings"
	"unicode"
	"unicode/utf8"

	snowballeng "github.com/kljensen/snowball/english"
)

// minTokenRunes is the shortest token the analyzer keeps.
const minTokenRunes = 2

// tokenize lowercases text and splits it into runs of word characters,
// dropping runs shorter than minTokenRunes.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minTokenRunes {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// analyze runs the full analysis chain for one document.
func analyze(text string, stem bool) []string {
	tokens := tokenize(text)
	out := tokens[:0]
	for _, tok := range tokens {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if stem {
			tok = snowballeng.Stem(tok, false)
			if tok == "" {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
