// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

/*
Package similarity builds a TF-IDF vector space over short documents and
precomputes the pairwise cosine similarity of every document pair.

# Analysis

Text is lowercased and split into tokens of two or more word characters.
English stop words are removed and, when Options.Stem is set, the remaining
tokens are reduced with the Snowball English stemmer.

# Weighting

The vocabulary keeps at most Options.MaxFeatures terms, chosen by corpus
frequency with ties broken alphabetically. Each document row holds raw term
counts multiplied by the smoothed inverse document frequency

	idf(t) = ln((1 + n) / (1 + df(t))) + 1

and is scaled to unit L2 norm. Documents without any surviving term are zero
vectors and score 0 against every document, themselves included.

# Usage

	m := similarity.Build(texts, similarity.DefaultOptions())
	for _, nb := range m.MostSimilar(3, 10) {
		fmt.Println(nb.Index, nb.Score)
	}

A Matrix is immutable after Build and safe for concurrent use.
*/
package similarity
