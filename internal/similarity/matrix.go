// MovieSense - Content-Based Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesense

package similarity

import (
	"math"
	"sort"

	"github.com/viterin/vek"
)

// DefaultMaxFeatures caps the vocabulary when Options.MaxFeatures is unset.
const DefaultMaxFeatures = 20000

// Options configures the analyzer and vocabulary of Build.
type Options struct {
	// MaxFeatures is the largest vocabulary kept. Values <= 0 select DefaultMaxFeatures.
	MaxFeatures int `koanf:"max_features"`

	// Stem enables Snowball English stemming of tokens.
	Stem bool `koanf:"stem"`
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{MaxFeatures: DefaultMaxFeatures}
}

// Neighbor is one entry of a MostSimilar ranking.
type Neighbor struct {
	Index int
	Score float64
}

// Matrix holds the pairwise cosine similarity of n documents.
type Matrix struct {
	n      int
	scores []float64
	vocab  int
}

// sparseRow is one L2-normalized TF-IDF row; idx is ascending.
type sparseRow struct {
	idx  []int
	vals []float64
}

// Build vectorizes texts and computes their pairwise cosine similarity.
// Row i of the result belongs to texts[i].
func Build(texts []string, opts Options) *Matrix {
	maxFeatures := opts.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	n := len(texts)
	docs := make([]map[string]int, n)
	totals := make(map[string]int)
	df := make(map[string]int)
	for i, text := range texts {
		counts := make(map[string]int)
		for _, tok := range analyze(text, opts.Stem) {
			counts[tok]++
		}
		for term, c := range counts {
			totals[term] += c
			df[term]++
		}
		docs[i] = counts
	}

	terms := selectVocabulary(totals, maxFeatures)
	column := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for col, term := range terms {
		column[term] = col
		idf[col] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	rows := make([]sparseRow, n)
	for i, counts := range docs {
		rows[i] = weightRow(counts, column, idf)
	}

	return &Matrix{n: n, scores: pairwise(rows, len(terms)), vocab: len(terms)}
}

// selectVocabulary keeps the maxFeatures most frequent terms (ties
// alphabetical) and returns them in alphabetical order, which fixes the
// column layout.
func selectVocabulary(totals map[string]int, maxFeatures int) []string {
	terms := make([]string, 0, len(totals))
	for term := range totals {
		terms = append(terms, term)
	}
	if len(terms) > maxFeatures {
		sort.Slice(terms, func(a, b int) bool {
			if totals[terms[a]] != totals[terms[b]] {
				return totals[terms[a]] > totals[terms[b]]
			}
			return terms[a] < terms[b]
		})
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)
	return terms
}

func weightRow(counts map[string]int, column map[string]int, idf []float64) sparseRow {
	idx := make([]int, 0, len(counts))
	for term := range counts {
		if col, ok := column[term]; ok {
			idx = append(idx, col)
		}
	}
	sort.Ints(idx)

	row := sparseRow{idx: idx, vals: make([]float64, len(idx))}
	if len(idx) == 0 {
		return row
	}
	byCol := make(map[int]int, len(counts))
	for term, c := range counts {
		if col, ok := column[term]; ok {
			byCol[col] = c
		}
	}
	for k, col := range idx {
		row.vals[k] = float64(byCol[col]) * idf[col]
	}
	if norm := vek.Norm(row.vals); norm > 0 {
		vek.DivNumber_Inplace(row.vals, norm)
	}
	return row
}

// pairwise computes the dense symmetric similarity of all rows. Row i is
// scattered into a dense scratch vector and each row j >= i is gathered
// against it.
func pairwise(rows []sparseRow, width int) []float64 {
	n := len(rows)
	scores := make([]float64, n*n)
	scratch := make([]float64, width)
	var gathered []float64

	for i := range rows {
		ri := rows[i]
		if len(ri.idx) == 0 {
			continue
		}
		for k, col := range ri.idx {
			scratch[col] = ri.vals[k]
		}
		for j := i; j < n; j++ {
			rj := rows[j]
			if len(rj.idx) == 0 {
				continue
			}
			gathered = gathered[:0]
			for _, col := range rj.idx {
				gathered = append(gathered, scratch[col])
			}
			s := clamp(vek.Dot(gathered, rj.vals))
			scores[i*n+j] = s
			scores[j*n+i] = s
		}
		for _, col := range ri.idx {
			scratch[col] = 0
		}
	}
	return scores
}

func clamp(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Size returns the number of documents.
func (m *Matrix) Size() int {
	return m.n
}

// Vocabulary returns the number of terms kept after capping.
func (m *Matrix) Vocabulary() int {
	return m.vocab
}

// At returns the similarity of documents i and j, or 0 when either index is
// out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return 0
	}
	return m.scores[i*m.n+j]
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.n {
		return nil
	}
	row := make([]float64, m.n)
	copy(row, m.scores[i*m.n:(i+1)*m.n])
	return row
}

// MostSimilar ranks every other document by descending similarity to index,
// breaking ties by ascending index, and returns the first topN. It returns
// nil for an out-of-range index or a non-positive topN.
func (m *Matrix) MostSimilar(index, topN int) []Neighbor {
	if index < 0 || index >= m.n || topN <= 0 {
		return nil
	}
	row := m.scores[index*m.n : (index+1)*m.n]
	out := make([]Neighbor, 0, m.n-1)
	for j, s := range row {
		if j != index {
			out = append(out, Neighbor{Index: j, Score: s})
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Score > out[b].Score
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
