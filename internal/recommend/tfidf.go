package recommend

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyVocabulary is returned by Fit when the corpus yields no
// tokens, e.g. every document is empty or below the token length
// threshold. Callers treat it as "no recommendation possible".
var ErrEmptyVocabulary = errors.New("tfidf: empty vocabulary")

// tokens of two or more word characters, lowercased
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

func tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

// Vectorizer is a term-frequency / inverse-document-frequency encoder.
// Fit learns the vocabulary and document frequencies from one corpus;
// Transform projects any corpus into that fixed vocabulary. Terms are
// weighted with smoothed idf and each row is l2-normalized.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// Fit learns vocabulary and idf weights from docs.
func (v *Vectorizer) Fit(docs []string) error {
	v.vocab = make(map[string]int)
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			if _, ok := v.vocab[tok]; !ok {
				v.vocab[tok] = 0 // index assigned below
			}
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}
	if len(v.vocab) == 0 {
		return ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(v.vocab))
	for t := range v.vocab {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.idf = make([]float64, len(terms))
	for i, t := range terms {
		v.vocab[t] = i
		// smoothed idf: every term behaves as if seen in one extra doc
		v.idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return nil
}

// Transform encodes docs into the fitted vocabulary space, one
// l2-normalized row per document. Out-of-vocabulary tokens are dropped.
func (v *Vectorizer) Transform(docs []string) [][]float64 {
	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		row := make([]float64, len(v.idf))
		for _, tok := range tokenize(doc) {
			if j, ok := v.vocab[tok]; ok {
				row[j]++
			}
		}
		floats.Mul(row, v.idf)
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		rows[i] = row
	}
	return rows
}

// FitTransform is Fit followed by Transform on the same corpus.
func (v *Vectorizer) FitTransform(docs []string) ([][]float64, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs), nil
}

// CorpusVector aggregates a whole corpus into one l2-normalized
// vector: term counts summed across all documents, idf-weighted. This
// is the unit the recommender compares users by.
func (v *Vectorizer) CorpusVector(docs []string) []float64 {
	row := make([]float64, len(v.idf))
	for _, doc := range docs {
		for _, tok := range tokenize(doc) {
			if j, ok := v.vocab[tok]; ok {
				row[j]++
			}
		}
	}
	floats.Mul(row, v.idf)
	if norm := floats.Norm(row, 2); norm > 0 {
		floats.Scale(1/norm, row)
	}
	return row
}

// Cosine is the cosine similarity of two equal-length vectors;
// zero vectors score 0.
func Cosine(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
