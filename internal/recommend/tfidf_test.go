package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"cats", "are", "great"}, tokenize("Cats are great!"))
	// single-character tokens are dropped
	assert.Equal(t, []string{"love", "go"}, tokenize("I love go"))
	assert.Empty(t, tokenize("! ? ."))
}

func TestVectorizerFitEmptyVocabulary(t *testing.T) {
	var v Vectorizer
	err := v.Fit([]string{"", "a b c"})
	require.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestVectorizerTransformRowsNormalized(t *testing.T) {
	var v Vectorizer
	rows, err := v.FitTransform([]string{"cats are great", "dogs are great"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		var sq float64
		for _, x := range row {
			sq += x * x
		}
		assert.InDelta(t, 1.0, sq, 1e-9)
	}
}

func TestVectorizerTransformDropsUnknownTokens(t *testing.T) {
	var v Vectorizer
	require.NoError(t, v.Fit([]string{"cats are great"}))
	rows := v.Transform([]string{"zebras only"})
	for _, x := range rows[0] {
		assert.Zero(t, x)
	}
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	// zero vector scores zero, not NaN
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestCorpusVectorRanksLexicalOverlap(t *testing.T) {
	var v Vectorizer
	require.NoError(t, v.Fit([]string{"cats are great", "i love cats"}))
	viewer := v.CorpusVector([]string{"cats are great", "i love cats"})
	a := v.CorpusVector([]string{"dogs are great"})
	b := v.CorpusVector([]string{"cats are wonderful"})
	// overlap on the viewer's dominant term (cats) must outrank
	// overlap on incidental terms (are, great)
	assert.Greater(t, Cosine(viewer, b), Cosine(viewer, a))
}
