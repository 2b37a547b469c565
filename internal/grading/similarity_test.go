package grading

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshteinSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "photosynthesis", "the mitochondria is the powerhouse of the cell"} {
		require.Equal(t, 1.0, LevenshteinSimilarity(s, s))
	}
}

func TestLevenshteinSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"osmosis", "osmossis"},
		{"completely", "different"},
	}
	for _, pair := range pairs {
		require.Equal(t, LevenshteinSimilarity(pair[0], pair[1]), LevenshteinSimilarity(pair[1], pair[0]))
	}
}

func TestLevenshteinSimilarityValues(t *testing.T) {
	// kitten -> sitting: distance 3 over max length 7.
	require.InDelta(t, 4.0/7.0, LevenshteinSimilarity("kitten", "sitting"), 1e-9)
	require.Equal(t, 0.0, LevenshteinSimilarity("", "abc"))
	require.Equal(t, 1.0, LevenshteinSimilarity("", ""))
}

func TestCosineSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, CosineSimilarity("the cat sat", "The cat sat!"), 1e-9)
	require.Equal(t, 0.0, CosineSimilarity("", "anything"))
	require.Equal(t, 0.0, CosineSimilarity("alpha beta", "gamma delta"))

	// Half the words shared, equal lengths.
	sim := CosineSimilarity("alpha beta", "alpha gamma")
	require.InDelta(t, 0.5, sim, 1e-9)
}

func TestCompareAnswers(t *testing.T) {
	require.True(t, CompareAnswers("Photosynthesis", "photosynthesis."))
	require.True(t, CompareAnswers("photosynthesis", "photosynthesiss"))
	require.False(t, CompareAnswers("mitosis", "meiosis status quo unrelated"))
	require.False(t, CompareAnswers("cat", "dog"))
}
