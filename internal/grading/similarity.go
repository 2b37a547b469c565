package grading

import (
	"math"
	"strings"
)

// matchThreshold is the Levenshtein similarity above which two normalized
// answers are treated as equivalent. It is a grading policy constant, not a
// user-configurable knob.
const matchThreshold = 0.85

// LevenshteinSimilarity returns a similarity in [0, 1] derived from the edit
// distance between a and b: (maxLen - distance) / maxLen. Two empty strings
// score 1. Symmetric in its arguments.
func LevenshteinSimilarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	return float64(maxLen-levenshtein(a, b)) / float64(maxLen)
}

// levenshtein computes edit distance with unit insert/delete/substitute
// costs, keeping a single rolling row.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// CosineSimilarity compares two texts as word-frequency vectors over their
// combined vocabulary. Returns 0 when either text has no words.
func CosineSimilarity(a, b string) float64 {
	freqA := wordFrequencies(a)
	freqB := wordFrequencies(b)

	var dot, normA, normB float64
	for _, count := range freqA {
		normA += float64(count * count)
	}
	for word, count := range freqB {
		normB += float64(count * count)
		dot += float64(freqA[word] * count)
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func wordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, word := range strings.Fields(Normalize(text)) {
		freq[word]++
	}
	return freq
}

// CompareAnswers reports whether two free-form answers should be treated as
// equivalent: exact match after normalization, or Levenshtein similarity
// above matchThreshold.
func CompareAnswers(given, expected string) bool {
	g := Normalize(given)
	e := Normalize(expected)
	if g == e {
		return true
	}
	return LevenshteinSimilarity(g, e) > matchThreshold
}
