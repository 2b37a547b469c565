package grading

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "the quick brown fox", Normalize("  The quick,  BROWN fox!  "))
	require.Equal(t, "whats up", Normalize("What's up?"))
	require.Equal(t, "", Normalize(""))
	require.Equal(t, "", Normalize("?!...,;:"))
	require.Equal(t, "a b c", Normalize("a\tb\n\nc"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"?!...,;:",
		"Hello,   World!",
		"  mixed CASE with\ttabs\nand newlines  ",
		"already normalized text",
	}
	for _, input := range inputs {
		once := Normalize(input)
		require.Equal(t, once, Normalize(once), "input %q", input)
	}
}
