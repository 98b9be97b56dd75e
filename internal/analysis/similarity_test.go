package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"кот", "", 3},
		{"", "код", 3},
		{"кот", "кот", 0},
		{"кот", "код", 1},
		{"платье", "платья", 1},
		{"рубашка", "рубашки", 1},
		{"туфли", "сапоги", 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 1.0, Similarity("кот", "кот"))
	assert.Equal(t, 0.0, Similarity("", "кот"))
	assert.InDelta(t, 6.0/7.0, Similarity("рубашка", "рубашки"), 1e-9)
	assert.InDelta(t, 5.0/6.0, Similarity("платье", "платья"), 1e-9)
}

func TestSimilarity_Symmetric(t *testing.T) {
	assert.Equal(t, Similarity("платье", "пальто"), Similarity("пальто", "платье"))
}
