package analysis

// levenshtein computes the edit distance between two strings using a
// single-row dynamic programming table over runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		prev := row[0]
		row[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur := row[i]
			row[i] = min(row[i]+1, min(row[i-1]+1, prev+cost))
			prev = cur
		}
	}

	return row[len(ra)]
}

// Similarity returns the normalized edit-distance similarity of two
// strings in [0,1]. Two empty strings are identical by definition.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-levenshtein(a, b)) / float64(maxLen)
}
