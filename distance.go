// Copyright (c) 2025 Visvasity LLC

package subcommand

// Distance returns the Levenshtein edit distance between a and b, counted in
// Unicode code points: the minimum number of single character insertions,
// deletions or substitutions that turn a into b.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// table[i][j] is the distance between ra[:i] and rb[:j].
	table := make([][]int, len(ra)+1)
	for i := range table {
		table[i] = make([]int, len(rb)+1)
		table[i][0] = i
	}
	for j := range table[0] {
		table[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			table[i][j] = min(
				table[i-1][j]+1,      // deletion
				table[i][j-1]+1,      // insertion
				table[i-1][j-1]+cost, // substitution
			)
		}
	}
	return table[len(ra)][len(rb)]
}
