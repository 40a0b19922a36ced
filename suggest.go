// Copyright (c) 2025 Visvasity LLC

package subcommand

// DefaultThreshold is the edit distance below which a registered name is
// offered as a suggestion for an unknown command.
const DefaultThreshold = 2

// Suggest returns the candidates whose edit distance from name is strictly
// less than threshold, in the order they appear in candidates. A threshold of
// zero or less disables suggestions.
func Suggest(name string, candidates []string, threshold int) []string {
	var matches []string
	for _, c := range candidates {
		if Distance(name, c) < threshold {
			matches = append(matches, c)
		}
	}
	return matches
}
