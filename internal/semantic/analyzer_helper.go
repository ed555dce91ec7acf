package semantic

func (a *Analyzer) findSimilarVariables(name string) []string {
	var similar []string

	for _, symbol := range a.symbols.Symbols() {
		if levenshteinDistance(name, symbol.Name) <= 2 && len(symbol.Name) > 1 {
			similar = append(similar, symbol.Name)
		}
	}

	return similar
}

func levenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	previous := make([]int, len(ra)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 0; i < len(rb); i++ {
		current := make([]int, len(ra)+1)
		current[0] = i + 1

		for j := 0; j < len(ra); j++ {
			cost := 0
			if ra[j] != rb[i] {
				cost = 1
			}
			current[j+1] = min(
				current[j]+1,     // insertion
				previous[j+1]+1,  // deletion
				previous[j]+cost, // substitution
			)
		}
		previous = current
	}

	return previous[len(ra)]
}
