package symtab

import "triadc/token"

// Identifiers returns the distinct identifier texts of tokens in first-seen order.
func Identifiers(tokens []token.Token) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, tok := range tokens {
		if tok.Kind == token.IDENTIFIER && !seen[tok.Text] {
			seen[tok.Text] = true
			ids = append(ids, tok.Text)
		}
	}
	return ids
}

// Entry holds the probes spent on one identifier. Stored is false when the
// rehash table could not take the identifier; RehashAttempts then counts the
// probes of the failed lookup.
type Entry struct {
	ID             string
	Stored         bool
	RehashAttempts int
	TreeAttempts   int
}

// Report averages rehash probes over stored identifiers only.
type Report struct {
	Entries       []Entry
	Missing       int
	RehashAverage float64
	TreeAverage   float64
}

// Compare loads ids into both tables and measures the probes needed to find each one.
func Compare(ids []string, size int) Report {
	table := NewRehashTable(size)
	tree := NewBinaryTree()
	for _, id := range ids {
		table.Insert(id)
	}
	tree.Fill(ids)

	var report Report
	for _, id := range ids {
		r, stored := table.Find(id)
		b, _ := tree.Find(id)
		report.Entries = append(report.Entries, Entry{ID: id, Stored: stored, RehashAttempts: r, TreeAttempts: b})
		report.TreeAverage += float64(b)
		if !stored {
			report.Missing++
			continue
		}
		report.RehashAverage += float64(r)
	}
	if n := len(report.Entries); n > 0 {
		report.TreeAverage /= float64(n)
	}
	if n := len(report.Entries) - report.Missing; n > 0 {
		report.RehashAverage /= float64(n)
	}
	return report
}
