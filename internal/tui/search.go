package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/agentally/buyerdesk/internal/database/repository"
)

// rankProperties filters and orders properties by closeness to the query.
// Substring hits rank first; everything else is ordered by edit distance
// against the title, with distant matches dropped entirely.
func rankProperties(props []repository.Property, query string) []repository.Property {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return props
	}
	type scored struct {
		prop repository.Property
		dist int
	}
	var matches []scored
	for _, p := range props {
		title := strings.ToLower(p.Title)
		addr := strings.ToLower(p.Address)
		if strings.Contains(title, q) || strings.Contains(addr, q) {
			matches = append(matches, scored{prop: p, dist: 0})
			continue
		}
		best := len(title)
		for _, word := range strings.Fields(title) {
			if d := levenshtein.ComputeDistance(q, word); d < best {
				best = d
			}
		}
		if best <= len(q)/2 {
			matches = append(matches, scored{prop: p, dist: best})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})
	out := make([]repository.Property, len(matches))
	for i, m := range matches {
		out[i] = m.prop
	}
	return out
}
