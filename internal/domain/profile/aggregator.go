// Package profile folds a session's extracted skills into ranked statistics.
package profile

import (
	"sort"

	"skill-finder/internal/domain/roles"
	"skill-finder/internal/domain/skill"
)

// Stat is the per-name aggregate across a session's turns.
type Stat struct {
	Name          string
	Category      string
	Count         int
	AvgConfidence float64
}

// Profile is the aggregated view of a session.
type Profile struct {
	SessionID      string
	TotalTurns     int
	TotalSkills    int
	Skills         []Stat
	SuggestedRoles []string
}

// Aggregate folds every skill from every turn into per-name stats, keyed by
// exact canonical name. When the same name shows up with different categories
// across turns, the first category seen wins; later ones are ignored.
//
// Stats are sorted by count descending, then average confidence descending,
// with a stable sort so equal entries keep first-seen order. Role suggestions
// use the profile rule set over the names in sorted order. The caller decides
// what an empty turn list means; this function just aggregates.
func Aggregate(sessionID string, turnSkills [][]skill.Extracted) Profile {
	type acc struct {
		name     string
		category string
		count    int
		sumConf  float64
	}

	byName := make(map[string]*acc)
	order := make([]string, 0)

	for _, turn := range turnSkills {
		for _, s := range turn {
			if s.Name == "" {
				continue
			}
			a, ok := byName[s.Name]
			if !ok {
				category := s.Category
				if category == "" {
					category = "Skill"
				}
				a = &acc{name: s.Name, category: category}
				byName[s.Name] = a
				order = append(order, s.Name)
			}
			a.count++
			a.sumConf += s.Confidence
		}
	}

	stats := make([]Stat, 0, len(order))
	for _, name := range order {
		a := byName[name]
		stats = append(stats, Stat{
			Name:          a.name,
			Category:      a.category,
			Count:         a.count,
			AvgConfidence: a.sumConf / float64(a.count),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].AvgConfidence > stats[j].AvgConfidence
	})

	names := make([]string, 0, len(stats))
	for _, s := range stats {
		names = append(names, s.Name)
	}

	return Profile{
		SessionID:      sessionID,
		TotalTurns:     len(turnSkills),
		TotalSkills:    len(stats),
		Skills:         stats,
		SuggestedRoles: roles.InferProfile(names),
	}
}
