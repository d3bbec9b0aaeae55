package skill

import "strings"

// MatchConfidence is the fixed score attached to every keyword match. It is a
// heuristic certainty, not a calibrated probability.
const MatchConfidence = 0.7

// Extract scans text against the dictionary and returns one Extracted entry
// per matched definition, in dictionary declaration order.
//
// Matching is case-insensitive and whole-word: an alias inside a longer token
// ("javascripting") does not count. Within a definition the aliases are tried
// in declared order and the first hit wins, so a message can never produce two
// entries for the same canonical name.
func (d *Dictionary) Extract(text string) []Extracted {
	if d == nil || text == "" {
		return []Extracted{}
	}

	lowered := strings.ToLower(text)
	found := make([]Extracted, 0, 4)

	for i, def := range d.defs {
		for _, pat := range d.patterns[i] {
			if pat.re.MatchString(lowered) {
				found = append(found, Extracted{
					Name:       def.Name,
					Category:   def.Category,
					Confidence: MatchConfidence,
					Evidence:   pat.alias,
				})
				break
			}
		}
	}

	return found
}
