// Package matching compares a candidate's skill set against a job
// description's and scores the overlap.
package matching

import (
	"sort"
	"strings"

	"skill-finder/internal/domain/skill"
)

// Result holds the overlap metrics for one comparison.
type Result struct {
	MatchScore      float64
	CandidateSkills []skill.Extracted
	JDSkills        []skill.Extracted
	MatchedSkills   []string
	MissingSkills   []string
	ExtraSkills     []string
}

// Compare computes set overlap between the two skill lists. Entries with a
// blank name are dropped before comparison. Names are lowercased for the set
// math, matched/missing/extra come back sorted, and the score is
// |matched| / |jd names| with a zero default when the JD yields no skills.
func Compare(candidate, jd []skill.Extracted) Result {
	candidate = dropBlank(candidate)
	jd = dropBlank(jd)

	candSet := nameSet(candidate)
	jdSet := nameSet(jd)

	matched := make([]string, 0, len(jdSet))
	missing := make([]string, 0, len(jdSet))
	for name := range jdSet {
		if _, ok := candSet[name]; ok {
			matched = append(matched, name)
		} else {
			missing = append(missing, name)
		}
	}

	extra := make([]string, 0, len(candSet))
	for name := range candSet {
		if _, ok := jdSet[name]; !ok {
			extra = append(extra, name)
		}
	}

	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)

	score := 0.0
	if len(jdSet) > 0 {
		score = float64(len(matched)) / float64(len(jdSet))
	}

	return Result{
		MatchScore:      score,
		CandidateSkills: candidate,
		JDSkills:        jd,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExtraSkills:     extra,
	}
}

func dropBlank(in []skill.Extracted) []skill.Extracted {
	out := make([]skill.Extracted, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func nameSet(in []skill.Extracted) map[string]struct{} {
	set := make(map[string]struct{}, len(in))
	for _, s := range in {
		set[strings.ToLower(s.Name)] = struct{}{}
	}
	return set
}
