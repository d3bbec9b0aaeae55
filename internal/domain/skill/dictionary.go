package skill

import (
	"fmt"
	"regexp"
	"strings"
)

// Definition describes one known skill: a canonical display name, a category
// label, and the lowercase aliases that indicate the skill in free text.
// Alias order matters: the first alias found in a message becomes the evidence.
type Definition struct {
	Name     string
	Category string
	Aliases  []string
}

// Extracted is a single skill detected in a message.
type Extracted struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// Dictionary is an immutable, validated set of skill definitions with
// precompiled alias matchers. Extending it returns a new Dictionary.
type Dictionary struct {
	defs     []Definition
	patterns [][]aliasPattern
}

type aliasPattern struct {
	alias string
	re    *regexp.Regexp
}

// NewDictionary validates the definitions and compiles their alias matchers.
// Duplicate canonical names or aliases shared across definitions are a
// configuration defect and rejected here, before the dictionary is ever used.
func NewDictionary(defs []Definition) (*Dictionary, error) {
	seenNames := make(map[string]struct{}, len(defs))
	seenAliases := make(map[string]string, len(defs)*2)

	d := &Dictionary{
		defs:     make([]Definition, 0, len(defs)),
		patterns: make([][]aliasPattern, 0, len(defs)),
	}

	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("skill definition with empty name")
		}
		if _, ok := seenNames[name]; ok {
			return nil, fmt.Errorf("duplicate skill name: %s", name)
		}
		seenNames[name] = struct{}{}

		if len(def.Aliases) == 0 {
			return nil, fmt.Errorf("skill %s has no aliases", name)
		}

		pats := make([]aliasPattern, 0, len(def.Aliases))
		for _, alias := range def.Aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" {
				return nil, fmt.Errorf("skill %s has an empty alias", name)
			}
			if owner, ok := seenAliases[alias]; ok {
				return nil, fmt.Errorf("alias %q claimed by both %s and %s", alias, owner, name)
			}
			seenAliases[alias] = name

			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(alias) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("compile alias %q for %s: %w", alias, name, err)
			}
			pats = append(pats, aliasPattern{alias: alias, re: re})
		}

		d.defs = append(d.defs, Definition{Name: name, Category: def.Category, Aliases: def.Aliases})
		d.patterns = append(d.patterns, pats)
	}

	return d, nil
}

// Extend returns a new Dictionary with the extra definitions appended after
// the receiver's. The receiver is left untouched.
func (d *Dictionary) Extend(defs ...Definition) (*Dictionary, error) {
	if d == nil {
		return NewDictionary(defs)
	}
	merged := make([]Definition, 0, len(d.defs)+len(defs))
	merged = append(merged, d.defs...)
	merged = append(merged, defs...)
	return NewDictionary(merged)
}

// Definitions returns the definitions in declaration order.
func (d *Dictionary) Definitions() []Definition {
	if d == nil {
		return nil
	}
	out := make([]Definition, len(d.defs))
	copy(out, d.defs)
	return out
}

// Len reports the number of definitions.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.defs)
}

// DefaultDefinitions is the built-in skill catalog. DB-stored extensions are
// appended on top of it at startup.
func DefaultDefinitions() []Definition {
	return []Definition{
		{Name: "Python", Category: "Programming Language", Aliases: []string{"python", "py", "python3"}},
		{Name: "Java", Category: "Programming Language", Aliases: []string{"java"}},
		{Name: "JavaScript", Category: "Programming Language", Aliases: []string{"javascript", "js"}},
		{Name: "TypeScript", Category: "Programming Language", Aliases: []string{"typescript", "ts"}},
		{Name: "SQL", Category: "Database / Query", Aliases: []string{"sql", "t-sql", "pl/sql"}},
		{Name: "React", Category: "Frontend Framework", Aliases: []string{"react", "reactjs"}},
		{Name: "Node.js", Category: "Backend Runtime", Aliases: []string{"node", "node.js", "nodejs"}},
		{Name: "Express", Category: "Backend Framework", Aliases: []string{"express", "expressjs"}},
		{Name: "FastAPI", Category: "Backend Framework", Aliases: []string{"fastapi"}},
		{Name: "Django", Category: "Backend Framework", Aliases: []string{"django"}},
		{Name: "MongoDB", Category: "Database", Aliases: []string{"mongodb", "mongo"}},
		{Name: "PostgreSQL", Category: "Database", Aliases: []string{"postgres", "postgresql"}},
		{Name: "MySQL", Category: "Database", Aliases: []string{"mysql"}},
		{Name: "AWS", Category: "Cloud", Aliases: []string{"aws", "amazon web services"}},
		{Name: "Azure", Category: "Cloud", Aliases: []string{"azure"}},
		{Name: "GCP", Category: "Cloud", Aliases: []string{"gcp", "google cloud"}},
		{Name: "Docker", Category: "DevOps / Containerization", Aliases: []string{"docker"}},
		{Name: "Kubernetes", Category: "DevOps / Orchestration", Aliases: []string{"kubernetes", "k8s"}},
		{Name: "CI/CD", Category: "DevOps", Aliases: []string{"ci/cd", "cicd", "continuous integration", "continuous delivery"}},
		{Name: "GitHub Actions", Category: "DevOps", Aliases: []string{"github actions"}},
		{Name: "Jenkins", Category: "DevOps", Aliases: []string{"jenkins"}},
		{Name: "Machine Learning", Category: "ML / AI", Aliases: []string{"machine learning", "ml", "ml/ai"}},
		{Name: "Data Science", Category: "Data / Analytics", Aliases: []string{"data science", "data scientist"}},
		{Name: "Pandas", Category: "Data / Analytics", Aliases: []string{"pandas"}},
		{Name: "NumPy", Category: "Data / Analytics", Aliases: []string{"numpy", "np"}},
		{Name: "LangChain", Category: "LLM / RAG", Aliases: []string{"langchain"}},
		{Name: "ChromaDB", Category: "Vector Database", Aliases: []string{"chroma", "chromadb"}},
	}
}

// MustDefaultDictionary builds the dictionary from DefaultDefinitions and
// panics on a configuration defect. The defaults are covered by tests, so a
// panic here means a broken build, not a runtime condition.
func MustDefaultDictionary() *Dictionary {
	d, err := NewDictionary(DefaultDefinitions())
	if err != nil {
		panic(err)
	}
	return d
}
