// Package roles maps a set of detected skill names to suggested job roles.
//
// Two rule variants exist on purpose: the profile endpoint and the chat
// composer grew slightly different thresholds (the chat variant also accepts
// SQL for Backend Engineer, Data Science for the data role, and Machine
// Learning for the LLM role). They are kept distinct rather than unified.
package roles

const (
	RoleFullStack = "Full-Stack Developer"
	RoleBackend   = "Backend Engineer"
	RoleDevOps    = "DevOps / Cloud Engineer"
	RoleData      = "Data Engineer / Data Analyst"
	RoleLLM       = "LLM / RAG Engineer"
)

// InferProfile applies the profile-endpoint rule set.
func InferProfile(skillNames []string) []string {
	names := toSet(skillNames)
	out := make([]string, 0, 5)

	if names["React"] && (names["FastAPI"] || names["Node.js"] || names["Express"]) {
		out = append(out, RoleFullStack)
	}
	if anyOf(names, "FastAPI", "Django", "Node.js", "Express", "REST API") {
		out = append(out, RoleBackend)
	}
	if anyOf(names, "AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "GitHub Actions") {
		out = append(out, RoleDevOps)
	}
	if anyOf(names, "Pandas", "NumPy", "SQL", "PostgreSQL", "MongoDB") {
		out = append(out, RoleData)
	}
	if anyOf(names, "LangChain", "ChromaDB") {
		out = append(out, RoleLLM)
	}

	return dedupe(out)
}

// InferChat applies the chat-composer rule set.
func InferChat(skillNames []string) []string {
	names := toSet(skillNames)
	out := make([]string, 0, 5)

	if names["React"] && (names["FastAPI"] || names["Node.js"] || names["Express"]) {
		out = append(out, RoleFullStack)
	}
	if anyOf(names, "FastAPI", "Django", "Node.js", "Express", "SQL", "REST API") {
		out = append(out, RoleBackend)
	}
	if anyOf(names, "AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "GitHub Actions") {
		out = append(out, RoleDevOps)
	}
	if anyOf(names, "Pandas", "NumPy", "SQL", "PostgreSQL", "MongoDB", "Data Science") {
		out = append(out, RoleData)
	}
	if anyOf(names, "LangChain", "ChromaDB", "Machine Learning") {
		out = append(out, RoleLLM)
	}

	return dedupe(out)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

func anyOf(set map[string]bool, names ...string) bool {
	for _, n := range names {
		if set[n] {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, r := range in {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
