package conversation

import (
	"strings"

	"skill-finder/internal/domain/roles"
	"skill-finder/internal/domain/skill"
)

var greetings = map[string]struct{}{
	"hi":        {},
	"hello":     {},
	"hey":       {},
	"hii":       {},
	"hey there": {},
	"hola":      {},
}

const greetingReply = "Hey! I'm your skill assistant.\n\n" +
	"Tell me about your experience or paste a resume bullet, and I'll identify your key skills " +
	"and suggest matching roles."

const noSkillsReply = "Thanks for sharing! I didn't catch specific technologies from that message.\n\n" +
	"Try mentioning some languages (Python, JavaScript), frameworks (React, FastAPI, Django), " +
	"databases (MongoDB, PostgreSQL), or cloud tools (AWS, Docker), and I'll extract skills " +
	"and build your profile."

const noRolesSentence = "This combination of skills can map to multiple roles depending on your interests and experience."

// Compose builds the deterministic reply for a message and its extracted
// skills. When no skills were found, an exact greeting gets the introduction
// reply and anything else gets the guidance reply. Otherwise the reply lists
// the skills in extraction order and the roles suggested by the chat rules.
func Compose(message string, skills []skill.Extracted) string {
	if len(skills) == 0 {
		text := strings.ToLower(strings.TrimSpace(message))
		if _, ok := greetings[text]; ok {
			return greetingReply
		}
		return noSkillsReply
	}

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}

	rolesPart := noRolesSentence
	if suggested := roles.InferChat(names); len(suggested) > 0 {
		rolesPart = "From this stack, some good role targets could be: " + strings.Join(suggested, ", ") + "."
	}

	var b strings.Builder
	b.WriteString("Nice, thanks for the context!\n\n")
	b.WriteString("I can clearly see these skills in your message: ")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(".\n")
	b.WriteString(rolesPart)
	b.WriteString("\n\nWhat kind of roles are you aiming for (backend, full-stack, data, DevOps, AI/RAG)? ")
	b.WriteString("I can help you map your skills to those roles and suggest what to learn next.")
	return b.String()
}
