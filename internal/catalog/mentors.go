package catalog

// Mentor is a recurring guide character tied to content items through
// ContentItem.MentorID. Affinity points accumulate per mentor as the
// learner completes challenges from their content.
type Mentor struct {
	ID       string
	Name     string
	Emoji    string
	Messages []string
}

var mentors = map[string]Mentor{
	"prof-helena": {
		ID:    "prof-helena",
		Name:  "Profa. Helena",
		Emoji: "👩‍🏫",
		Messages: []string{
			"Muito bem! Respira fundo e vamos para a próxima parte.",
			"Você está indo muito bem. Continue nesse ritmo!",
			"Ótimo progresso! Cada seção lida é um passo a mais rumo ao ENEM.",
		},
	},
	"prof-carlos": {
		ID:    "prof-carlos",
		Name:  "Prof. Carlos",
		Emoji: "🧑‍🏫",
		Messages: []string{
			"Excelente! Anota os pontos principais antes de seguir.",
			"Boa! Quando o assunto fica difícil é que a gente mais aprende.",
			"Mandou bem! Falta pouco para fechar esse conteúdo.",
		},
	},
}

var defaultMentor = Mentor{
	ID:    "",
	Name:  "Mentor",
	Emoji: "🤖",
	Messages: []string{
		"Bom trabalho! Vamos continuar.",
		"Ótimo ritmo de estudo. Siga em frente!",
	},
}

// MentorByID resolves a mentor, falling back to a generic guide when the
// content references an unknown ID.
func MentorByID(id string) Mentor {
	if m, ok := mentors[id]; ok {
		return m
	}
	return defaultMentor
}

// MessageFor picks a deterministic encouragement line based on how far the
// learner has progressed.
func (m Mentor) MessageFor(step int) string {
	if len(m.Messages) == 0 {
		return "Vamos continuar!"
	}
	if step < 0 {
		step = 0
	}
	return m.Messages[step%len(m.Messages)]
}
