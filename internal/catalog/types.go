package catalog

// Subject represents an ENEM exam area.
type Subject string

const (
	SubjectMath       Subject = "matematica"
	SubjectLanguages  Subject = "linguagens"
	SubjectHumanities Subject = "ciencias-humanas"
	SubjectNature     Subject = "ciencias-da-natureza"
	SubjectEssay      Subject = "redacao"
)

// AllSubjects returns all subjects in display order.
func AllSubjects() []Subject {
	return []Subject{
		SubjectMath,
		SubjectLanguages,
		SubjectHumanities,
		SubjectNature,
		SubjectEssay,
	}
}

// SubjectDisplayName returns a human-readable name for a subject.
func SubjectDisplayName(s Subject) string {
	switch s {
	case SubjectMath:
		return "Matemática"
	case SubjectLanguages:
		return "Linguagens e Códigos"
	case SubjectHumanities:
		return "Ciências Humanas"
	case SubjectNature:
		return "Ciências da Natureza"
	case SubjectEssay:
		return "Redação"
	default:
		return string(s)
	}
}

// Difficulty is the declared difficulty of a content item.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Fácil"
	case DifficultyMedium:
		return "Médio"
	case DifficultyHard:
		return "Difícil"
	default:
		return string(d)
	}
}

// ActivityKind identifies an interactive practice variant.
type ActivityKind string

const (
	ActivityFlashcards ActivityKind = "flashcards"
	ActivityDragDrop   ActivityKind = "drag-drop"
	ActivityFillBlank  ActivityKind = "fill-blank"
)

// Flashcard is a single front/back recall card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// DragItem is one draggable item with its correct category.
type DragItem struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Blank is one fillable slot with a canonical answer and accepted alternatives.
type Blank struct {
	Answer       string   `json:"answer"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// BlankQuestion is a fill-in-the-blank prompt with one or more slots.
// The prompt uses "___" markers in reading order, one per blank.
type BlankQuestion struct {
	Prompt string  `json:"prompt"`
	Blanks []Blank `json:"blanks"`
}

// ActivityDef declares one interactive practice activity for a content item.
// Exactly one of the payload slices is populated, matching Kind.
type ActivityDef struct {
	Kind           ActivityKind    `json:"kind"`
	Title          string          `json:"title"`
	Flashcards     []Flashcard     `json:"flashcards,omitempty"`
	DragItems      []DragItem      `json:"drag_items,omitempty"`
	Categories     []string        `json:"categories,omitempty"`
	BlankQuestions []BlankQuestion `json:"blank_questions,omitempty"`
}

// QuizQuestion is a single multiple-choice quiz question.
type QuizQuestion struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Challenge is the final open-ended challenge of a content item.
type Challenge struct {
	Prompt           string `json:"prompt"`
	Points           int    `json:"points"`
	BadgeID          string `json:"badge_id"`
	BadgeName        string `json:"badge_name"`
	BadgeDescription string `json:"badge_description"`
	BadgeIcon        string `json:"badge_icon"`
}

// ContentItem is one topic's theory text plus optional practice material.
// Immutable for the duration of a session; owned by the catalog.
type ContentItem struct {
	ID               string         `json:"id"`
	Subject          Subject        `json:"subject"`
	Theme            string         `json:"theme"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Text             string         `json:"text"`
	Difficulty       Difficulty     `json:"difficulty"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	MentorID         string         `json:"mentor_id"`
	Activities       []ActivityDef  `json:"activities,omitempty"`
	Quiz             []QuizQuestion `json:"quiz,omitempty"`
	Challenge        *Challenge     `json:"challenge,omitempty"`
}

// HasPractice reports whether the item declares any interactive activities.
func (c *ContentItem) HasPractice() bool {
	return len(c.Activities) > 0
}

// HasQuiz reports whether the item declares a quiz question set.
func (c *ContentItem) HasQuiz() bool {
	return len(c.Quiz) > 0
}

// HasChallenge reports whether the item declares a final challenge.
func (c *ContentItem) HasChallenge() bool {
	return c.Challenge != nil
}
