package activity

import (
	"strings"
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
)

// FillBlank asks the learner to fill every blank slot in every question.
// Answers match the canonical answer or any accepted alternative after
// trimming and case folding. Scoring happens only once every blank in every
// question has non-empty input.
type FillBlank struct {
	title     string
	questions []catalog.BlankQuestion
	inputs    [][]string
	submitted bool
	correct   int
	started   time.Time
}

var _ Plugin = (*FillBlank)(nil)

// NewFillBlank builds the plugin from a definition. Questions with zero
// blanks are malformed and dropped; if nothing valid remains the plugin is
// trivially complete with zero score.
func NewFillBlank(def catalog.ActivityDef, now time.Time) *FillBlank {
	var valid []catalog.BlankQuestion
	for _, q := range def.BlankQuestions {
		if len(q.Blanks) > 0 {
			valid = append(valid, q)
		}
	}

	f := &FillBlank{
		title:     def.Title,
		questions: valid,
		inputs:    make([][]string, len(valid)),
		started:   now,
	}
	for i, q := range valid {
		f.inputs[i] = make([]string, len(q.Blanks))
	}
	if len(valid) == 0 {
		f.submitted = true
	}
	return f
}

func (f *FillBlank) Kind() catalog.ActivityKind { return catalog.ActivityFillBlank }

func (f *FillBlank) Title() string { return f.title }

// Questions returns the valid questions.
func (f *FillBlank) Questions() []catalog.BlankQuestion { return f.questions }

// InputAt returns the learner's current input for a blank.
func (f *FillBlank) InputAt(q, b int) string {
	if q < 0 || q >= len(f.inputs) || b < 0 || b >= len(f.inputs[q]) {
		return ""
	}
	return f.inputs[q][b]
}

// SetInput records the learner's text for blank b of question q.
func (f *FillBlank) SetInput(q, b int, value string) bool {
	if f.submitted {
		return false
	}
	if q < 0 || q >= len(f.inputs) || b < 0 || b >= len(f.inputs[q]) {
		return false
	}
	f.inputs[q][b] = value
	return true
}

// AllFilled reports whether every blank in every question has non-empty
// input.
func (f *FillBlank) AllFilled() bool {
	for _, blanks := range f.inputs {
		for _, v := range blanks {
			if strings.TrimSpace(v) == "" {
				return false
			}
		}
	}
	return true
}

// Submit evaluates all inputs. It is rejected until AllFilled.
func (f *FillBlank) Submit() bool {
	if f.submitted || !f.AllFilled() {
		return false
	}
	for qi, q := range f.questions {
		for bi, blank := range q.Blanks {
			if matchesBlank(blank, f.inputs[qi][bi]) {
				f.correct++
			}
		}
	}
	f.submitted = true
	return true
}

// matchesBlank checks input against the canonical answer and alternatives,
// case-insensitive with surrounding whitespace trimmed on both sides.
func matchesBlank(blank catalog.Blank, input string) bool {
	normalized := normalizeAnswer(input)
	if normalized == normalizeAnswer(blank.Answer) {
		return true
	}
	for _, alt := range blank.Alternatives {
		if normalized == normalizeAnswer(alt) {
			return true
		}
	}
	return false
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (f *FillBlank) Progress() (int, int) {
	filled, total := 0, 0
	for _, blanks := range f.inputs {
		for _, v := range blanks {
			total++
			if strings.TrimSpace(v) != "" {
				filled++
			}
		}
	}
	return filled, total
}

func (f *FillBlank) Completed() bool { return f.submitted }

// TotalBlanks returns the number of valid blank slots.
func (f *FillBlank) TotalBlanks() int {
	total := 0
	for _, q := range f.questions {
		total += len(q.Blanks)
	}
	return total
}

func (f *FillBlank) Outcome(now time.Time) Outcome {
	return Outcome{
		Kind:         catalog.ActivityFillBlank,
		Score:        f.correct * unitScore,
		SecondsSpent: elapsedSecs(f.started, now),
		Units:        f.TotalBlanks(),
		CorrectUnits: f.correct,
	}
}
