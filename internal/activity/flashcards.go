package activity

import (
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
)

// markUnseen flags a card with no self-report yet.
const markUnseen = -1

// Flashcards sequentially presents front/back recall cards. The learner
// self-reports "knew it" or "did not know"; each card contributes at most
// once even if revisited. Completion is reaching the end of the deck.
type Flashcards struct {
	title    string
	cards    []catalog.Flashcard
	marks    []int // markUnseen, 0 (didn't know), 1 (knew)
	index    int
	revealed bool
	done     bool
	started  time.Time
}

var _ Plugin = (*Flashcards)(nil)

// NewFlashcards builds the plugin from a definition. A deck with no cards
// is trivially complete with zero score.
func NewFlashcards(def catalog.ActivityDef, now time.Time) *Flashcards {
	f := &Flashcards{
		title:   def.Title,
		cards:   def.Flashcards,
		marks:   make([]int, len(def.Flashcards)),
		started: now,
	}
	for i := range f.marks {
		f.marks[i] = markUnseen
	}
	if len(f.cards) == 0 {
		f.done = true
	}
	return f
}

func (f *Flashcards) Kind() catalog.ActivityKind { return catalog.ActivityFlashcards }

func (f *Flashcards) Title() string { return f.title }

// Current returns the active card.
func (f *Flashcards) Current() catalog.Flashcard {
	if f.index < 0 || f.index >= len(f.cards) {
		return catalog.Flashcard{}
	}
	return f.cards[f.index]
}

// Index returns the active card position.
func (f *Flashcards) Index() int { return f.index }

// Revealed reports whether the active card's back is showing.
func (f *Flashcards) Revealed() bool { return f.revealed }

// Reveal shows the back of the active card.
func (f *Flashcards) Reveal() {
	if !f.done {
		f.revealed = true
	}
}

// Mark records the learner's self-report for the active card and advances.
// A revisited card keeps its first mark; only the advance happens.
func (f *Flashcards) Mark(knew bool) {
	if f.done {
		return
	}
	if f.marks[f.index] == markUnseen {
		if knew {
			f.marks[f.index] = 1
		} else {
			f.marks[f.index] = 0
		}
	}
	if f.index+1 >= len(f.cards) {
		f.done = true
		return
	}
	f.index++
	f.revealed = false
}

// Prev revisits the previous card without clearing its mark.
func (f *Flashcards) Prev() bool {
	if f.done || f.index <= 0 {
		return false
	}
	f.index--
	f.revealed = false
	return true
}

func (f *Flashcards) Progress() (int, int) {
	done := 0
	for _, m := range f.marks {
		if m != markUnseen {
			done++
		}
	}
	return done, len(f.cards)
}

func (f *Flashcards) Completed() bool { return f.done }

func (f *Flashcards) Outcome(now time.Time) Outcome {
	known := 0
	for _, m := range f.marks {
		if m == 1 {
			known++
		}
	}
	return Outcome{
		Kind:         catalog.ActivityFlashcards,
		Score:        known * unitScore,
		SecondsSpent: elapsedSecs(f.started, now),
		Units:        len(f.cards),
		CorrectUnits: known,
	}
}
