package activity

import (
	"testing"
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
)

var t0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestFlashcards_KnownCardsScore(t *testing.T) {
	def := catalog.ActivityDef{
		Kind: catalog.ActivityFlashcards,
		Flashcards: []catalog.Flashcard{
			{Front: "a", Back: "1"},
			{Front: "b", Back: "2"},
			{Front: "c", Back: "3"},
		},
	}
	f := NewFlashcards(def, t0)

	f.Reveal()
	f.Mark(true)
	f.Mark(false)
	f.Mark(true)

	if !f.Completed() {
		t.Fatal("deck should be complete after marking every card")
	}
	out := f.Outcome(t0.Add(45 * time.Second))
	if out.Score != 20 {
		t.Errorf("Score = %d, want 20", out.Score)
	}
	if out.CorrectUnits != 2 || out.Units != 3 {
		t.Errorf("units = %d/%d, want 2/3", out.CorrectUnits, out.Units)
	}
	if out.SecondsSpent != 45 {
		t.Errorf("SecondsSpent = %d, want 45", out.SecondsSpent)
	}
}

func TestFlashcards_RevisitedCardContributesOnce(t *testing.T) {
	def := catalog.ActivityDef{
		Kind: catalog.ActivityFlashcards,
		Flashcards: []catalog.Flashcard{
			{Front: "a", Back: "1"},
			{Front: "b", Back: "2"},
		},
	}
	f := NewFlashcards(def, t0)

	f.Mark(false) // card 1: didn't know
	if !f.Prev() {
		t.Fatal("Prev should be allowed")
	}
	f.Mark(true) // revisit card 1: first mark stands
	f.Mark(true) // card 2

	out := f.Outcome(t0)
	if out.Score != 10 {
		t.Errorf("Score = %d, want 10 (revisited card kept its first mark)", out.Score)
	}
}

func TestFlashcards_EmptyDeckTriviallyComplete(t *testing.T) {
	f := NewFlashcards(catalog.ActivityDef{Kind: catalog.ActivityFlashcards}, t0)
	if !f.Completed() {
		t.Fatal("empty deck should be trivially complete")
	}
	if out := f.Outcome(t0); out.Score != 0 {
		t.Errorf("Score = %d, want 0", out.Score)
	}
}

func dragDef() catalog.ActivityDef {
	return catalog.ActivityDef{
		Kind:       catalog.ActivityDragDrop,
		Categories: []string{"Crescente", "Decrescente"},
		DragItems: []catalog.DragItem{
			{Label: "i1", Category: "Crescente"},
			{Label: "i2", Category: "Decrescente"},
			{Label: "i3", Category: "Crescente"},
			{Label: "i4", Category: "Decrescente"},
			{Label: "i5", Category: "Crescente"},
		},
	}
}

func TestDragDrop_PartialSubmissionRejected(t *testing.T) {
	// 5 items, only 4 placed -> submission rejected, no score computed.
	d := NewDragDrop(dragDef(), t0)
	for i := 0; i < 4; i++ {
		d.Place(i, 0)
	}
	if d.Submit() {
		t.Fatal("Submit must be rejected with an unplaced item")
	}
	if d.Completed() {
		t.Error("plugin must not be complete before a full submission")
	}

	d.Place(4, 0)
	if !d.Submit() {
		t.Fatal("Submit should succeed with all items placed")
	}
}

func TestDragDrop_ScoresTenPerCorrectItem(t *testing.T) {
	d := NewDragDrop(dragDef(), t0)
	d.Place(0, 0) // correct
	d.Place(1, 1) // correct
	d.Place(2, 1) // wrong
	d.Place(3, 1) // correct
	d.Place(4, 1) // wrong
	if !d.Submit() {
		t.Fatal("Submit should succeed")
	}

	out := d.Outcome(t0)
	if out.Score != 30 {
		t.Errorf("Score = %d, want 30", out.Score)
	}
	if out.CorrectUnits != 3 {
		t.Errorf("CorrectUnits = %d, want 3", out.CorrectUnits)
	}
}

func TestDragDrop_ResetClearsPlacements(t *testing.T) {
	d := NewDragDrop(dragDef(), t0)
	d.Place(0, 1)
	d.Place(1, 0)
	d.Reset()

	if done, _ := d.Progress(); done != 0 {
		t.Errorf("placed after reset = %d, want 0", done)
	}
	if d.Submit() {
		t.Error("Submit must be rejected right after reset")
	}
}

func TestDragDrop_NoItemsTriviallyComplete(t *testing.T) {
	d := NewDragDrop(catalog.ActivityDef{Kind: catalog.ActivityDragDrop, Categories: []string{"x"}}, t0)
	if !d.Completed() {
		t.Fatal("no items should be trivially complete")
	}
	if out := d.Outcome(t0); out.Score != 0 {
		t.Errorf("Score = %d, want 0", out.Score)
	}
}

func blankDef() catalog.ActivityDef {
	return catalog.ActivityDef{
		Kind: catalog.ActivityFillBlank,
		BlankQuestions: []catalog.BlankQuestion{
			{
				Prompt: "Capital da França: ___",
				Blanks: []catalog.Blank{{Answer: "Paris", Alternatives: []string{"paris "}}},
			},
			{
				Prompt: "2 + 2 = ___ e 3 + 3 = ___",
				Blanks: []catalog.Blank{{Answer: "4"}, {Answer: "6"}},
			},
		},
	}
}

func TestFillBlank_CaseInsensitiveTrimmedMatch(t *testing.T) {
	f := NewFillBlank(blankDef(), t0)
	f.SetInput(0, 0, "  pArIs  ")
	f.SetInput(1, 0, "4")
	f.SetInput(1, 1, "7")

	if !f.Submit() {
		t.Fatal("Submit should succeed with every blank filled")
	}

	out := f.Outcome(t0)
	if out.Score != 20 {
		t.Errorf("Score = %d, want 20 (2 of 3 blanks correct)", out.Score)
	}
	if out.Units != 3 {
		t.Errorf("Units = %d, want 3", out.Units)
	}
}

func TestFillBlank_SubmitRejectedUntilAllFilled(t *testing.T) {
	f := NewFillBlank(blankDef(), t0)
	f.SetInput(0, 0, "Paris")
	f.SetInput(1, 0, "4")
	// blank (1,1) left empty

	if f.Submit() {
		t.Fatal("Submit must be rejected before every blank is filled")
	}
	if f.AllFilled() {
		t.Error("AllFilled should be false")
	}
}

func TestFillBlank_ZeroBlankQuestionDropped(t *testing.T) {
	def := catalog.ActivityDef{
		Kind: catalog.ActivityFillBlank,
		BlankQuestions: []catalog.BlankQuestion{
			{Prompt: "malformed, no blanks"},
		},
	}
	f := NewFillBlank(def, t0)
	if !f.Completed() {
		t.Fatal("all-malformed definition should be trivially complete")
	}
	if out := f.Outcome(t0); out.Score != 0 {
		t.Errorf("Score = %d, want 0", out.Score)
	}
}

func TestFromDef_DispatchesByKind(t *testing.T) {
	defs := []catalog.ActivityDef{
		{Kind: catalog.ActivityFlashcards},
		{Kind: catalog.ActivityDragDrop},
		{Kind: catalog.ActivityFillBlank},
	}
	for _, def := range defs {
		p := FromDef(def, t0)
		if p.Kind() != def.Kind {
			t.Errorf("FromDef(%s).Kind() = %s", def.Kind, p.Kind())
		}
		if !p.Completed() {
			t.Errorf("empty %s definition should be trivially complete", def.Kind)
		}
	}
}
