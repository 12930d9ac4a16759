package session

import (
	"strings"
	"testing"
	"time"

	"github.com/joaovmb/trilha/internal/catalog"
)

// nSectionText builds text that segments into exactly n sections.
func nSectionText(n int) string {
	paragraphs := make([]string, n*2)
	for i := range paragraphs {
		paragraphs[i] = "Parágrafo de teste."
	}
	return strings.Join(paragraphs, "\n\n")
}

func fullItem(sections int) *catalog.ContentItem {
	return &catalog.ContentItem{
		ID:      "test-item",
		Subject: catalog.SubjectMath,
		Title:   "Teste",
		Text:    nSectionText(sections),
		Activities: []catalog.ActivityDef{
			{Kind: catalog.ActivityFlashcards, Flashcards: []catalog.Flashcard{{Front: "f", Back: "b"}}},
		},
		Quiz: []catalog.QuizQuestion{
			{Prompt: "q", Options: []string{"a", "b"}, CorrectIndex: 0},
		},
		Challenge: &catalog.Challenge{Prompt: "c", Points: 50, BadgeID: "badge-test"},
	}
}

func readingOnlyItem(sections int) *catalog.ContentItem {
	return &catalog.ContentItem{
		ID:      "reading-only",
		Subject: catalog.SubjectMath,
		Title:   "Só leitura",
		Text:    nSectionText(sections),
	}
}

func TestNewState_StartsAtIntro(t *testing.T) {
	s := NewState(fullItem(3), "sid")
	if s.Phase != PhaseIntro {
		t.Errorf("Phase = %v, want intro", s.Phase)
	}
	if len(s.Sections) != 3 {
		t.Errorf("len(Sections) = %d, want 3", len(s.Sections))
	}
}

func TestBuildPhasePlan_SkipsAbsentPhases(t *testing.T) {
	s := NewState(readingOnlyItem(2), "sid")
	plan := s.PhasePlan()
	if len(plan) != 1 || plan[0] != PhaseResults {
		t.Errorf("plan = %v, want [results]", plan)
	}

	s = NewState(fullItem(2), "sid")
	plan = s.PhasePlan()
	want := []Phase{PhasePractice, PhaseQuiz, PhaseChallenge, PhaseResults}
	if len(plan) != len(want) {
		t.Fatalf("plan = %v, want %v", plan, want)
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Errorf("plan[%d] = %v, want %v", i, plan[i], want[i])
		}
	}
}

func TestStart_OnlyFromIntro(t *testing.T) {
	now := time.Now()
	s := NewState(fullItem(2), "sid")
	Start(s, now)
	if s.Phase != PhaseReading {
		t.Fatalf("Phase = %v, want reading", s.Phase)
	}
	if s.StartTime != now {
		t.Error("StartTime not stamped")
	}

	// A second start must not rewind or restamp.
	later := now.Add(time.Minute)
	Start(s, later)
	if s.StartTime != now {
		t.Error("Start from a non-intro phase restamped the session")
	}
}

func TestSectionDone_FourSectionScenario(t *testing.T) {
	// 4 sections, each read for exactly 35 seconds ->
	// progress 25, 50, 75, 100 and total XP = 4 * clamp(35,10,25) = 100.
	now := time.Now()
	s := NewState(readingOnlyItem(4), "sid")
	Start(s, now)

	var percents []int
	for i := 0; i < 4; i++ {
		if s.Phase != PhaseReading {
			t.Fatalf("section %d: phase = %v, want reading", i+1, s.Phase)
		}
		SectionDone(s, 35, now)
		percents = append(percents, ProgressPercent(s.CompletedCount(), len(s.Sections)))
		if s.Phase == PhaseCheckpoint {
			CheckpointContinue(s, now)
		}
	}

	wantPercents := []int{25, 50, 75, 100}
	for i, p := range wantPercents {
		if percents[i] != p {
			t.Errorf("progress after section %d = %d, want %d", i+1, percents[i], p)
		}
	}
	if s.XP != 100 {
		t.Errorf("total XP = %d, want 100", s.XP)
	}
	if s.Phase != PhaseResults {
		t.Errorf("final phase = %v, want results", s.Phase)
	}
}

func TestSectionDone_CheckpointAfterEverySecondSection(t *testing.T) {
	now := time.Now()
	s := NewState(readingOnlyItem(5), "sid")
	Start(s, now)

	var checkpoints []int
	for s.Phase == PhaseReading {
		SectionDone(s, 60, now)
		if s.Phase == PhaseCheckpoint {
			checkpoints = append(checkpoints, s.CompletedCount())
			CheckpointContinue(s, now)
		}
	}

	want := []int{2, 4, 5}
	if len(checkpoints) != len(want) {
		t.Fatalf("checkpoints at %v, want %v", checkpoints, want)
	}
	for i := range want {
		if checkpoints[i] != want[i] {
			t.Errorf("checkpoint %d after section %d, want %d", i, checkpoints[i], want[i])
		}
	}
}

func TestProgressPercent_NonDecreasing(t *testing.T) {
	prev := -1
	for i := 0; i <= 7; i++ {
		p := ProgressPercent(i, 7)
		if p < prev {
			t.Fatalf("progress decreased: %d -> %d at section %d", prev, p, i)
		}
		prev = p
	}
	if ProgressPercent(7, 7) != 100 {
		t.Errorf("full progress = %d, want 100", ProgressPercent(7, 7))
	}
	if ProgressPercent(1, 3) != 33 {
		t.Errorf("ProgressPercent(1,3) = %d, want 33", ProgressPercent(1, 3))
	}
	if ProgressPercent(2, 3) != 67 {
		t.Errorf("ProgressPercent(2,3) = %d, want 67", ProgressPercent(2, 3))
	}
}

func TestFullPhaseSequence(t *testing.T) {
	now := time.Now()
	s := NewState(fullItem(2), "sid")
	Start(s, now)

	SectionDone(s, 40, now) // section 1, no checkpoint
	if s.Phase != PhaseReading {
		t.Fatalf("after section 1: phase = %v, want reading", s.Phase)
	}
	SectionDone(s, 40, now) // section 2, final -> checkpoint
	if s.Phase != PhaseCheckpoint {
		t.Fatalf("after final section: phase = %v, want checkpoint", s.Phase)
	}
	CheckpointContinue(s, now)
	if s.Phase != PhasePractice {
		t.Fatalf("after checkpoint: phase = %v, want practice", s.Phase)
	}

	PracticeDone(s, 30, now)
	if s.Phase != PhaseQuiz {
		t.Fatalf("after practice: phase = %v, want quiz", s.Phase)
	}
	if s.XP != 25+25+30 {
		t.Errorf("XP after practice = %d, want 80", s.XP)
	}

	QuizDone(s, QuizOutcome{Score: 30, CorrectAnswers: 3, TotalQuestions: 5}, now)
	if s.Phase != PhaseChallenge {
		t.Fatalf("after quiz: phase = %v, want challenge", s.Phase)
	}
	if s.XP != 110 {
		t.Errorf("XP after quiz = %d, want 110", s.XP)
	}

	outcome := ChallengeDone(s, "uma resposta suficientemente longa", now)
	if !outcome.Correct {
		t.Error("expected challenge judged correct")
	}
	if outcome.XP != 50 {
		t.Errorf("challenge XP = %d, want 50", outcome.XP)
	}
	if !s.BadgeEarned {
		t.Error("expected badge earned on challenge success")
	}
	if s.Phase != PhaseResults {
		t.Fatalf("final phase = %v, want results", s.Phase)
	}
	if s.XP != 160 {
		t.Errorf("total XP = %d, want 160", s.XP)
	}
}

func TestQuizDone_GameOverAddsNoXP(t *testing.T) {
	now := time.Now()
	item := &catalog.ContentItem{
		ID: "q", Subject: catalog.SubjectMath, Title: "t", Text: "p",
		Quiz: []catalog.QuizQuestion{{Prompt: "q", Options: []string{"a", "b"}, CorrectIndex: 0}},
	}
	s := NewState(item, "sid")
	Start(s, now)
	SectionDone(s, 60, now)
	CheckpointContinue(s, now)
	if s.Phase != PhaseQuiz {
		t.Fatalf("phase = %v, want quiz", s.Phase)
	}

	before := s.XP
	QuizDone(s, QuizOutcome{Score: 10, GameOver: true}, now)
	if s.XP != before {
		t.Errorf("game-over quiz changed XP: %d -> %d", before, s.XP)
	}
	if s.Phase != PhaseResults {
		t.Errorf("phase = %v, want results", s.Phase)
	}
}

func TestChallengeDone_TrivialAnswerHalvesPoints(t *testing.T) {
	now := time.Now()
	item := &catalog.ContentItem{
		ID: "c", Subject: catalog.SubjectMath, Title: "t", Text: "p",
		Challenge: &catalog.Challenge{Prompt: "p", Points: 40, BadgeID: "b"},
	}
	s := NewState(item, "sid")
	Start(s, now)
	SectionDone(s, 60, now)
	CheckpointContinue(s, now)

	outcome := ChallengeDone(s, "curto", now)
	if outcome.Correct {
		t.Error("trivial answer should not be judged correct")
	}
	if outcome.XP != 20 {
		t.Errorf("challenge XP = %d, want 20", outcome.XP)
	}
	if s.BadgeEarned {
		t.Error("no badge for an unjudged challenge")
	}
}

func TestXPNeverDecreases(t *testing.T) {
	s := NewState(readingOnlyItem(2), "sid")
	s.addXP(10)
	s.addXP(-5)
	if s.XP != 10 {
		t.Errorf("XP = %d, want 10 (negative delta ignored)", s.XP)
	}
}

func TestBuildSummary(t *testing.T) {
	now := time.Now()
	s := NewState(readingOnlyItem(2), "sid")
	Start(s, now)
	SectionDone(s, 40, now)
	SectionDone(s, 40, now)
	CheckpointContinue(s, now)

	sum := BuildSummary(s, now.Add(90*time.Second))
	if sum.TotalXP != 50 {
		t.Errorf("TotalXP = %d, want 50", sum.TotalXP)
	}
	if sum.SectionsRead != 2 || sum.Sections != 2 {
		t.Errorf("sections read %d/%d, want 2/2", sum.SectionsRead, sum.Sections)
	}
	if sum.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 90s", sum.Duration)
	}
}
