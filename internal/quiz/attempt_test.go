package quiz

import (
	"math/rand"
	"testing"

	"github.com/joaovmb/trilha/internal/catalog"
)

func questions(n int) []catalog.QuizQuestion {
	qs := make([]catalog.QuizQuestion, n)
	for i := range qs {
		qs[i] = catalog.QuizQuestion{
			Prompt:       "q",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
		}
	}
	return qs
}

func TestAnswer_CorrectScoresWithoutHeartLoss(t *testing.T) {
	a := NewAttempt(questions(3))

	registered, correct := a.Answer(0)
	if !registered || !correct {
		t.Fatalf("Answer(0) = (%v, %v), want (true, true)", registered, correct)
	}
	if a.Score() != 10 {
		t.Errorf("Score = %d, want 10", a.Score())
	}
	if a.Hearts() != 3 {
		t.Errorf("Hearts = %d, want 3", a.Hearts())
	}
}

func TestAnswer_WrongCostsOneHeart(t *testing.T) {
	a := NewAttempt(questions(3))

	a.Answer(1)
	if a.Hearts() != 2 {
		t.Errorf("Hearts = %d, want 2", a.Hearts())
	}
	if a.Score() != 0 {
		t.Errorf("Score = %d, want 0", a.Score())
	}
}

func TestAnswer_HeartsAfterKWrongAnswers(t *testing.T) {
	// hearts after k wrong answers = max(0, 3-k); gameOver <=> hearts == 0.
	for k := 0; k <= 3; k++ {
		a := NewAttempt(questions(5))
		for i := 0; i < k; i++ {
			a.Answer(1)
			a.Next()
		}
		want := 3 - k
		if want < 0 {
			want = 0
		}
		if a.Hearts() != want {
			t.Errorf("after %d wrong: Hearts = %d, want %d", k, a.Hearts(), want)
		}
		if a.GameOver() != (want == 0) {
			t.Errorf("after %d wrong: GameOver = %v", k, a.GameOver())
		}
	}
}

func TestAnswer_IdempotentOnReselect(t *testing.T) {
	a := NewAttempt(questions(3))

	a.Answer(1)
	heartsAfter, scoreAfter := a.Hearts(), a.Score()

	// Selecting again on an already-answered question is a no-op,
	// whatever the choice.
	if registered, _ := a.Answer(1); registered {
		t.Error("re-selecting the same answer should not register")
	}
	if registered, _ := a.Answer(0); registered {
		t.Error("changing a recorded answer should not register")
	}
	if a.Hearts() != heartsAfter || a.Score() != scoreAfter {
		t.Errorf("hearts/score changed on reselect: %d/%d", a.Hearts(), a.Score())
	}
}

func TestGameOver_ThreeConsecutiveWrong(t *testing.T) {
	// Game over triggers immediately after the 3rd wrong answer, before
	// any 4th question is shown.
	a := NewAttempt(questions(5))

	a.Answer(1)
	a.Next()
	a.Answer(1)
	a.Next()
	a.Answer(1)

	if !a.GameOver() {
		t.Fatal("expected game over after 3 wrong answers")
	}
	if a.Next() {
		t.Error("Next must be refused from game over")
	}
	if registered, _ := a.Answer(0); registered {
		t.Error("Answer must be refused from game over")
	}
}

func TestScenario_MixedAnswers(t *testing.T) {
	// 5 questions: 1-2 correct, 3 wrong, 4 correct, 5 wrong ->
	// hearts 1, score 30, no game over.
	a := NewAttempt(questions(5))

	seq := []int{0, 0, 2, 0, 3}
	for i, choice := range seq {
		a.Answer(choice)
		if i < len(seq)-1 {
			if !a.Next() {
				t.Fatalf("Next refused at question %d", i+1)
			}
		}
	}

	if a.Hearts() != 1 {
		t.Errorf("Hearts = %d, want 1", a.Hearts())
	}
	if a.Score() != 30 {
		t.Errorf("Score = %d, want 30", a.Score())
	}
	if a.GameOver() {
		t.Error("unexpected game over")
	}
	if !a.Finished() {
		t.Error("expected attempt finished")
	}

	res := a.Result()
	if res.CorrectAnswers != 3 || res.TotalQuestions != 5 {
		t.Errorf("Result = %+v", res)
	}
}

func TestNext_RequiresRecordedAnswer(t *testing.T) {
	a := NewAttempt(questions(3))
	if a.Next() {
		t.Error("Next must be refused before the current question is answered")
	}
	a.Answer(0)
	if !a.Next() {
		t.Error("Next should succeed after answering")
	}
}

func TestPrev_AllowedWithoutHeartLoss(t *testing.T) {
	a := NewAttempt(questions(3))
	a.Answer(1)
	a.Next()

	if !a.Prev() {
		t.Fatal("Prev should be allowed")
	}
	hearts := a.Hearts()
	a.Answer(2) // recorded answer, must not register again
	if a.Hearts() != hearts {
		t.Error("revisiting a question re-triggered heart loss")
	}
}

func TestRestart_ResetsEverything(t *testing.T) {
	a := NewAttempt(questions(4))
	a.Answer(1)
	a.Next()
	a.Answer(1)
	a.Next()
	a.Answer(1) // game over

	a.Restart()
	if a.Hearts() != StartingHearts {
		t.Errorf("Hearts = %d, want %d", a.Hearts(), StartingHearts)
	}
	if a.Score() != 0 || a.Index() != 0 {
		t.Errorf("Score/Index = %d/%d, want 0/0", a.Score(), a.Index())
	}
	if a.CurrentAnswered() {
		t.Error("answers not cleared by restart")
	}
	if a.GameOver() {
		t.Error("still game over after restart")
	}
}

func TestUnlimitedAttempt_NeverGameOver(t *testing.T) {
	a := NewUnlimitedAttempt(questions(5))
	for i := 0; i < 5; i++ {
		a.Answer(1)
		a.Next()
	}
	if a.GameOver() {
		t.Error("unlimited attempt reached game over")
	}
	if a.Hearts() != StartingHearts {
		t.Errorf("Hearts = %d, want untouched %d", a.Hearts(), StartingHearts)
	}
	if !a.Finished() {
		t.Error("expected unlimited attempt finished after all answers")
	}
}

func TestSampleQuestions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pool := questions(30)

	sampled := SampleQuestions(rng, pool, DefaultSampleSize)
	if len(sampled) != DefaultSampleSize {
		t.Errorf("len(sampled) = %d, want %d", len(sampled), DefaultSampleSize)
	}

	small := SampleQuestions(rng, questions(4), DefaultSampleSize)
	if len(small) != 4 {
		t.Errorf("len(small) = %d, want 4", len(small))
	}
	if len(pool) != 30 {
		t.Error("input pool was modified")
	}
}
