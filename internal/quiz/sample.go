package quiz

import (
	"math/rand"

	"github.com/joaovmb/trilha/internal/catalog"
)

// DefaultSampleSize is the question count for the sampled quick-quiz variant.
const DefaultSampleSize = 10

// SampleQuestions returns n randomly chosen questions from the pool, in
// shuffled order. When the pool holds n or fewer questions, a shuffled copy
// of the whole pool is returned. The input slice is not modified.
func SampleQuestions(rng *rand.Rand, pool []catalog.QuizQuestion, n int) []catalog.QuizQuestion {
	shuffled := make([]catalog.QuizQuestion, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n >= len(shuffled) {
		return shuffled
	}
	return shuffled[:n]
}
