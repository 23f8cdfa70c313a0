package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func choiceQuestion(id string, level Level, correct int) Question {
	return Question{
		ID:    id,
		Type:  QuestionTypeGrammarMcq,
		Level: level,
		Content: ChoiceContent{
			Prompt:  "pick one",
			Options: []string{"a", "b", "c", "d"},
			Correct: correct,
		},
	}
}

// levelSet builds `total` choice questions at a level and answers `correct`
// of them correctly.
func levelSet(prefix string, level Level, correct, total int, questions *[]Question, answers map[string]Answer) {
	for i := 0; i < total; i++ {
		id := prefix + string(rune('a'+i))
		*questions = append(*questions, choiceQuestion(id, level, 0))
		if i < correct {
			answers[id] = IndexAnswer(0)
		} else {
			answers[id] = IndexAnswer(1)
		}
	}
}

func TestScoreAttemptPerQuestion(t *testing.T) {
	t.Run("reading comprehension counts sub-items as points", func(t *testing.T) {
		questions := []Question{{
			ID:    "r1",
			Type:  QuestionTypeReadingComprehension,
			Level: LevelB1,
			Content: ReadingContent{
				Passage: "Once upon a time...",
				Items: []ReadingItem{
					{Options: []string{"x", "y"}, Correct: 0},
					{Options: []string{"x", "y"}, Correct: 1},
					{Options: []string{"x", "y"}, Correct: 1},
				},
			},
		}}
		answers := map[string]Answer{
			"r1": ReadingAnswer(map[int]int{0: 0, 1: 1, 2: 0}),
		}

		result := ScoreAttempt(answers, questions)

		assert.Equal(t, 3, result.TotalPoints)
		assert.Equal(t, 2, result.Score)
		assert.Equal(t, LevelStats{Correct: 2, Total: 3, Percentage: 67}, result.Breakdown[LevelB1])
	})

	t.Run("free text matches case-insensitively and trimmed", func(t *testing.T) {
		questions := []Question{{
			ID:      "t1",
			Type:    QuestionTypeOpenCloze,
			Level:   LevelA2,
			Content: TextContent{Accepted: []string{"Natural", "naturally"}},
		}}

		result := ScoreAttempt(map[string]Answer{"t1": TextAnswer("  NATURAL ")}, questions)
		assert.Equal(t, 1, result.Score)

		result = ScoreAttempt(map[string]Answer{"t1": TextAnswer("nature")}, questions)
		assert.Equal(t, 0, result.Score)
	})

	t.Run("missing or mismatched answers are incorrect, never an error", func(t *testing.T) {
		questions := []Question{
			choiceQuestion("q1", LevelA1, 2),
			{ID: "q2", Type: QuestionTypeOpenCloze, Level: LevelA1, Content: TextContent{Accepted: []string{"yes"}}},
			{ID: "q3", Type: QuestionTypeGrammarMcq, Level: LevelA1}, // nil content
		}
		answers := map[string]Answer{
			// q1 answered with text instead of an index.
			"q1": TextAnswer("c"),
			// q2 missing entirely.
			"q3": IndexAnswer(0),
		}

		result := ScoreAttempt(answers, questions)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, 3, result.TotalPoints)
	})

	t.Run("empty attempt scores A1 with zero points", func(t *testing.T) {
		result := ScoreAttempt(map[string]Answer{}, nil)
		assert.Equal(t, LevelA1, result.Level)
		assert.Equal(t, 0, result.TotalPoints)
		for _, level := range LevelValues() {
			assert.Equal(t, 0, result.Breakdown[level].Percentage)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		questions := []Question{choiceQuestion("q1", LevelB1, 1)}
		answers := map[string]Answer{"q1": IndexAnswer(1)}

		first := ScoreAttempt(answers, questions)
		second := ScoreAttempt(answers, questions)
		assert.Equal(t, first, second)
	})
}

func TestScoreAttemptLevelDecision(t *testing.T) {
	t.Run("weak lower level caps the gated result", func(t *testing.T) {
		// A1 100%, A2 100%, B1 40%, B2 90%, C1 90%; overall ~84%.
		var questions []Question
		answers := map[string]Answer{}
		levelSet("a1", LevelA1, 10, 10, &questions, answers)
		levelSet("a2", LevelA2, 10, 10, &questions, answers)
		levelSet("b1", LevelB1, 4, 10, &questions, answers)
		levelSet("b2", LevelB2, 9, 10, &questions, answers)
		levelSet("c1", LevelC1, 9, 10, &questions, answers)

		result := ScoreAttempt(answers, questions)

		assert.Equal(t, 42, result.Score)
		assert.Equal(t, 84, roundPercent(result.Score, result.TotalPoints))
		assert.Equal(t, LevelA2, result.Level, "B1 fails the 60%% gate and overall 84%% is below the override band")
	})

	t.Run("strong overall promotes past a capped gate", func(t *testing.T) {
		// Gate caps at A2 (B1 dips), overall 90%, C1 at 75% -> C1.
		var questions []Question
		answers := map[string]Answer{}
		levelSet("a1", LevelA1, 20, 20, &questions, answers)
		levelSet("a2", LevelA2, 20, 20, &questions, answers)
		levelSet("b1", LevelB1, 2, 4, &questions, answers) // 50%, fails gate
		levelSet("b2", LevelB2, 20, 20, &questions, answers)
		levelSet("c1", LevelC1, 10, 13, &questions, answers) // 77%

		result := ScoreAttempt(answers, questions)

		assert.GreaterOrEqual(t, roundPercent(result.Score, result.TotalPoints), 85)
		assert.Equal(t, LevelC1, result.Level)
	})

	t.Run("moderate overall lifts a floored gate to B1", func(t *testing.T) {
		// A1 dips below 60 so gating floors at A1, but overall is >= 70
		// and B1 is >= 65.
		var questions []Question
		answers := map[string]Answer{}
		levelSet("a1", LevelA1, 5, 10, &questions, answers) // 50%
		levelSet("a2", LevelA2, 8, 10, &questions, answers)
		levelSet("b1", LevelB1, 8, 10, &questions, answers) // 80%
		levelSet("b2", LevelB2, 7, 10, &questions, answers)
		levelSet("c1", LevelC1, 7, 10, &questions, answers)

		result := ScoreAttempt(answers, questions)

		assert.Equal(t, 70, roundPercent(result.Score, result.TotalPoints))
		assert.Equal(t, LevelB1, result.Level)
	})

	t.Run("override leaves the gated result when bands miss", func(t *testing.T) {
		var questions []Question
		answers := map[string]Answer{}
		levelSet("a1", LevelA1, 10, 10, &questions, answers)
		levelSet("a2", LevelA2, 10, 10, &questions, answers)
		levelSet("b1", LevelB1, 6, 10, &questions, answers) // 60%, passes gate
		levelSet("b2", LevelB2, 5, 10, &questions, answers) // 50%, caps at B1
		levelSet("c1", LevelC1, 5, 10, &questions, answers)

		result := ScoreAttempt(answers, questions)
		assert.Equal(t, LevelB1, result.Level)
	})
}

func TestRoundPercent(t *testing.T) {
	// 2/3 rounds to 67 and passes the gate; 1/3 rounds to 33 and fails.
	assert.Equal(t, 67, roundPercent(2, 3))
	assert.Equal(t, 33, roundPercent(1, 3))
	assert.Equal(t, 0, roundPercent(0, 0))
	assert.Equal(t, 50, roundPercent(1, 2))
}

func TestGateUsesRoundedPercentages(t *testing.T) {
	// 2 of 3 at every level: 66.67% raw, 67 rounded, so every gate passes
	// and the result is C1.
	var questions []Question
	answers := map[string]Answer{}
	for _, level := range LevelValues() {
		levelSet("lvl"+level.String(), level, 2, 3, &questions, answers)
	}

	result := ScoreAttempt(answers, questions)
	assert.Equal(t, LevelC1, result.Level)
	for _, level := range LevelValues() {
		assert.Equal(t, 67, result.Breakdown[level].Percentage)
	}
}
