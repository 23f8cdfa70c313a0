package placement

//go:generate go run github.com/dmarkham/enumer -type QuestionType -trimprefix QuestionType -transform snake -json -text -yaml -output question_type.gen.go

// QuestionType enumerates the assessable item formats in the question bank.
type QuestionType int

const (
	QuestionTypeMultipleChoiceCloze QuestionType = iota
	QuestionTypeOpenCloze
	QuestionTypeWordFormation
	QuestionTypeKeywordTransformation
	QuestionTypeReadingComprehension
	QuestionTypeGrammarMcq
	QuestionTypeVocabularyMcq
)

// Question is one assessable item, tagged with the CEFR level it probes.
type Question struct {
	ID         string
	Type       QuestionType
	Level      Level
	Topic      string
	Difficulty float64
	Tags       []string
	Content    Content
}

// Content is the type-dependent payload of a question. Exactly one concrete
// variant applies per question; scoring dispatches on the variant rather
// than sniffing field shapes.
type Content interface {
	questionContent()
}

// ChoiceContent is the payload for single-selection questions
// (multiple-choice cloze, grammar MCQ, vocabulary MCQ).
type ChoiceContent struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// TextContent is the payload for free-text questions (open cloze, word
// formation, key-word transformation). An answer is correct when it matches
// any accepted string, case-insensitively and ignoring surrounding space.
type TextContent struct {
	Prompt   string   `json:"prompt"`
	Accepted []string `json:"accepted"`
}

// ReadingContent is the payload for reading comprehension: a passage with
// nested single-selection items. Each item is scored independently, so the
// question contributes len(Items) points to its level.
type ReadingContent struct {
	Passage string        `json:"passage"`
	Items   []ReadingItem `json:"items"`
}

// ReadingItem is one sub-question of a reading comprehension passage.
type ReadingItem struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

func (ChoiceContent) questionContent()  {}
func (TextContent) questionContent()    {}
func (ReadingContent) questionContent() {}

// Points is the number of points the question contributes to its level.
func (q Question) Points() int {
	if reading, ok := q.Content.(ReadingContent); ok {
		return len(reading.Items)
	}
	return 1
}
