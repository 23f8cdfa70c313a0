package bank

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tomasbusse/avalingo/pkg/model"
	"github.com/tomasbusse/avalingo/pkg/placement"
)

// Document is one question bank YAML file.
type Document struct {
	Questions []Entry `yaml:"questions"`
}

// Entry is one question record in a bank document. Which content fields are
// required depends on the type: choice types use prompt/options/correct,
// text types use prompt/accepted, reading comprehension uses passage/items.
type Entry struct {
	ID         string                 `yaml:"id"`
	Type       placement.QuestionType `yaml:"type"`
	Level      placement.Level        `yaml:"level"`
	Topic      string                 `yaml:"topic"`
	Difficulty float64                `yaml:"difficulty"`
	Tags       []string               `yaml:"tags"`

	Prompt   string   `yaml:"prompt"`
	Options  []string `yaml:"options"`
	Correct  *int     `yaml:"correct"`
	Accepted []string `yaml:"accepted"`
	Passage  string   `yaml:"passage"`
	Items    []Item   `yaml:"items"`
}

// Item is one sub-question of a reading comprehension entry.
type Item struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// Parse reads and decodes a bank document. Unknown question types and levels
// fail here, via the enum unmarshalers.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse bank document: %w", err)
	}
	return &doc, nil
}

// Validate checks every entry for the content its type requires.
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Questions))
	for i, entry := range d.Questions {
		if entry.ID == "" {
			return fmt.Errorf("question %d: missing id", i)
		}
		if seen[entry.ID] {
			return fmt.Errorf("question %s: duplicate id", entry.ID)
		}
		seen[entry.ID] = true

		if err := entry.validate(); err != nil {
			return fmt.Errorf("question %s: %w", entry.ID, err)
		}
	}
	return nil
}

func (e Entry) validate() error {
	switch e.Type {
	case placement.QuestionTypeReadingComprehension:
		if e.Passage == "" {
			return fmt.Errorf("missing passage")
		}
		if len(e.Items) == 0 {
			return fmt.Errorf("missing items")
		}
		for i, item := range e.Items {
			if len(item.Options) < 2 {
				return fmt.Errorf("item %d: needs at least 2 options", i)
			}
			if item.Correct < 0 || item.Correct >= len(item.Options) {
				return fmt.Errorf("item %d: correct index %d out of bounds", i, item.Correct)
			}
		}
	case placement.QuestionTypeOpenCloze,
		placement.QuestionTypeWordFormation,
		placement.QuestionTypeKeywordTransformation:
		if e.Prompt == "" {
			return fmt.Errorf("missing prompt")
		}
		if len(e.Accepted) == 0 {
			return fmt.Errorf("missing accepted answers")
		}
	default:
		// Choice types: multiple_choice_cloze, grammar_mcq, vocabulary_mcq.
		if e.Prompt == "" {
			return fmt.Errorf("missing prompt")
		}
		if len(e.Options) < 2 {
			return fmt.Errorf("needs at least 2 options")
		}
		if e.Correct == nil {
			return fmt.Errorf("missing correct index")
		}
		if *e.Correct < 0 || *e.Correct >= len(e.Options) {
			return fmt.Errorf("correct index %d out of bounds", *e.Correct)
		}
	}
	return nil
}

// content builds the typed content payload for the entry.
func (e Entry) content() placement.Content {
	switch e.Type {
	case placement.QuestionTypeReadingComprehension:
		items := make([]placement.ReadingItem, len(e.Items))
		for i, item := range e.Items {
			items[i] = placement.ReadingItem{
				Prompt:  item.Prompt,
				Options: item.Options,
				Correct: item.Correct,
			}
		}
		return placement.ReadingContent{Passage: e.Passage, Items: items}
	case placement.QuestionTypeOpenCloze,
		placement.QuestionTypeWordFormation,
		placement.QuestionTypeKeywordTransformation:
		return placement.TextContent{Prompt: e.Prompt, Accepted: e.Accepted}
	default:
		correct := 0
		if e.Correct != nil {
			correct = *e.Correct
		}
		return placement.ChoiceContent{Prompt: e.Prompt, Options: e.Options, Correct: correct}
	}
}

// Question converts the entry into the scoring representation.
func (e Entry) Question() placement.Question {
	return placement.Question{
		ID:         e.ID,
		Type:       e.Type,
		Level:      e.Level,
		Topic:      e.Topic,
		Difficulty: e.Difficulty,
		Tags:       e.Tags,
		Content:    e.content(),
	}
}

// Model converts the entry into the database record shape.
func (e Entry) Model() model.Question {
	return model.Question{
		QuestionID: e.ID,
		Type:       e.Type.String(),
		Level:      e.Level.String(),
		Topic:      e.Topic,
		Difficulty: e.Difficulty,
		Tags:       e.Tags,
		Content:    model.QuestionContent{Content: e.content()},
		Active:     true,
	}
}
