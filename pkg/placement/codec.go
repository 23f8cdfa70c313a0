package placement

import "encoding/json"

// questionJSON is the wire/storage shape of a Question. The content variant
// is carried under a key named after its kind; exactly one is set.
type questionJSON struct {
	ID         string          `json:"id"`
	Type       QuestionType    `json:"type"`
	Level      Level           `json:"level"`
	Topic      string          `json:"topic,omitempty"`
	Difficulty float64         `json:"difficulty,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
	Choice     *ChoiceContent  `json:"choice,omitempty"`
	Text       *TextContent    `json:"text,omitempty"`
	Reading    *ReadingContent `json:"reading,omitempty"`
}

// MarshalJSON implements json.Marshaler for Question.
func (q Question) MarshalJSON() ([]byte, error) {
	out := questionJSON{
		ID:         q.ID,
		Type:       q.Type,
		Level:      q.Level,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Tags:       q.Tags,
	}
	switch content := q.Content.(type) {
	case ChoiceContent:
		out.Choice = &content
	case TextContent:
		out.Text = &content
	case ReadingContent:
		out.Reading = &content
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler for Question. A record with no
// recognizable content variant decodes with nil Content, which scores as
// incorrect rather than failing the whole attempt.
func (q *Question) UnmarshalJSON(data []byte) error {
	var in questionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	q.ID = in.ID
	q.Type = in.Type
	q.Level = in.Level
	q.Topic = in.Topic
	q.Difficulty = in.Difficulty
	q.Tags = in.Tags

	switch {
	case in.Choice != nil:
		q.Content = *in.Choice
	case in.Text != nil:
		q.Content = *in.Text
	case in.Reading != nil:
		q.Content = *in.Reading
	default:
		q.Content = nil
	}
	return nil
}

// MarshalContent encodes just the content variant, for storage in the
// question bank table.
func MarshalContent(c Content) ([]byte, error) {
	envelope := questionJSON{}
	switch content := c.(type) {
	case ChoiceContent:
		envelope.Choice = &content
	case TextContent:
		envelope.Text = &content
	case ReadingContent:
		envelope.Reading = &content
	}
	return json.Marshal(struct {
		Choice  *ChoiceContent  `json:"choice,omitempty"`
		Text    *TextContent    `json:"text,omitempty"`
		Reading *ReadingContent `json:"reading,omitempty"`
	}{envelope.Choice, envelope.Text, envelope.Reading})
}

// UnmarshalContent decodes a content variant stored by MarshalContent.
// Unknown or empty payloads yield nil, not an error.
func UnmarshalContent(data []byte) (Content, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var in struct {
		Choice  *ChoiceContent  `json:"choice"`
		Text    *TextContent    `json:"text"`
		Reading *ReadingContent `json:"reading"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	switch {
	case in.Choice != nil:
		return *in.Choice, nil
	case in.Text != nil:
		return *in.Text, nil
	case in.Reading != nil:
		return *in.Reading, nil
	}
	return nil, nil
}
