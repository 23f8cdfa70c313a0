package placement

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Answer is a candidate's response to one question: a selected option index,
// a free-text string, or (for reading comprehension) a mapping of sub-item
// index to selected option index. At most one field is set; an Answer with
// no field set scores as incorrect.
type Answer struct {
	Index      *int
	Text       *string
	Selections map[int]int
}

// IndexAnswer builds an option-selection answer.
func IndexAnswer(i int) Answer {
	return Answer{Index: &i}
}

// TextAnswer builds a free-text answer.
func TextAnswer(s string) Answer {
	return Answer{Text: &s}
}

// ReadingAnswer builds a reading comprehension answer mapping sub-item index
// to selected option index.
func ReadingAnswer(selections map[int]int) Answer {
	return Answer{Selections: selections}
}

// UnmarshalJSON accepts a JSON number (option index), string (free text) or
// object of index pairs. Any other shape leaves the Answer empty, which
// scores as incorrect; it is never an error.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if json.Unmarshal(data, &s) == nil {
			a.Text = &s
		}
	case '{':
		var raw map[string]int
		if json.Unmarshal(data, &raw) == nil {
			selections := make(map[int]int, len(raw))
			for k, v := range raw {
				idx, err := strconv.Atoi(k)
				if err != nil {
					continue
				}
				selections[idx] = v
			}
			a.Selections = selections
		}
	default:
		var f float64
		if json.Unmarshal(data, &f) == nil {
			idx := int(f)
			a.Index = &idx
		}
	}
	return nil
}

// MarshalJSON renders the answer back in its wire shape.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch {
	case a.Index != nil:
		return json.Marshal(*a.Index)
	case a.Text != nil:
		return json.Marshal(*a.Text)
	case a.Selections != nil:
		raw := make(map[string]int, len(a.Selections))
		for k, v := range a.Selections {
			raw[strconv.Itoa(k)] = v
		}
		return json.Marshal(raw)
	}
	return []byte("null"), nil
}
