package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/tomasbusse/avalingo/pkg/placement"
)

// jsonValue encodes v for a jsonb column. nil-ish values become SQL NULL.
func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// jsonScan decodes a jsonb column into dst, accepting the []byte and string
// forms drivers hand back. NULL leaves dst untouched.
func jsonScan(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	}
	return fmt.Errorf("unsupported column type %T", src)
}

// StringList is a []string stored as a jsonb array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]string{})
	}
	return jsonValue([]string(l))
}

func (l *StringList) Scan(src interface{}) error {
	return jsonScan(src, (*[]string)(l))
}

// QuestionContent carries a question's typed content payload in a jsonb
// column. A NULL or unrecognized payload scans to a nil Content.
type QuestionContent struct {
	placement.Content
}

func (c QuestionContent) Value() (driver.Value, error) {
	b, err := placement.MarshalContent(c.Content)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *QuestionContent) Scan(src interface{}) error {
	if src == nil {
		c.Content = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
	content, err := placement.UnmarshalContent(data)
	if err != nil {
		return err
	}
	c.Content = content
	return nil
}

// QuestionSet is the question snapshot frozen onto an attempt at start time.
type QuestionSet []placement.Question

func (s QuestionSet) Value() (driver.Value, error) {
	if s == nil {
		return jsonValue([]placement.Question{})
	}
	return jsonValue([]placement.Question(s))
}

func (s *QuestionSet) Scan(src interface{}) error {
	return jsonScan(src, (*[]placement.Question)(s))
}

// AnswerSet maps question id to the submitted answer.
type AnswerSet map[string]placement.Answer

func (s AnswerSet) Value() (driver.Value, error) {
	if s == nil {
		return jsonValue(map[string]placement.Answer{})
	}
	return jsonValue(map[string]placement.Answer(s))
}

func (s *AnswerSet) Scan(src interface{}) error {
	return jsonScan(src, (*map[string]placement.Answer)(s))
}

// LevelBreakdown is the per-level accuracy of a scored attempt.
type LevelBreakdown map[placement.Level]placement.LevelStats

func (b LevelBreakdown) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return jsonValue(map[placement.Level]placement.LevelStats(b))
}

func (b *LevelBreakdown) Scan(src interface{}) error {
	return jsonScan(src, (*map[placement.Level]placement.LevelStats)(b))
}
