package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownType = errors.New("unknown question type")

type typeProbe struct {
	Type Type `json:"type" yaml:"type"`
}

func (q *MultipleChoice) MarshalJSON() ([]byte, error) {
	type plain MultipleChoice
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{q.QuestionType(), (*plain)(q)})
}

func (q *TrueFalse) MarshalJSON() ([]byte, error) {
	type plain TrueFalse
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{q.QuestionType(), (*plain)(q)})
}

func (q *NumberInput) MarshalJSON() ([]byte, error) {
	type plain NumberInput
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{q.QuestionType(), (*plain)(q)})
}

func (q *ImageQuestion) MarshalJSON() ([]byte, error) {
	type plain ImageQuestion
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{q.QuestionType(), (*plain)(q)})
}

// newVariant returns an empty value of the variant named by t.
func newVariant(t Type) (Question, error) {
	switch t {
	case TypeMultipleChoice:
		return &MultipleChoice{}, nil
	case TypeTrueFalse:
		return &TrueFalse{}, nil
	case TypeNumberInput:
		return &NumberInput{}, nil
	case TypeImageQuestion:
		return &ImageQuestion{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
}

func UnmarshalQuestion(data []byte) (Question, error) {
	var probe typeProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	q, err := newVariant(probe.Type)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, q); err != nil {
		return nil, fmt.Errorf("decode %s question: %w", probe.Type, err)
	}
	return q, nil
}

// UnmarshalQuestions accepts either a bare JSON array or an object with a
// "questions" array, which is what the questions API returns.
func UnmarshalQuestions(data []byte) ([]Question, error) {
	data = bytes.TrimSpace(data)

	var raw []json.RawMessage
	if len(data) > 0 && data[0] == '{' {
		var envelope struct {
			Questions []json.RawMessage `json:"questions"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, err
		}
		raw = envelope.Questions
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make([]Question, 0, len(raw))
	for i, item := range raw {
		q, err := UnmarshalQuestion(item)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		out = append(out, q)
	}
	return out, nil
}

func MarshalQuestions(qs []Question) ([]byte, error) {
	if qs == nil {
		qs = []Question{}
	}
	return json.MarshalIndent(qs, "", "  ")
}
