package question

import (
	"fmt"
	"strings"
)

// Builder is the loosely typed record produced by CSV decoding. A nil field
// was absent or blank in the source row.
type Builder struct {
	ID            *string  `json:"id,omitempty"`
	Type          *Type    `json:"type,omitempty"`
	Subject       *string  `json:"subject,omitempty"`
	Grade         *int     `json:"grade,omitempty"`
	Difficulty    *int     `json:"difficulty,omitempty"`
	Language      *string  `json:"language,omitempty"`
	TimeLimit     *int     `json:"timeLimit,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Question      *string  `json:"question,omitempty"`
	Statement     *string  `json:"statement,omitempty"`
	Answers       []string `json:"answers,omitempty"`
	CorrectIndex  *int     `json:"correctIndex,omitempty"`
	CorrectAnswer *string  `json:"correctAnswer,omitempty"`
	Explanation   *string  `json:"explanation,omitempty"`
	Unit          *string  `json:"unit,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	CreatedAt     *string  `json:"createdAt,omitempty"`
	UpdatedAt     *string  `json:"updatedAt,omitempty"`
}

// Build converts the builder into its typed variant. Only a missing or
// unknown type is an error; everything else is carried over as-is and left
// for Validate.
func (b *Builder) Build() (Question, error) {
	if b.Type == nil {
		return nil, fmt.Errorf("%w: missing", ErrUnknownType)
	}

	base := Base{
		ID:         deref(b.ID),
		Subject:    deref(b.Subject),
		Grade:      derefInt(b.Grade),
		Difficulty: derefInt(b.Difficulty),
		Language:   Language(deref(b.Language)),
		TimeLimit:  derefInt(b.TimeLimit),
		Tags:       append([]string(nil), b.Tags...),
		CreatedAt:  deref(b.CreatedAt),
		UpdatedAt:  deref(b.UpdatedAt),
	}
	if base.TimeLimit <= 0 {
		base.TimeLimit = DefaultTimeLimit
	}

	switch *b.Type {
	case TypeMultipleChoice:
		return &MultipleChoice{
			Base:         base,
			Question:     deref(b.Question),
			Answers:      append([]string(nil), b.Answers...),
			CorrectIndex: derefInt(b.CorrectIndex),
			Explanation:  deref(b.Explanation),
		}, nil
	case TypeTrueFalse:
		return &TrueFalse{
			Base:        base,
			Statement:   deref(b.Statement),
			Correct:     parseTruthy(deref(b.CorrectAnswer)),
			Explanation: deref(b.Explanation),
		}, nil
	case TypeNumberInput:
		q := &NumberInput{
			Base:        base,
			Question:    deref(b.Question),
			Unit:        deref(b.Unit),
			Explanation: deref(b.Explanation),
		}
		if b.CorrectAnswer != nil {
			if v, ok := leadingFloat(*b.CorrectAnswer); ok {
				q.CorrectAnswer = v
			}
		}
		return q, nil
	case TypeImageQuestion:
		return &ImageQuestion{
			Base:         base,
			Question:     deref(b.Question),
			ImageURL:     deref(b.ImageURL),
			Answers:      append([]string(nil), b.Answers...),
			CorrectIndex: derefInt(b.CorrectIndex),
			Explanation:  deref(b.Explanation),
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, *b.Type)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func parseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
