package question_test

import (
	"errors"
	"testing"

	"github.com/learnkick/learnkick-admin/internal/question"
)

func strPtr(s string) *string { return &s }

func typePtr(t question.Type) *question.Type { return &t }

func TestBuilderBuild(t *testing.T) {
	t.Run("MissingType", func(t *testing.T) {
		b := question.Builder{ID: strPtr("x")}
		_, err := b.Build()
		if !errors.Is(err, question.ErrUnknownType) {
			t.Fatalf("expected ErrUnknownType, got %v", err)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		b := question.Builder{Type: typePtr("essay")}
		_, err := b.Build()
		if !errors.Is(err, question.ErrUnknownType) {
			t.Fatalf("expected ErrUnknownType, got %v", err)
		}
	})

	t.Run("DefaultTimeLimit", func(t *testing.T) {
		b := question.Builder{Type: typePtr(question.TypeMultipleChoice)}
		q := mustQuestion(t, b)
		if q.Common().TimeLimit != question.DefaultTimeLimit {
			t.Errorf("time limit = %d", q.Common().TimeLimit)
		}
	})

	t.Run("TrueFalseTruthy", func(t *testing.T) {
		cases := map[string]bool{
			"True": true, "true": true, " YES ": true, "1": true,
			"False": false, "no": false, "0": false, "": false,
		}
		for in, want := range cases {
			b := question.Builder{Type: typePtr(question.TypeTrueFalse), CorrectAnswer: strPtr(in)}
			tf := mustQuestion(t, b).(*question.TrueFalse)
			if tf.Correct != want {
				t.Errorf("correct(%q) = %v, want %v", in, tf.Correct, want)
			}
		}
	})

	t.Run("NumberInputAnswer", func(t *testing.T) {
		cases := map[string]float64{
			"150":    150,
			"-2.5":   -2.5,
			"3.75kg": 3.75,
			"abc":    0,
		}
		for in, want := range cases {
			b := question.Builder{Type: typePtr(question.TypeNumberInput), CorrectAnswer: strPtr(in)}
			ni := mustQuestion(t, b).(*question.NumberInput)
			if ni.CorrectAnswer != want {
				t.Errorf("correctAnswer(%q) = %v, want %v", in, ni.CorrectAnswer, want)
			}
		}
	})

	t.Run("ImageQuestionFields", func(t *testing.T) {
		idx := 1
		b := question.Builder{
			Type:         typePtr(question.TypeImageQuestion),
			Question:     strPtr("Which one?"),
			ImageURL:     strPtr("https://cdn.example.org/a.png"),
			Answers:      []string{"A", "B"},
			CorrectIndex: &idx,
			Language:     strPtr("de"),
		}
		img := mustQuestion(t, b).(*question.ImageQuestion)
		if img.ImageURL != "https://cdn.example.org/a.png" || img.CorrectIndex != 1 || img.Language != question.LanguageGerman {
			t.Errorf("unexpected image question: %+v", img)
		}

		b.Answers[0] = "changed"
		if img.Answers[0] != "A" {
			t.Error("question must not share the builder's answer slice")
		}
	})
}
