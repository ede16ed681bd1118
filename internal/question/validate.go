package question

import (
	"fmt"
	"sort"
	"strings"

	util "github.com/learnkick/learnkick-admin/internal/utils"
)

// ValidationErrors maps a field name to what is wrong with it.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "invalid question: " + strings.Join(parts, "; ")
}

// Validate checks the fields a question needs before it can be stored. The
// codec and filter never call it; it is for callers about to persist.
func Validate(q Question) error {
	errs := ValidationErrors{}
	base := q.Common()

	if strings.TrimSpace(base.Subject) == "" {
		errs["subject"] = "Subject is required"
	}
	if base.Grade < MinGrade || base.Grade > MaxGrade {
		errs["grade"] = fmt.Sprintf("Grade must be between %d and %d", MinGrade, MaxGrade)
	}
	if base.Difficulty < MinDifficulty || base.Difficulty > MaxDifficulty {
		errs["difficulty"] = fmt.Sprintf("Difficulty must be between %d and %d", MinDifficulty, MaxDifficulty)
	}
	if !base.Language.IsValid() {
		errs["language"] = fmt.Sprintf("Unsupported language %q", base.Language)
	}
	if base.TimeLimit <= 0 {
		errs["timeLimit"] = "Time limit must be positive"
	}
	for field, stamp := range map[string]string{"createdAt": base.CreatedAt, "updatedAt": base.UpdatedAt} {
		if stamp == "" {
			continue
		}
		if _, err := util.ParseISO(stamp); err != nil {
			errs[field] = fmt.Sprintf("Invalid timestamp %q", stamp)
		}
	}

	switch v := q.(type) {
	case *MultipleChoice:
		requirePrompt(errs, "question", v.Question)
		validateChoices(errs, v.Answers, v.CorrectIndex)
	case *TrueFalse:
		requirePrompt(errs, "statement", v.Statement)
	case *NumberInput:
		requirePrompt(errs, "question", v.Question)
		if v.Tolerance != nil && *v.Tolerance < 0 {
			errs["tolerance"] = "Tolerance cannot be negative"
		}
	case *ImageQuestion:
		requirePrompt(errs, "question", v.Question)
		if strings.TrimSpace(v.ImageURL) == "" {
			errs["imageUrl"] = "Image URL is required for image questions"
		}
		validateChoices(errs, v.Answers, v.CorrectIndex)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func requirePrompt(errs ValidationErrors, field, text string) {
	if strings.TrimSpace(text) == "" {
		errs[field] = "Question text is required"
	}
}

func validateChoices(errs ValidationErrors, answers []string, correctIndex int) {
	if len(answers) < 2 {
		errs["answers"] = "At least 2 answer options are required"
	} else {
		for _, a := range answers {
			if strings.TrimSpace(a) == "" {
				errs["answers"] = "All answer options must be filled"
				break
			}
		}
	}
	if correctIndex < 0 || correctIndex >= len(answers) {
		errs["correctIndex"] = "Valid correct answer must be selected"
	}
}
