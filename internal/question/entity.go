package question

// Question is one of *MultipleChoice, *TrueFalse, *NumberInput or
// *ImageQuestion. The set is closed; consumers switch on the concrete type.
type Question interface {
	QuestionType() Type
	Common() *Base
	sealed()
}

// Base holds the fields shared by every variant. Timestamps are kept as the
// ISO-8601 strings the admin UI exchanges.
type Base struct {
	ID              string   `json:"id" yaml:"id"`
	Subject         string   `json:"subject" yaml:"subject"`
	Grade           int      `json:"grade" yaml:"grade"`
	Difficulty      int      `json:"difficulty" yaml:"difficulty"`
	Language        Language `json:"language" yaml:"language"`
	TimeLimit       int      `json:"timeLimit" yaml:"timeLimit"`
	Tags            []string `json:"tags" yaml:"tags"`
	Lehrplan21Topic string   `json:"lehrplan21Topic,omitempty" yaml:"lehrplan21Topic,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

func (b *Base) Common() *Base { return b }

type MultipleChoice struct {
	Base         `yaml:",inline"`
	Question     string   `json:"question" yaml:"question"`
	Answers      []string `json:"answers" yaml:"answers"`
	CorrectIndex int      `json:"correctIndex" yaml:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

type TrueFalse struct {
	Base        `yaml:",inline"`
	Statement   string `json:"statement" yaml:"statement"`
	Correct     bool   `json:"correct" yaml:"correct"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

type NumberInput struct {
	Base          `yaml:",inline"`
	Question      string   `json:"question" yaml:"question"`
	CorrectAnswer float64  `json:"correctAnswer" yaml:"correctAnswer"`
	Tolerance     *float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	Unit          string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Explanation   string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

type ImageQuestion struct {
	Base         `yaml:",inline"`
	Question     string   `json:"question" yaml:"question"`
	ImageURL     string   `json:"imageUrl" yaml:"imageUrl"`
	Answers      []string `json:"answers" yaml:"answers"`
	CorrectIndex int      `json:"correctIndex" yaml:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

func (*MultipleChoice) QuestionType() Type { return TypeMultipleChoice }
func (*TrueFalse) QuestionType() Type      { return TypeTrueFalse }
func (*NumberInput) QuestionType() Type    { return TypeNumberInput }
func (*ImageQuestion) QuestionType() Type  { return TypeImageQuestion }

func (*MultipleChoice) sealed() {}
func (*TrueFalse) sealed()      {}
func (*NumberInput) sealed()    {}
func (*ImageQuestion) sealed()  {}

// Prompt returns the question text, or the statement for true/false items.
func Prompt(q Question) string {
	switch v := q.(type) {
	case *MultipleChoice:
		return v.Question
	case *TrueFalse:
		return v.Statement
	case *NumberInput:
		return v.Question
	case *ImageQuestion:
		return v.Question
	}
	return ""
}

// Answers returns the answer options of choice-bearing variants and nil
// otherwise.
func Answers(q Question) []string {
	switch v := q.(type) {
	case *MultipleChoice:
		return v.Answers
	case *ImageQuestion:
		return v.Answers
	}
	return nil
}

func Explanation(q Question) string {
	switch v := q.(type) {
	case *MultipleChoice:
		return v.Explanation
	case *TrueFalse:
		return v.Explanation
	case *NumberInput:
		return v.Explanation
	case *ImageQuestion:
		return v.Explanation
	}
	return ""
}
