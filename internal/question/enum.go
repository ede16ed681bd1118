package question

type Type string

const (
	TypeMultipleChoice Type = "multiple-choice"
	TypeTrueFalse      Type = "true-false"
	TypeNumberInput    Type = "number-input"
	TypeImageQuestion  Type = "image-question"
)

var AllTypes = []Type{
	TypeMultipleChoice,
	TypeTrueFalse,
	TypeNumberInput,
	TypeImageQuestion,
}

func (t Type) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"
)

var AllLanguages = []Language{
	LanguageGerman,
	LanguageEnglish,
	LanguageFrench,
}

func (l Language) IsValid() bool {
	for _, v := range AllLanguages {
		if l == v {
			return true
		}
	}
	return false
}

const (
	MinGrade      = 1
	MaxGrade      = 6
	MinDifficulty = 1
	MaxDifficulty = 5

	DefaultTimeLimit = 15000
)
