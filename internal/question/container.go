package question

import "github.com/learnkick/learnkick-admin/internal/config"

type QuestionContainer struct {
	Service QuestionService
}

func NewQuestionContainer(settings *config.Settings) *QuestionContainer {
	decoder := Decoder{
		DefaultTimeLimit: settings.Questions.DefaultTimeLimit,
	}
	service := NewService(decoder)

	return &QuestionContainer{
		Service: service,
	}
}
