package container

import (
	"github.com/learnkick/learnkick-admin/internal/config"
	"github.com/learnkick/learnkick-admin/internal/helpdocs"
	"github.com/learnkick/learnkick-admin/internal/question"
)

type Container struct {
	Settings               *config.Settings
	QuestionContainer      *question.QuestionContainer
	DocumentationContainer *helpdocs.DocumentationContainer
}

func New(settings *config.Settings) (*Container, error) {
	config.Init(settings.Log.Level, settings.Log.Format)

	questionContainer := question.NewQuestionContainer(settings)
	documentationContainer, err := helpdocs.NewDocumentationContainer(settings)
	if err != nil {
		return nil, err
	}

	return &Container{
		Settings:               settings,
		QuestionContainer:      questionContainer,
		DocumentationContainer: documentationContainer,
	}, nil
}
