package helpdocs

import "github.com/learnkick/learnkick-admin/internal/config"

type DocumentationContainer struct {
	Repo    DocumentationRepository
	Service DocumentationService
}

func NewDocumentationContainer(settings *config.Settings) (*DocumentationContainer, error) {
	repo, err := NewRepository(settings.Docs.Corpus)
	if err != nil {
		return nil, err
	}
	service := NewService(repo)

	return &DocumentationContainer{
		Repo:    repo,
		Service: service,
	}, nil
}
