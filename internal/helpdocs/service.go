package helpdocs

import (
	"context"
	"errors"
	"fmt"

	"github.com/learnkick/learnkick-admin/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleView struct {
	Article *Article   `json:"article"`
	Section string     `json:"section"`
	Related []*Article `json:"related"`
}

type DocumentationService interface {
	Search(ctx context.Context, language Language, query string) ([]SearchResult, error)
	GetArticle(ctx context.Context, language Language, id string) (*ArticleView, error)
	Languages() []Language
}

type documentationService struct {
	repo DocumentationRepository
}

func NewService(repo DocumentationRepository) DocumentationService {
	return &documentationService{repo: repo}
}

func (s *documentationService) Search(ctx context.Context, language Language, query string) ([]SearchResult, error) {
	log := config.WithContext(ctx)

	corpus, err := s.repo.Corpus(language)
	if err != nil {
		log.WithError(err).Error("Failed to load documentation corpus")
		return nil, err
	}

	results := Search(corpus.Sections, query)
	log.WithFields(logrus.Fields{
		"language": language,
		"query":    query,
		"results":  len(results),
	}).Info("Documentation searched")
	return results, nil
}

func (s *documentationService) GetArticle(ctx context.Context, language Language, id string) (*ArticleView, error) {
	log := config.WithContext(ctx).WithField("article_id", id)

	corpus, err := s.repo.Corpus(language)
	if err != nil {
		log.WithError(err).Error("Failed to load documentation corpus")
		return nil, err
	}

	article, section, ok := corpus.Article(id)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrArticleNotFound, id)
		log.WithError(err).Warn("Article not found")
		return nil, err
	}

	view := &ArticleView{
		Article: article,
		Section: section.Title,
		Related: corpus.Related(id),
	}
	log.WithField("related", len(view.Related)).Info("Article loaded")
	return view, nil
}

func (s *documentationService) Languages() []Language {
	return s.repo.Languages()
}
