package helpdocs

import (
	_ "embed"
	"errors"
	"fmt"
)

//go:embed corpus/default.yaml
var defaultCorpus []byte

var ErrLanguageNotFound = errors.New("no documentation for language")

type DocumentationRepository interface {
	Corpus(language Language) (*Corpus, error)
	Languages() []Language
}

type documentationRepository struct {
	corpora map[Language]*Corpus
}

// NewRepository loads the corpus file at path, or the built-in documentation
// when path is empty.
func NewRepository(path string) (DocumentationRepository, error) {
	var (
		corpora map[Language]*Corpus
		err     error
	)
	if path == "" {
		corpora, err = ParseCorpora(defaultCorpus)
		if err != nil {
			return nil, fmt.Errorf("built-in documentation: %w", err)
		}
	} else {
		corpora, err = LoadCorpora(path)
		if err != nil {
			return nil, err
		}
	}
	return &documentationRepository{corpora: corpora}, nil
}

func (r *documentationRepository) Corpus(language Language) (*Corpus, error) {
	c, ok := r.corpora[language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLanguageNotFound, language)
	}
	return c, nil
}

func (r *documentationRepository) Languages() []Language {
	return sortedLanguages(r.corpora)
}
