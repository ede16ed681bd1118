package helpdocs

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLanguage   = errors.New("unknown documentation language")
	ErrDuplicateArticle  = errors.New("duplicate article id")
	ErrMissingArticleID  = errors.New("article id is required")
	ErrInvalidDifficulty = errors.New("invalid article difficulty")
)

// LoadCorpora reads a documentation file: a YAML mapping from language code
// to that language's ordered sections.
func LoadCorpora(path string) (map[Language]*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	corpora, err := ParseCorpora(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return corpora, nil
}

func ParseCorpora(data []byte) (map[Language]*Corpus, error) {
	out := map[Language]*Corpus{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}

	var raw map[string][]Section
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	for code, sections := range raw {
		lang := Language(strings.ToLower(strings.TrimSpace(code)))
		if !lang.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
		}
		c := &Corpus{Language: lang, Sections: sections}
		if err := c.check(); err != nil {
			return nil, fmt.Errorf("%s: %w", lang, err)
		}
		out[lang] = c
	}
	return out, nil
}

// check enforces unique, non-empty article ids within the corpus and a known
// difficulty when one is given.
func (c *Corpus) check() error {
	seen := map[string]string{}
	for _, s := range c.Sections {
		for _, a := range s.Articles {
			if strings.TrimSpace(a.ID) == "" {
				return fmt.Errorf("section %s: %w", s.ID, ErrMissingArticleID)
			}
			if prev, ok := seen[a.ID]; ok {
				return fmt.Errorf("%w: %q in sections %s and %s", ErrDuplicateArticle, a.ID, prev, s.ID)
			}
			seen[a.ID] = s.ID
			if a.Difficulty != "" && !a.Difficulty.IsValid() {
				return fmt.Errorf("article %s: %w: %q", a.ID, ErrInvalidDifficulty, a.Difficulty)
			}
		}
	}
	return nil
}

func sortedLanguages(corpora map[Language]*Corpus) []Language {
	out := make([]Language, 0, len(corpora))
	for l := range corpora {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
