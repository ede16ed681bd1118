package helpdocs_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/learnkick/learnkick-admin/internal/helpdocs"
)

const sampleCorpus = `
en:
  - id: basics
    title: Basics
    icon: "📘"
    articles:
      - id: intro
        title: Introduction
        content: Start here.
        difficulty: beginner
        tags: [start]
        relatedArticles: [missing, advanced-use, intro-2]
      - id: intro-2
        title: More introduction
        content: Keep going.
  - id: deep
    title: Deep dive
    icon: "🔬"
    articles:
      - id: advanced-use
        title: Advanced use
        content: Tricks.
        difficulty: advanced
de:
  - id: basics
    title: Grundlagen
    icon: "📘"
    articles:
      - id: intro
        title: Einführung
        content: Hier beginnen.
`

func TestParseCorpora(t *testing.T) {
	corpora, err := helpdocs.ParseCorpora([]byte(sampleCorpus))
	if err != nil {
		t.Fatalf("ParseCorpora failed: %v", err)
	}
	if len(corpora) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(corpora))
	}

	en := corpora[helpdocs.LanguageEnglish]
	if en.Language != helpdocs.LanguageEnglish || en.ArticleCount() != 3 {
		t.Errorf("unexpected english corpus: %+v", en)
	}
	if en.Sections[1].Icon != "🔬" {
		t.Errorf("icon = %q", en.Sections[1].Icon)
	}
}

func TestParseCorporaErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "DuplicateArticle",
			yaml: "en:\n  - id: a\n    articles:\n      - id: x\n  - id: b\n    articles:\n      - id: x\n",
			want: helpdocs.ErrDuplicateArticle,
		},
		{
			name: "MissingID",
			yaml: "en:\n  - id: a\n    articles:\n      - title: No id\n",
			want: helpdocs.ErrMissingArticleID,
		},
		{
			name: "UnknownLanguage",
			yaml: "it:\n  - id: a\n",
			want: helpdocs.ErrUnknownLanguage,
		},
		{
			name: "BadDifficulty",
			yaml: "en:\n  - id: a\n    articles:\n      - id: x\n        difficulty: expert\n",
			want: helpdocs.ErrInvalidDifficulty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := helpdocs.ParseCorpora([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("SameIDAcrossLanguages", func(t *testing.T) {
		if _, err := helpdocs.ParseCorpora([]byte(sampleCorpus)); err != nil {
			t.Errorf("ids only need to be unique per language: %v", err)
		}
	})
}

func TestCorpusLookup(t *testing.T) {
	corpora, err := helpdocs.ParseCorpora([]byte(sampleCorpus))
	if err != nil {
		t.Fatal(err)
	}
	en := corpora[helpdocs.LanguageEnglish]

	a, s, ok := en.Article("advanced-use")
	if !ok || a.Title != "Advanced use" || s.ID != "deep" {
		t.Errorf("Article(advanced-use) = %+v, %+v, %v", a, s, ok)
	}
	if _, _, ok := en.Article("nope"); ok {
		t.Error("unknown id should not be found")
	}

	var related []string
	for _, r := range en.Related("intro") {
		related = append(related, r.ID)
	}
	if !reflect.DeepEqual(related, []string{"advanced-use", "intro-2"}) {
		t.Errorf("Related(intro) = %v", related)
	}
	if got := en.Related("nope"); got == nil || len(got) != 0 {
		t.Errorf("Related(nope) = %v, want empty", got)
	}
}

func TestNewRepository(t *testing.T) {
	t.Run("BuiltIn", func(t *testing.T) {
		repo, err := helpdocs.NewRepository("")
		if err != nil {
			t.Fatalf("built-in corpus failed to load: %v", err)
		}
		want := []helpdocs.Language{"de", "en", "fr", "sq"}
		if !reflect.DeepEqual(repo.Languages(), want) {
			t.Errorf("languages = %v, want %v", repo.Languages(), want)
		}
		en, err := repo.Corpus(helpdocs.LanguageEnglish)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, ok := en.Article("welcome"); !ok {
			t.Error("built-in english corpus should contain the welcome article")
		}
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "docs.yaml")
		if err := os.WriteFile(path, []byte(sampleCorpus), 0o600); err != nil {
			t.Fatal(err)
		}
		repo, err := helpdocs.NewRepository(path)
		if err != nil {
			t.Fatalf("NewRepository failed: %v", err)
		}
		if _, err := repo.Corpus(helpdocs.LanguageFrench); !errors.Is(err, helpdocs.ErrLanguageNotFound) {
			t.Errorf("expected ErrLanguageNotFound, got %v", err)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := helpdocs.NewRepository(filepath.Join(t.TempDir(), "none.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not-exist error, got %v", err)
		}
	})
}
