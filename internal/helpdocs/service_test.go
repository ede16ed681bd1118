package helpdocs_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/learnkick/learnkick-admin/internal/config"
	"github.com/learnkick/learnkick-admin/internal/helpdocs"
)

func newTestService(t *testing.T) helpdocs.DocumentationService {
	t.Helper()
	config.SetOutput(io.Discard)

	c, err := helpdocs.NewDocumentationContainer(&config.Settings{})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	return c.Service
}

func TestServiceSearch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	results, err := svc.Search(ctx, helpdocs.LanguageEnglish, "csv")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected csv articles in the built-in corpus")
	}
	if results[0].Article.ID != "csv-format" {
		t.Errorf("top result = %s, want csv-format", results[0].Article.ID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].RelevanceScore > results[i-1].RelevanceScore {
			t.Errorf("results not sorted at %d", i)
		}
	}

	empty, err := svc.Search(ctx, helpdocs.LanguageGerman, "   ")
	if err != nil || len(empty) != 0 {
		t.Errorf("blank query = %v, %v", empty, err)
	}

	if _, err := svc.Search(ctx, "it", "csv"); !errors.Is(err, helpdocs.ErrLanguageNotFound) {
		t.Errorf("expected ErrLanguageNotFound, got %v", err)
	}
}

func TestServiceGetArticle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	view, err := svc.GetArticle(ctx, helpdocs.LanguageEnglish, "welcome")
	if err != nil {
		t.Fatalf("GetArticle failed: %v", err)
	}
	if view.Section != "Getting Started" || len(view.Related) != 2 {
		t.Errorf("unexpected view: section=%s related=%d", view.Section, len(view.Related))
	}

	view, err = svc.GetArticle(ctx, helpdocs.LanguageGerman, "welcome")
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Related) != 0 {
		t.Errorf("german related articles do not exist yet, got %d", len(view.Related))
	}

	if _, err := svc.GetArticle(ctx, helpdocs.LanguageEnglish, "nope"); !errors.Is(err, helpdocs.ErrArticleNotFound) {
		t.Errorf("expected ErrArticleNotFound, got %v", err)
	}
}
