package imagescmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tallerthan/content/internal/wikipedia"
	"github.com/tallerthan/content/pkg/interfaces"
)

type fixedArticles []*interfaces.Article

func (f fixedArticles) ListSlugs(ctx context.Context) ([]string, error) {
	slugs := make([]string, 0, len(f))
	for _, a := range f {
		slugs = append(slugs, a.Slug)
	}
	return slugs, nil
}

func (f fixedArticles) Load(ctx context.Context, slug string) (*interfaces.Article, error) {
	for _, a := range f {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (f fixedArticles) LoadAll(ctx context.Context) ([]*interfaces.Article, error) {
	return f, nil
}

func TestRefreshWritesTable(t *testing.T) {
	var requestedTitles []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		title := r.URL.Query().Get("titles")
		requestedTitles = append(requestedTitles, title)

		if title == "Obscure Person" {
			w.Write([]byte(`{"query": {"pages": {"1": {"title": "Obscure Person"}}}}`))
			return
		}
		w.Write([]byte(`{"query": {"pages": {"1": {
			"title": "` + title + `",
			"thumbnail": {"source": "https://upload.wikimedia.org/` + title + `.jpg"}
		}}}}`))
	}))
	defer server.Close()

	corpus := fixedArticles{
		{Slug: "kevin-hart", Content: "# How Tall Is Kevin Hart?\n"},
		{Slug: "shaquille-oneal", Content: "# How Tall Is Shaq?\n"},
		{Slug: "obscure-person", Content: "# How Tall Is Obscure Person?\n"},
	}

	output := filepath.Join(t.TempDir(), "tables", "celebrity-images.json")
	handler := NewRefreshHandler(corpus, wikipedia.NewClient(wikipedia.WithBaseURL(server.URL)), nil)

	err := handler.Execute(context.Background(), RefreshCommand{
		OutputPath: output,
		Delay:      time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// The override table wins over the article headline.
	if requestedTitles[1] != "Shaquille O'Neal" {
		t.Fatalf("override not applied, fetched %q", requestedTitles[1])
	}
	if requestedTitles[0] != "Kevin Hart" {
		t.Fatalf("headline name not used, fetched %q", requestedTitles[0])
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	table := map[string]interfaces.ImageRecord{}
	if err := json.Unmarshal(data, &table); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("table has %d entries, want 3", len(table))
	}

	hart := table["kevin-hart"]
	if hart.ImageURL == "" {
		t.Fatal("kevin-hart entry missing image URL")
	}
	if hart.License != "Wikipedia (check individual image license)" {
		t.Fatalf("License = %q", hart.License)
	}

	// Pages without thumbnails still get an entry, with no license.
	obscure := table["obscure-person"]
	if obscure.ImageURL != "" || obscure.License != "" {
		t.Fatalf("expected empty record for obscure-person, got %+v", obscure)
	}
}

func TestRefreshSurvivesFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	corpus := fixedArticles{
		{Slug: "kevin-hart", Content: "# How Tall Is Kevin Hart?\n"},
	}

	output := filepath.Join(t.TempDir(), "celebrity-images.json")
	handler := NewRefreshHandler(corpus, wikipedia.NewClient(wikipedia.WithBaseURL(server.URL)), nil)

	err := handler.Execute(context.Background(), RefreshCommand{OutputPath: output, Delay: time.Millisecond})
	if err != nil {
		t.Fatalf("a failed lookup must not fail the run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	table := map[string]interfaces.ImageRecord{}
	if err := json.Unmarshal(data, &table); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if record := table["kevin-hart"]; record.ImageURL != "" {
		t.Fatalf("expected empty record after failure, got %+v", record)
	}
}

func TestRefreshValidatesOutputPath(t *testing.T) {
	handler := NewRefreshHandler(fixedArticles{}, wikipedia.NewClient(), nil)

	if err := handler.Execute(context.Background(), RefreshCommand{OutputPath: "  "}); err == nil {
		t.Fatal("blank output path must fail validation")
	}
}

func TestLookupNameFallsBackToSlug(t *testing.T) {
	got := lookupName(&interfaces.Article{Slug: "some-new-person", Content: "no heading"})
	if got != "some new person" {
		t.Fatalf("got %q", got)
	}
}
