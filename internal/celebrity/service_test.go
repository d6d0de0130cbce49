package celebrity

import (
	"context"
	"fmt"
	"testing"

	"github.com/tallerthan/content/pkg/heights"
	"github.com/tallerthan/content/pkg/interfaces"
)

// stubArticles serves a fixed corpus and counts full scans so memoization
// can be asserted.
type stubArticles struct {
	articles []*interfaces.Article
	loadAlls int
}

func (s *stubArticles) ListSlugs(ctx context.Context) ([]string, error) {
	slugs := make([]string, 0, len(s.articles))
	for _, a := range s.articles {
		slugs = append(slugs, a.Slug)
	}
	return slugs, nil
}

func (s *stubArticles) Load(ctx context.Context, slug string) (*interfaces.Article, error) {
	for _, a := range s.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubArticles) LoadAll(ctx context.Context) ([]*interfaces.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.loadAlls++
	return s.articles, nil
}

func heightArticle(slug, name, imperial string, cm float64, extra string) *interfaces.Article {
	content := fmt.Sprintf("# How Tall Is %s?\n\n\U0001F4CF **%s (%g cm)**\n%s", name, imperial, cm, extra)
	return &interfaces.Article{Slug: slug, Content: content}
}

func testCorpus() *stubArticles {
	return &stubArticles{articles: []*interfaces.Article{
		heightArticle("kevin-hart", "Kevin Hart", "5'4\"", 163, "| Profession | Comedian, Actor |"),
		heightArticle("shaquille-oneal", "Shaquille O'Neal", "7'1\"", 216, "| Profession | Basketball Player |"),
		heightArticle("zendaya", "Zendaya", "5'10\"", 178, "| Profession | Actress, Singer |"),
		heightArticle("tom-holland", "Tom Holland", "5'8\"", 173, "| Profession | Actor |"),
		{Slug: "not-a-person", Content: "# Site Changelog\n\nNothing measurable here."},
	}}
}

func newCelebrityService(t *testing.T) (*Service, *stubArticles) {
	t.Helper()
	corpus := testCorpus()
	return NewService(Config{Articles: corpus}), corpus
}

func TestAllSortsAndMemoizes(t *testing.T) {
	svc, corpus := newCelebrityService(t)
	ctx := context.Background()

	first, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(first) != 4 {
		t.Fatalf("got %d celebrities, want 4", len(first))
	}

	for i := 1; i < len(first); i++ {
		if first[i-1].Name > first[i].Name {
			t.Fatalf("not sorted by name: %q before %q", first[i-1].Name, first[i].Name)
		}
	}

	second, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All (second): %v", err)
	}
	if corpus.loadAlls != 1 {
		t.Fatalf("corpus scanned %d times, want 1", corpus.loadAlls)
	}
	if first[0] != second[0] {
		t.Fatal("second call should return the cached slice")
	}
}

func TestAllRecoversAfterFailedFirstLoad(t *testing.T) {
	svc, corpus := newCelebrityService(t)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.All(canceled); err == nil {
		t.Fatal("expected context error")
	}

	// A failed first load must not be memoized; a healthy caller gets
	// the full list.
	all, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("All after failed first load: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d celebrities, want 4", len(all))
	}
	if corpus.loadAlls != 1 {
		t.Fatalf("corpus scanned %d times, want 1", corpus.loadAlls)
	}
}

func TestBySlug(t *testing.T) {
	svc, _ := newCelebrityService(t)
	ctx := context.Background()

	c, err := svc.BySlug(ctx, "zendaya")
	if err != nil {
		t.Fatalf("BySlug: %v", err)
	}
	if c == nil || c.Name != "Zendaya" {
		t.Fatalf("got %+v", c)
	}

	miss, err := svc.BySlug(ctx, "nobody")
	if err != nil {
		t.Fatalf("BySlug miss: %v", err)
	}
	if miss != nil {
		t.Fatalf("expected nil for unknown slug, got %+v", miss)
	}
}

func TestByHeightBucketsAreCanonical(t *testing.T) {
	svc, _ := newCelebrityService(t)
	ctx := context.Background()

	groups, err := svc.ByHeight(ctx)
	if err != nil {
		t.Fatalf("ByHeight: %v", err)
	}

	total := 0
	for key, members := range groups {
		total += len(members)
		for _, c := range members {
			if heights.Slug(c.HeightCm) != key {
				t.Fatalf("%s bucketed under %q, canonical is %q", c.Slug, key, heights.Slug(c.HeightCm))
			}
		}
	}

	all, _ := svc.All(ctx)
	if total != len(all) {
		t.Fatalf("buckets hold %d celebrities, corpus has %d", total, len(all))
	}
}

func TestHeightSlugsSorted(t *testing.T) {
	svc, _ := newCelebrityService(t)

	slugs, err := svc.HeightSlugs(context.Background())
	if err != nil {
		t.Fatalf("HeightSlugs: %v", err)
	}
	if len(slugs) == 0 {
		t.Fatal("expected occupied buckets")
	}
	for i := 1; i < len(slugs); i++ {
		if slugs[i-1] > slugs[i] {
			t.Fatalf("not sorted: %q before %q", slugs[i-1], slugs[i])
		}
	}
}

func TestAtHeight(t *testing.T) {
	svc, _ := newCelebrityService(t)
	ctx := context.Background()

	bucket, err := svc.AtHeight(ctx, heights.Slug(163))
	if err != nil {
		t.Fatalf("AtHeight: %v", err)
	}
	if len(bucket) != 1 || bucket[0].Slug != "kevin-hart" {
		t.Fatalf("got %+v", bucket)
	}

	empty, err := svc.AtHeight(ctx, "9-ft-9")
	if err != nil {
		t.Fatalf("AtHeight empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty bucket, got %+v", empty)
	}
}

func TestByProfession(t *testing.T) {
	svc, _ := newCelebrityService(t)

	actors, err := svc.ByProfession(context.Background(), "actor")
	if err != nil {
		t.Fatalf("ByProfession: %v", err)
	}
	want := map[string]bool{"kevin-hart": true, "tom-holland": true}
	if len(actors) != len(want) {
		t.Fatalf("got %d matches, want %d", len(actors), len(want))
	}
	for _, c := range actors {
		if !want[c.Slug] {
			t.Fatalf("unexpected match %q", c.Slug)
		}
	}
}

func TestSearch(t *testing.T) {
	svc, _ := newCelebrityService(t)

	hits, err := svc.Search(context.Background(), "tom")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Slug != "tom-holland" {
		t.Fatalf("got %+v", hits)
	}
}
