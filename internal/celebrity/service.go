package celebrity

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tallerthan/content/internal/logging"
	"github.com/tallerthan/content/pkg/heights"
	"github.com/tallerthan/content/pkg/interfaces"
)

// Config wires the celebrity service's collaborators.
type Config struct {
	Articles interfaces.ArticleService
	Images   interfaces.ImageIndex
	// MaxPairs caps ComparisonPairs output. Zero means DefaultMaxPairs.
	MaxPairs int
	Logger   interfaces.Logger
}

// DefaultMaxPairs is the ranking cutoff for comparison pages.
const DefaultMaxPairs = 500

// Service derives celebrity records from the article corpus. The full list
// is computed once per instance and memoized; the corpus is build-time
// static so there is no invalidation. Only a successful build is cached:
// a failed first load (a canceled context, a read error) leaves the cell
// empty so the next caller retries. The cached slice is never mutated
// after population.
type Service struct {
	articles interfaces.ArticleService
	images   interfaces.ImageIndex
	maxPairs int
	logger   interfaces.Logger

	mu     sync.Mutex
	loaded bool
	cached []*interfaces.Celebrity
}

var _ interfaces.CelebrityService = (*Service)(nil)

// NewService constructs the extraction service over the supplied corpus.
func NewService(cfg Config) *Service {
	maxPairs := cfg.MaxPairs
	if maxPairs <= 0 {
		maxPairs = DefaultMaxPairs
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		articles: cfg.Articles,
		images:   cfg.Images,
		maxPairs: maxPairs,
		logger:   logger,
	}
}

// All returns every extracted celebrity, sorted by name with locale-aware
// ordering. The first successful call scans the corpus; subsequent calls
// return the cached list without touching the filesystem. Errors are
// returned but not cached.
func (s *Service) All(ctx context.Context) ([]*interfaces.Celebrity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.cached, nil
	}

	list, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	s.cached = list
	s.loaded = true
	return s.cached, nil
}

func (s *Service) build(ctx context.Context) ([]*interfaces.Celebrity, error) {
	arts, err := s.articles.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	celebrities := make([]*interfaces.Celebrity, 0, len(arts))
	dropped := 0
	for _, article := range arts {
		c, ok := FromArticle(article, s.images)
		if !ok {
			dropped++
			s.logger.Debug("celebrity.extract.dropped", "slug", article.Slug)
			continue
		}
		celebrities = append(celebrities, c)
	}

	collator := collate.New(language.English)
	sort.SliceStable(celebrities, func(i, j int) bool {
		return collator.CompareString(celebrities[i].Name, celebrities[j].Name) < 0
	})

	s.logger.Info("celebrity.corpus.loaded",
		"articles", len(arts),
		"celebrities", len(celebrities),
		"dropped", dropped,
	)

	return celebrities, nil
}

// BySlug looks a celebrity up in the cached list. Absence is (nil, nil).
func (s *Service) BySlug(ctx context.Context, slug string) (*interfaces.Celebrity, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

// ByHeight groups the cached list by canonical height-bucket slug. Every
// celebrity lands in exactly one bucket.
func (s *Service) ByHeight(ctx context.Context) (map[string][]*interfaces.Celebrity, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	groups := map[string][]*interfaces.Celebrity{}
	for _, c := range all {
		key := heights.Slug(c.HeightCm)
		groups[key] = append(groups[key], c)
	}
	return groups, nil
}

// HeightSlugs returns the occupied bucket keys in sorted order.
func (s *Service) HeightSlugs(ctx context.Context) ([]string, error) {
	groups, err := s.ByHeight(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(groups))
	for key := range groups {
		slugs = append(slugs, key)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// AtHeight returns the bucket for one height slug; unknown buckets are empty.
func (s *Service) AtHeight(ctx context.Context, heightSlug string) ([]*interfaces.Celebrity, error) {
	groups, err := s.ByHeight(ctx)
	if err != nil {
		return nil, err
	}
	return groups[heightSlug], nil
}

// ByProfession filters by case-insensitive profession substring.
func (s *Service) ByProfession(ctx context.Context, profession string) ([]*interfaces.Celebrity, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(profession)
	var out []*interfaces.Celebrity
	for _, c := range all {
		if c.Profession != "" && strings.Contains(strings.ToLower(c.Profession), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Search filters by case-insensitive name substring.
func (s *Service) Search(ctx context.Context, query string) ([]*interfaces.Celebrity, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var out []*interfaces.Celebrity
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}
