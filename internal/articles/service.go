package articles

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tallerthan/content/internal/logging"
	"github.com/tallerthan/content/pkg/interfaces"
)

// Config controls how the corpus directory is discovered and filtered.
type Config struct {
	// Dir is the corpus directory holding one `<slug>.md` file per article.
	Dir string
	// FS overrides the filesystem used for reads. When nil, os.DirFS(Dir)
	// is used. Tests inject an fstest.MapFS here.
	FS fs.FS
	// IgnoredFiles is the fixed denylist of non-celebrity documents.
	IgnoredFiles []string
	// ExcludeSubstrings drops any filename containing one of these values.
	ExcludeSubstrings []string
	// Logger receives corpus-level diagnostics. Defaults to a no-op logger.
	Logger interfaces.Logger
}

// Service maps a corpus directory into Article values. It performs no
// caching of its own: every call re-reads the filesystem, and only the
// derived celebrity list is memoized downstream.
type Service struct {
	fs       fs.FS
	ignored  map[string]struct{}
	excludes []string
	logger   interfaces.Logger
}

var _ interfaces.ArticleService = (*Service)(nil)

// NewService constructs the corpus loader. A missing directory is not an
// error here; it surfaces as an empty slug list at read time.
func NewService(cfg Config) *Service {
	filesystem := cfg.FS
	if filesystem == nil {
		filesystem = os.DirFS(cfg.Dir)
	}

	ignored := make(map[string]struct{}, len(cfg.IgnoredFiles))
	for _, name := range cfg.IgnoredFiles {
		ignored[name] = struct{}{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		fs:       filesystem,
		ignored:  ignored,
		excludes: append([]string(nil), cfg.ExcludeSubstrings...),
		logger:   logger,
	}
}

// ListSlugs lists the corpus `.md` files minus the denylist and exclusion
// substrings, in filesystem order. A missing corpus directory logs a
// warning and yields an empty list so page generation can proceed with
// zero celebrities.
func (s *Service) ListSlugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.fs, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("articles.corpus.missing", "error", err)
			return []string{}, nil
		}
		return nil, fmt.Errorf("articles: list corpus: %w", err)
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		if _, skip := s.ignored[name]; skip {
			continue
		}
		if s.excluded(name) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".md"))
	}

	return slugs, nil
}

// Load reads and parses `<slug>.md`. A missing file returns (nil, nil);
// that is the normal not-found path for routing layers. Other read
// failures indicate an environment problem and propagate.
func (s *Service) Load(ctx context.Context, slug string) (*interfaces.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fs, slug+".md")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("articles: read %s.md: %w", slug, err)
	}

	return buildArticle(slug, string(data)), nil
}

// LoadAll lists the corpus and loads every article, dropping files that
// vanished between the listing and the read.
func (s *Service) LoadAll(ctx context.Context) ([]*interfaces.Article, error) {
	slugs, err := s.ListSlugs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*interfaces.Article, 0, len(slugs))
	for _, slug := range slugs {
		article, err := s.Load(ctx, slug)
		if err != nil {
			return nil, err
		}
		if article == nil {
			continue
		}
		out = append(out, article)
	}

	return out, nil
}

func (s *Service) excluded(name string) bool {
	for _, substr := range s.excludes {
		if substr != "" && strings.Contains(name, substr) {
			return true
		}
	}
	return false
}

// buildArticle normalizes one raw document: frontmatter split, slug
// resolution (frontmatter wins over the filename), and JSON-LD harvest.
func buildArticle(fileSlug, raw string) *interfaces.Article {
	fm, body := ParseFrontMatter(raw)

	slug := fileSlug
	if fm.Slug != "" {
		slug = fm.Slug
	} else {
		fm.Slug = fileSlug
	}

	return &interfaces.Article{
		Slug:        slug,
		FrontMatter: fm,
		Content:     body,
		Schemas:     ExtractSchemas(body),
	}
}
