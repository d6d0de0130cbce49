// Package content is the tallerthan content engine: it turns a directory
// of celebrity markdown articles into validated Celebrity records and
// display HTML for the page-generation layer.
package content

import (
	"fmt"
	"io/fs"

	"github.com/tallerthan/content/internal/articles"
	"github.com/tallerthan/content/internal/celebrity"
	"github.com/tallerthan/content/internal/images"
	"github.com/tallerthan/content/internal/logging"
	"github.com/tallerthan/content/internal/render"
	"github.com/tallerthan/content/pkg/interfaces"
	"github.com/tallerthan/content/pkg/urls"
)

// Engine bundles the wired content services. Construct one per process;
// the celebrity list is memoized on the engine's celebrity service.
type Engine struct {
	cfg Config

	articles    interfaces.ArticleService
	celebrities interfaces.CelebrityService
	renderer    interfaces.HTMLRenderer
	images      interfaces.ImageIndex
	urls        *urls.Builder
	logs        interfaces.LoggerProvider
}

// Option adjusts engine construction.
type Option func(*options)

type options struct {
	logs     interfaces.LoggerProvider
	corpusFS fs.FS
	images   interfaces.ImageIndex
}

// WithLoggerProvider supplies module loggers. Without it the engine stays
// silent.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) {
		o.logs = provider
	}
}

// WithCorpusFS overrides the corpus filesystem, primarily for tests.
func WithCorpusFS(fsys fs.FS) Option {
	return func(o *options) {
		o.corpusFS = fsys
	}
}

// WithImageIndex replaces the file-backed image table.
func WithImageIndex(index interfaces.ImageIndex) Option {
	return func(o *options) {
		o.images = index
	}
}

// New validates cfg and wires the loader, extractor, renderer, image index
// and URL builder into a ready engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("content: invalid config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	articleService := articles.NewService(articles.Config{
		Dir:               cfg.CorpusDir,
		FS:                o.corpusFS,
		IgnoredFiles:      cfg.IgnoredFiles,
		ExcludeSubstrings: cfg.ExcludeSubstrings,
		Logger:            logging.ArticlesLogger(o.logs),
	})

	imageIndex := o.images
	if imageIndex == nil {
		loaded, err := images.Load(cfg.ImagesPath, logging.ImagesLogger(o.logs))
		if err != nil {
			return nil, err
		}
		imageIndex = loaded
	}

	celebrityService := celebrity.NewService(celebrity.Config{
		Articles: articleService,
		Images:   imageIndex,
		MaxPairs: cfg.MaxComparisonPairs,
		Logger:   logging.CelebrityLogger(o.logs),
	})

	return &Engine{
		cfg:         cfg,
		articles:    articleService,
		celebrities: celebrityService,
		renderer:    render.New(),
		images:      imageIndex,
		urls:        urls.New(urls.Config{BaseURL: cfg.BaseURL}),
		logs:        o.logs,
	}, nil
}

// Articles exposes the corpus loader.
func (e *Engine) Articles() interfaces.ArticleService {
	return e.articles
}

// Celebrities exposes the extraction service.
func (e *Engine) Celebrities() interfaces.CelebrityService {
	return e.celebrities
}

// Renderer exposes the markdown-subset renderer.
func (e *Engine) Renderer() interfaces.HTMLRenderer {
	return e.renderer
}

// Images exposes the image lookup table.
func (e *Engine) Images() interfaces.ImageIndex {
	return e.images
}

// URLs exposes the canonical site URL builder.
func (e *Engine) URLs() *urls.Builder {
	return e.urls
}
