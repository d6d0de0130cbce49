package interfaces

import "context"

// ArticleService exposes corpus access. Missing directories and missing
// files are expected conditions: ListSlugs returns an empty slice and Load
// returns (nil, nil) respectively. Only genuine I/O failures surface as
// errors.
type ArticleService interface {
	ListSlugs(ctx context.Context) ([]string, error)
	Load(ctx context.Context, slug string) (*Article, error)
	LoadAll(ctx context.Context) ([]*Article, error)
}

// CelebrityService derives celebrity records from the article corpus. The
// full list is computed once per service instance and memoized; every
// accessor reads the cached list after the first successful population.
type CelebrityService interface {
	All(ctx context.Context) ([]*Celebrity, error)
	BySlug(ctx context.Context, slug string) (*Celebrity, error)
	ByHeight(ctx context.Context) (map[string][]*Celebrity, error)
	HeightSlugs(ctx context.Context) ([]string, error)
	AtHeight(ctx context.Context, heightSlug string) ([]*Celebrity, error)
	ByProfession(ctx context.Context, profession string) ([]*Celebrity, error)
	Search(ctx context.Context, query string) ([]*Celebrity, error)
	ComparisonPairs(ctx context.Context) ([]ComparisonPair, error)
}

// HTMLRenderer converts raw article body text into a display HTML
// fragment. Implementations are pure functions of the input and never
// fail; unrecognized constructs pass through as paragraph text.
type HTMLRenderer interface {
	ToHTML(markdown string) string
}

// ImageIndex looks up pre-fetched image metadata by celebrity slug. A miss
// returns (ImageRecord{}, false) rather than an error.
type ImageIndex interface {
	Lookup(slug string) (ImageRecord, bool)
}
