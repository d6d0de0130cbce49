// Package urls centralizes the public URL space so the page-generation
// layer, sitemap callers and internal links all build paths from one route
// table.
package urls

import (
	slug "github.com/goliatone/go-slug"
	urlkit "github.com/goliatone/go-urlkit"

	"github.com/tallerthan/content/internal/celebrity"
	"github.com/tallerthan/content/pkg/heights"
)

const siteGroup = "site"

// Route names registered on the site group.
const (
	RouteHome         = "home"
	RouteCelebrity    = "celebrity"
	RouteCelebrities  = "celebrities"
	RouteHeight       = "height"
	RouteHeights      = "heights"
	RouteCompare      = "compare"
	RouteCompareIndex = "compare_index"
	RouteYouVs        = "you_vs"
)

// Config adjusts URL construction.
type Config struct {
	// BaseURL prefixes every built URL, e.g. "https://tallerthan.com".
	// Empty produces rooted paths.
	BaseURL string
}

// Builder produces canonical site URLs backed by a go-urlkit route manager.
type Builder struct {
	manager *urlkit.RouteManager
}

// New registers the site's route table.
func New(cfg Config) *Builder {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: cfg.BaseURL,
				Paths: map[string]string{
					RouteHome:         "/",
					RouteCelebrity:    "/celebrity/:slug",
					RouteCelebrities:  "/celebrity",
					RouteHeight:       "/height/:height",
					RouteHeights:      "/height",
					RouteCompare:      "/compare/:slugs",
					RouteCompareIndex: "/compare",
					RouteYouVs:        "/compare/you-vs/:slug",
				},
			},
		},
	})

	return &Builder{manager: manager}
}

// Celebrity returns the profile URL for a celebrity slug.
func (b *Builder) Celebrity(celebritySlug string) (string, error) {
	return b.build(RouteCelebrity, "slug", celebritySlug)
}

// Height returns the listing URL for the bucket containing cm.
func (b *Builder) Height(cm float64) (string, error) {
	return b.build(RouteHeight, "height", heights.Slug(cm))
}

// HeightBucket returns the listing URL for an existing bucket slug.
func (b *Builder) HeightBucket(heightSlug string) (string, error) {
	return b.build(RouteHeight, "height", heightSlug)
}

// Comparison returns the canonical matchup URL for two celebrity slugs,
// independent of argument order.
func (b *Builder) Comparison(slugA, slugB string) (string, error) {
	return b.build(RouteCompare, "slugs", celebrity.ComparisonSlug(slugA, slugB))
}

// YouVs returns the visitor-versus-celebrity URL for a celebrity slug.
func (b *Builder) YouVs(celebritySlug string) (string, error) {
	return b.build(RouteYouVs, "slug", celebritySlug)
}

// Route builds a parameterless route such as RouteHome or RouteHeights.
func (b *Builder) Route(name string) (string, error) {
	return b.manager.Group(siteGroup).Builder(name).Build()
}

func (b *Builder) build(route, param, value string) (string, error) {
	return b.manager.Group(siteGroup).Builder(route).WithParam(param, value).Build()
}

// Slugify normalizes free text (typically a celebrity name) into a URL slug.
func Slugify(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the value already satisfies slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
