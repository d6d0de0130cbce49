package interfaces

// FrontMatter captures the normalized document metadata shared by both
// supported frontmatter dialects. Every field is optional; absent keys
// resolve to zero values rather than errors.
type FrontMatter struct {
	Title           string
	MetaDescription string
	Slug            string
	// Schema carries the optional nested `schema.person` payload from the
	// YAML dialect. The HTML-comment dialect never populates it.
	Schema map[string]any
}

// Article is one parsed corpus document. Articles are rebuilt from disk on
// every load; only the derived celebrity list is cached downstream.
type Article struct {
	// Slug identifies the article. Frontmatter overrides the
	// filename-derived slug when it supplies one.
	Slug        string
	FrontMatter FrontMatter
	// Content is the body with frontmatter removed. JSON-LD blocks remain
	// embedded; the renderer strips them and the extractor reads across
	// them.
	Content string
	// Schemas holds the parsed JSON-LD objects found in fenced json blocks
	// whose @context is schema.org, in document order.
	Schemas []map[string]any
}

// Celebrity is a derived public record. Name and HeightCm are the only
// hard-required fields: an article that yields neither produces no
// Celebrity at all.
type Celebrity struct {
	Slug           string
	Name           string
	HeightCm       float64
	HeightImperial string

	HeightClaimed   string
	WeightLbs       int
	WeightKg        int
	BirthDate       string
	BirthPlace      string
	Nationality     string
	Profession      string
	Title           string
	MetaDescription string
	ImageURL        string
	ImageSource     string
}

// ImageRecord is one entry of the pre-built slug-keyed image lookup table.
// The table is produced out of band; the engine only reads it.
type ImageRecord struct {
	ImageURL string `json:"imageUrl"`
	Source   string `json:"source"`
	License  string `json:"license"`
}

// ComparisonPair is one ranked celebrity matchup. Pairs are emitted in
// deterministic order: score descending, generation order on ties.
type ComparisonPair struct {
	SlugA string
	SlugB string
	Label string
	Score int
}
