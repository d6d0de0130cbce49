package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config captures everything the engine needs to locate and filter the
// corpus. Zero values fall back to the defaults below.
type Config struct {
	// CorpusDir is the flat directory of `<slug>.md` article files.
	CorpusDir string
	// ImagesPath locates the pre-built celebrity image lookup table.
	ImagesPath string
	// IgnoredFiles is the denylist of non-celebrity documents.
	IgnoredFiles []string
	// ExcludeSubstrings drops any corpus filename containing one of these.
	ExcludeSubstrings []string
	// MaxComparisonPairs caps the ranked comparison-pair output.
	MaxComparisonPairs int
	// BaseURL prefixes built site URLs; empty keeps them rooted.
	BaseURL string

	Logging LoggingConfig
}

// LoggingConfig selects the go-logger output configuration.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the production corpus layout: articles live in a
// sibling directory of the site project, images next to the build.
func DefaultConfig() Config {
	return Config{
		CorpusDir:  "../all-articles",
		ImagesPath: "data/celebrity-images.json",
		IgnoredFiles: []string{
			"homepage.md",
			"PROJECT_BRIEF.md",
			"CLAUDE.md",
			"radius-on-google-maps.md",
			"drive-time-map.md",
			"remaining-pages.md",
		},
		MaxComparisonPairs: 500,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate rejects configurations that cannot produce a working engine.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.CorpusDir, validation.Required),
		validation.Field(&c.MaxComparisonPairs, validation.Min(0)),
		validation.Field(&c.Logging),
	)
}

// Validate checks the logging selection against go-logger's vocabulary.
func (l LoggingConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&l.Format, validation.In("", "json", "console", "pretty")),
	)
}
