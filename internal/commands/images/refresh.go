// Package imagescmd carries the batch command that refreshes the celebrity
// image lookup table from Wikipedia.
package imagescmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/tallerthan/content/internal/celebrity"
	"github.com/tallerthan/content/internal/commands"
	"github.com/tallerthan/content/internal/logging"
	"github.com/tallerthan/content/internal/wikipedia"
	"github.com/tallerthan/content/pkg/interfaces"
)

const (
	refreshOperation = "images.refresh"
	defaultDelay     = 100 * time.Millisecond
)

// nameOverrides maps slugs whose article headline does not match the
// Wikipedia page title exactly.
var nameOverrides = map[string]string{
	"dwayne-johnson":  "Dwayne Johnson",
	"the-rock":        "Dwayne Johnson",
	"shaquille-oneal": "Shaquille O'Neal",
	"jay-z":           "Jay-Z",
	"50-cent":         "50 Cent",
	"ice-cube":        "Ice Cube",
	"snoop-dogg":      "Snoop Dogg",
	"cardi-b":         "Cardi B",
	"lizzo":           "Lizzo",
}

var _ command.Commander[RefreshCommand] = (*RefreshHandler)(nil)

// RefreshHandler walks the corpus, resolves a Wikipedia thumbnail per
// celebrity, and writes the lookup table consumed by the image index.
type RefreshHandler struct {
	inner *commands.Handler[RefreshCommand]
}

// NewRefreshHandler binds the handler to the corpus loader and Wikipedia client.
func NewRefreshHandler(articles interfaces.ArticleService, client *wikipedia.Client, logger interfaces.Logger, opts ...commands.HandlerOption[RefreshCommand]) *RefreshHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RefreshCommand) error {
		delay := msg.Delay
		if delay <= 0 {
			delay = defaultDelay
		}

		arts, err := articles.LoadAll(ctx)
		if err != nil {
			return fmt.Errorf("load corpus: %w", err)
		}

		table := make(map[string]interfaces.ImageRecord, len(arts))
		found := 0

		for i, article := range arts {
			if err := ctx.Err(); err != nil {
				return err
			}

			name := lookupName(article)
			baseLogger.Info("images.refresh.fetch",
				"slug", article.Slug,
				"name", name,
				"progress", fmt.Sprintf("%d/%d", i+1, len(arts)),
			)

			thumb, err := client.PageImage(ctx, name)
			if err != nil {
				// One failed lookup should not sink the whole run.
				baseLogger.Warn("images.refresh.fetch_failed", "slug", article.Slug, "error", err)
				thumb = wikipedia.Thumbnail{}
			}

			record := interfaces.ImageRecord{
				ImageURL: thumb.URL,
				Source:   thumb.Source,
			}
			if thumb.URL != "" {
				record.License = "Wikipedia (check individual image license)"
				found++
			}
			table[article.Slug] = record

			if i < len(arts)-1 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(delay):
				}
			}
		}

		if err := writeTable(msg.OutputPath, table); err != nil {
			return err
		}

		baseLogger.Info("images.refresh.done",
			"celebrities", len(arts),
			"with_images", found,
			"output", msg.OutputPath,
		)
		return nil
	}

	defaults := []commands.HandlerOption[RefreshCommand]{
		commands.WithLogger[RefreshCommand](baseLogger),
		commands.WithOperation[RefreshCommand](refreshOperation),
		// Sequential fetches over hundreds of articles outlive the shared
		// default; the politeness delay alone costs tens of seconds.
		commands.WithTimeout[RefreshCommand](30 * time.Minute),
	}

	return &RefreshHandler{
		inner: commands.NewHandler(exec, append(defaults, opts...)...),
	}
}

// Execute satisfies command.Commander.
func (h *RefreshHandler) Execute(ctx context.Context, msg RefreshCommand) error {
	return h.inner.Execute(ctx, msg)
}

func lookupName(article *interfaces.Article) string {
	if override, ok := nameOverrides[article.Slug]; ok {
		return override
	}
	if name, ok := celebrity.ExtractName(article.Content); ok {
		return name
	}
	return strings.ReplaceAll(article.Slug, "-", " ")
}

func writeTable(path string, table map[string]interfaces.ImageRecord) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("encode image table: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write image table: %w", err)
	}
	return nil
}
