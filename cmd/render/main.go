// Command render prints one article's body as display HTML, useful for
// previewing corpus changes without a site build.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tallerthan/content/cmd/internal/bootstrap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("render: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	corpusDir := fs.String("corpus-dir", "", "Path to the article corpus directory (defaults to the standard layout)")
	slug := fs.String("slug", "", "Article slug to render")
	logLevel := fs.String("log-level", "warn", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *slug == "" {
		return fmt.Errorf("slug is required")
	}

	module, err := bootstrap.Build(bootstrap.Options{
		CorpusDir: *corpusDir,
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
	})
	if err != nil {
		return err
	}

	article, err := module.Engine.Articles().Load(context.Background(), *slug)
	if err != nil {
		return err
	}
	if article == nil {
		return fmt.Errorf("article %q not found", *slug)
	}

	fmt.Fprintln(os.Stdout, module.Engine.Renderer().ToHTML(article.Content))
	return nil
}
