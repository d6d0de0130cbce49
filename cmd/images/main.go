// Command images refreshes the celebrity image lookup table by querying
// Wikipedia for every corpus article.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tallerthan/content/cmd/internal/bootstrap"
	"github.com/tallerthan/content/internal/commands"
	imagescmd "github.com/tallerthan/content/internal/commands/images"
	"github.com/tallerthan/content/internal/wikipedia"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("images refresh: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("images", flag.ExitOnError)
	corpusDir := fs.String("corpus-dir", "", "Path to the article corpus directory (defaults to the standard layout)")
	output := fs.String("output", "data/celebrity-images.json", "Where to write the image lookup table")
	delay := fs.Duration("delay", 100*time.Millisecond, "Pause between consecutive Wikipedia requests")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := bootstrap.Build(bootstrap.Options{
		CorpusDir: *corpusDir,
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
	})
	if err != nil {
		return err
	}

	handler := imagescmd.NewRefreshHandler(
		module.Engine.Articles(),
		wikipedia.NewClient(),
		commands.CommandLogger(module.Logs, "images"),
	)

	cmd := imagescmd.RefreshCommand{
		OutputPath: *output,
		Delay:      *delay,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute refresh command: %w", err)
	}

	fmt.Fprintln(os.Stdout, "image table refreshed")
	return nil
}
