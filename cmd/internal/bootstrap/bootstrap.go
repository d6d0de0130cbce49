// Package bootstrap wires the content engine for the cmd tools so each
// main.go stays a thin flag-parsing shell.
package bootstrap

import (
	"fmt"

	content "github.com/tallerthan/content"
	"github.com/tallerthan/content/internal/logging/gologger"
	"github.com/tallerthan/content/pkg/interfaces"
)

// Options carries the flag values shared by every tool.
type Options struct {
	CorpusDir  string
	ImagesPath string
	LogLevel   string
	LogFormat  string
}

// Module bundles the constructed engine with its logger provider.
type Module struct {
	Engine *content.Engine
	Logs   interfaces.LoggerProvider
}

// Build constructs a logger provider and engine from the options, layering
// overrides on top of the default configuration.
func Build(opts Options) (*Module, error) {
	provider, err := gologger.NewProvider(gologger.Config{
		Level:  opts.LogLevel,
		Format: opts.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	cfg := content.DefaultConfig()
	if opts.CorpusDir != "" {
		cfg.CorpusDir = opts.CorpusDir
	}
	if opts.ImagesPath != "" {
		cfg.ImagesPath = opts.ImagesPath
	}
	cfg.Logging.Level = opts.LogLevel
	cfg.Logging.Format = opts.LogFormat

	engine, err := content.New(cfg, content.WithLoggerProvider(provider))
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	return &Module{Engine: engine, Logs: provider}, nil
}
