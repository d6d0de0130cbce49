package articles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/tallerthan/content/pkg/interfaces"
)

// Dialect identifies which frontmatter flavour a document carries. The
// corpus mixes two generations of authoring tools, so both are supported.
type Dialect int

const (
	// DialectNone marks documents without any recognized frontmatter.
	DialectNone Dialect = iota
	// DialectYAML marks documents starting with a `---` delimited YAML block.
	DialectYAML
	// DialectComment marks documents starting with an HTML comment block of
	// `key: value` lines.
	DialectComment
)

// DetectDialect sniffs the frontmatter dialect from the document prefix.
// Detection happens once per file; the dialect-specific parsers below
// produce a common normalized FrontMatter record.
func DetectDialect(content string) Dialect {
	switch {
	case strings.HasPrefix(content, "---"):
		return DialectYAML
	case strings.HasPrefix(content, "<!--"):
		return DialectComment
	default:
		return DialectNone
	}
}

// ParseFrontMatter splits a raw document into normalized frontmatter and
// body according to the detected dialect. Documents with unrecognized or
// unparseable frontmatter are treated as all-body with empty metadata; that
// is the expected shape for older corpus files, not an error.
func ParseFrontMatter(content string) (interfaces.FrontMatter, string) {
	switch DetectDialect(content) {
	case DialectYAML:
		fm, body, err := parseYAMLFrontMatter(content)
		if err != nil {
			return interfaces.FrontMatter{}, content
		}
		return fm, body
	case DialectComment:
		fm, body, ok := parseCommentFrontMatter(content)
		if !ok {
			return interfaces.FrontMatter{}, content
		}
		return fm, body
	default:
		return interfaces.FrontMatter{}, content
	}
}

type yamlEnvelope struct {
	Title           string `yaml:"title"`
	MetaDescription string `yaml:"meta_description"`
	Slug            string `yaml:"slug"`
	Schema          struct {
		Person map[string]any `yaml:"person"`
	} `yaml:"schema"`
}

func parseYAMLFrontMatter(content string) (interfaces.FrontMatter, string, error) {
	var env yamlEnvelope

	body, err := frontmatter.Parse(strings.NewReader(content), &env)
	if err != nil {
		return interfaces.FrontMatter{}, "", fmt.Errorf("parse frontmatter: %w", err)
	}

	fm := interfaces.FrontMatter{
		Title:           env.Title,
		MetaDescription: env.MetaDescription,
		Slug:            env.Slug,
	}
	if len(env.Schema.Person) > 0 {
		fm.Schema = map[string]any{"person": env.Schema.Person}
	}

	return fm, string(body), nil
}

var (
	commentBlockPattern = regexp.MustCompile(`(?s)^<!--\s*(.*?)\s*-->`)
	commentKeyPattern   = regexp.MustCompile(`^(\w+):\s*(.*)$`)
)

// parseCommentFrontMatter handles the legacy HTML-comment dialect. Values
// may continue across physical lines until the next `key:` line or the
// closing delimiter.
func parseCommentFrontMatter(content string) (interfaces.FrontMatter, string, bool) {
	block := commentBlockPattern.FindStringSubmatch(content)
	if block == nil {
		return interfaces.FrontMatter{}, "", false
	}

	fields := map[string]string{}
	var currentKey, currentValue string

	for _, line := range strings.Split(block[1], "\n") {
		if match := commentKeyPattern.FindStringSubmatch(line); match != nil {
			if currentKey != "" {
				fields[currentKey] = strings.TrimSpace(currentValue)
			}
			currentKey = match[1]
			currentValue = match[2]
			continue
		}
		if currentKey != "" {
			currentValue += " " + strings.TrimSpace(line)
		}
	}
	if currentKey != "" {
		fields[currentKey] = strings.TrimSpace(currentValue)
	}

	fm := interfaces.FrontMatter{
		Title:           fields["title"],
		MetaDescription: fields["meta_description"],
		Slug:            fields["slug"],
	}

	body := strings.TrimSpace(content[len(block[0]):])
	return fm, body, true
}
