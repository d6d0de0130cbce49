package articles

import (
	"strings"
	"testing"
)

func TestDetectDialect(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    Dialect
	}{
		{"yaml", "---\ntitle: X\n---\nbody", DialectYAML},
		{"comment", "<!--\ntitle: X\n-->\nbody", DialectComment},
		{"none", "# Just A Heading\n\nbody", DialectNone},
		{"empty", "", DialectNone},
	}

	for _, tc := range cases {
		if got := DetectDialect(tc.content); got != tc.want {
			t.Fatalf("DetectDialect(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestParseFrontMatterYAML(t *testing.T) {
	content := strings.Join([]string{
		"---",
		`title: "How Tall Is Kevin Hart?"`,
		`meta_description: "Kevin Hart height facts"`,
		"slug: kevin-hart",
		"schema:",
		"  person:",
		`    name: "Kevin Hart"`,
		"---",
		"",
		"# How Tall Is Kevin Hart?",
		"",
	}, "\n")

	fm, body := ParseFrontMatter(content)

	if fm.Title != "How Tall Is Kevin Hart?" {
		t.Fatalf("Title mismatch, got %q", fm.Title)
	}
	if fm.MetaDescription != "Kevin Hart height facts" {
		t.Fatalf("MetaDescription mismatch, got %q", fm.MetaDescription)
	}
	if fm.Slug != "kevin-hart" {
		t.Fatalf("Slug mismatch, got %q", fm.Slug)
	}
	person, ok := fm.Schema["person"].(map[string]any)
	if !ok || person["name"] != "Kevin Hart" {
		t.Fatalf("Schema person not carried: %#v", fm.Schema)
	}
	if !strings.Contains(body, "# How Tall Is Kevin Hart?") {
		t.Fatalf("body not returned correctly: %q", body)
	}
	if strings.Contains(body, "meta_description") {
		t.Fatalf("frontmatter leaked into body: %q", body)
	}
}

func TestParseFrontMatterYAMLMissingFields(t *testing.T) {
	content := "---\ntitle: \"X\"\n---\nbody"

	fm, body := ParseFrontMatter(content)

	if fm.Title != "X" {
		t.Fatalf("Title mismatch, got %q", fm.Title)
	}
	if fm.MetaDescription != "" {
		t.Fatalf("expected empty MetaDescription, got %q", fm.MetaDescription)
	}
	if strings.TrimSpace(body) != "body" {
		t.Fatalf("body mismatch: %q", body)
	}
}

func TestParseFrontMatterComment(t *testing.T) {
	content := strings.Join([]string{
		"<!--",
		"title: How Tall Is Zendaya?",
		"meta_description: Zendaya stands 5'10\" tall,",
		"which is well above average for women.",
		"slug: zendaya",
		"-->",
		"",
		"# How Tall Is Zendaya?",
	}, "\n")

	fm, body := ParseFrontMatter(content)

	if fm.Title != "How Tall Is Zendaya?" {
		t.Fatalf("Title mismatch, got %q", fm.Title)
	}
	want := "Zendaya stands 5'10\" tall, which is well above average for women."
	if fm.MetaDescription != want {
		t.Fatalf("continuation lines not joined: got %q, want %q", fm.MetaDescription, want)
	}
	if fm.Slug != "zendaya" {
		t.Fatalf("Slug mismatch, got %q", fm.Slug)
	}
	if !strings.HasPrefix(body, "# How Tall Is Zendaya?") {
		t.Fatalf("body mismatch: %q", body)
	}
}

func TestParseFrontMatterNone(t *testing.T) {
	content := "# Plain Article\n\nNo metadata here."

	fm, body := ParseFrontMatter(content)

	if fm.Title != "" || fm.Slug != "" || fm.MetaDescription != "" {
		t.Fatalf("expected empty frontmatter, got %#v", fm)
	}
	if body != content {
		t.Fatalf("body should be the whole document, got %q", body)
	}
}

func TestParseFrontMatterMalformedComment(t *testing.T) {
	// An opening delimiter with no close falls back to all-body.
	content := "<!--\ntitle: Broken"

	fm, body := ParseFrontMatter(content)

	if fm.Title != "" {
		t.Fatalf("expected empty frontmatter, got %#v", fm)
	}
	if body != content {
		t.Fatalf("body should be the whole document, got %q", body)
	}
}
