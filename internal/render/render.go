// Package render converts article body text into display HTML. The corpus
// is authored in a small fixed Markdown subset, and the renderer reproduces
// exactly that subset: it is a one-way transform, not a CommonMark engine.
package render

import (
	"regexp"
	"strings"
)

// Renderer is a stateless Markdown-subset to HTML converter. A single
// instance is safe for reuse across goroutines.
type Renderer struct{}

// New returns the subset renderer.
func New() *Renderer {
	return &Renderer{}
}

// ToHTML renders the supplied body text. It never fails: blocks that match
// no recognized construct pass through as paragraph text, so the worst case
// is visually off, never a rejected page.
func (r *Renderer) ToHTML(markdown string) string {
	stripped := jsonFencePattern.ReplaceAllString(markdown, "")
	blocks := scanBlocks(stripped)

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.html())
	}
	return strings.Join(parts, "\n")
}

var jsonFencePattern = regexp.MustCompile("(?s)```json.*?```")

type block interface {
	html() string
}

type heading struct {
	level int
	text  string
}

type paragraph struct {
	lines []string
}

type blockquote struct {
	lines []string
}

type list struct {
	items []string
}

type table struct {
	header []string
	rows   [][]string
}

type rule struct{}

func (h heading) html() string {
	tag := [...]string{"", "h1", "h2", "h3"}[h.level]
	return "<" + tag + ">" + inline(h.text) + "</" + tag + ">"
}

func (p paragraph) html() string {
	rendered := make([]string, len(p.lines))
	for i, line := range p.lines {
		rendered[i] = inline(line)
	}
	return "<p>" + strings.Join(rendered, "\n") + "</p>"
}

func (b blockquote) html() string {
	rendered := make([]string, len(b.lines))
	for i, line := range b.lines {
		rendered[i] = inline(line)
	}
	return "<blockquote>" + strings.Join(rendered, "<br>") + "</blockquote>"
}

func (l list) html() string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, item := range l.items {
		sb.WriteString("<li>" + inline(item) + "</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

func (t table) html() string {
	var sb strings.Builder
	sb.WriteString("<table><thead><tr>")
	for _, cell := range t.header {
		sb.WriteString("<th>" + inline(cell) + "</th>")
	}
	sb.WriteString("</tr></thead>")
	if len(t.rows) > 0 {
		sb.WriteString("<tbody>")
		for _, row := range t.rows {
			sb.WriteString("<tr>")
			for _, cell := range row {
				sb.WriteString("<td>" + inline(cell) + "</td>")
			}
			sb.WriteString("</tr>")
		}
		sb.WriteString("</tbody>")
	}
	sb.WriteString("</table>")
	return sb.String()
}

func (rule) html() string { return "<hr>" }

var (
	headingPattern   = regexp.MustCompile(`^(#{1,3})\s+(.*)$`)
	quotePattern     = regexp.MustCompile(`^>\s?`)
	separatorPattern = regexp.MustCompile(`^\|[\s\-:|]+\|$`)
)

// scanBlocks walks the body line by line and groups it into tagged block
// nodes. Building nodes first means block elements can never end up inside
// a paragraph wrapper, so no cleanup pass is needed afterwards.
func scanBlocks(markdown string) []block {
	lines := strings.Split(markdown, "\n")

	var (
		blocks []block
		para   []string
		quote  []string
		items  []string
		tbl    *table
	)

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, paragraph{lines: para})
			para = nil
		}
	}
	flushQuote := func() {
		if len(quote) > 0 {
			blocks = append(blocks, blockquote{lines: quote})
			quote = nil
		}
	}
	flushList := func() {
		if len(items) > 0 {
			blocks = append(blocks, list{items: items})
			items = nil
		}
	}
	flushTable := func() {
		if tbl != nil {
			blocks = append(blocks, *tbl)
			tbl = nil
		}
	}
	flushAll := func() {
		flushPara()
		flushQuote()
		flushList()
		flushTable()
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case quotePattern.MatchString(line):
			flushPara()
			flushList()
			flushTable()
			quote = append(quote, quotePattern.ReplaceAllString(line, ""))

		case strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") && len(trimmed) > 1:
			flushPara()
			flushQuote()
			flushList()
			if separatorPattern.MatchString(trimmed) {
				continue
			}
			cells := splitTableRow(trimmed)
			if tbl == nil {
				tbl = &table{header: cells}
			} else {
				tbl.rows = append(tbl.rows, cells)
			}

		case strings.HasPrefix(line, "- "):
			flushPara()
			flushQuote()
			flushTable()
			items = append(items, strings.TrimPrefix(line, "- "))

		case trimmed == "---":
			flushAll()
			blocks = append(blocks, rule{})

		case headingPattern.MatchString(line):
			flushAll()
			match := headingPattern.FindStringSubmatch(line)
			blocks = append(blocks, heading{level: len(match[1]), text: match[2]})

		case trimmed == "":
			flushAll()

		default:
			flushQuote()
			flushList()
			flushTable()
			para = append(para, line)
		}
	}
	flushAll()

	return blocks
}

func splitTableRow(row string) []string {
	parts := strings.Split(row, "|")
	cells := make([]string, 0, len(parts))
	// First and last entries are the empty strings outside the pipes.
	for _, part := range parts[1 : len(parts)-1] {
		cells = append(cells, strings.TrimSpace(part))
	}
	return cells
}

var (
	boldItalicPattern = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldPattern       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern     = regexp.MustCompile(`\*(.+?)\*`)
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// inline applies emphasis and link spans. Order matters: triple asterisks
// must resolve before double, double before single.
func inline(text string) string {
	text = boldItalicPattern.ReplaceAllString(text, "<strong><em>${1}</em></strong>")
	text = boldPattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>${1}</em>")
	text = linkPattern.ReplaceAllString(text, `<a href="${2}">${1}</a>`)
	return text
}
