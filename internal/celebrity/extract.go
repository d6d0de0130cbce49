package celebrity

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tallerthan/content/pkg/heights"
	"github.com/tallerthan/content/pkg/interfaces"
)

// extractor is one pure pattern attempt over the article body. Extractors
// never fail hard: a miss reports ok=false and the caller moves on.
type extractor[T any] func(content string) (T, bool)

// firstMatch combines pattern alternatives into a single extractor that
// tries each in priority order and returns the first hit.
func firstMatch[T any](alternatives ...extractor[T]) extractor[T] {
	return func(content string) (T, bool) {
		for _, alt := range alternatives {
			if value, ok := alt(content); ok {
				return value, true
			}
		}
		var zero T
		return zero, false
	}
}

// The fact-line extractors below key off specific emoji markers authored
// into the corpus. The markers are matched literally: if a source file's
// encoding mangles a glyph the extraction soft-misses, which is the
// intended degradation for a best-effort pipeline.

var (
	nameHowTallPattern  = regexp.MustCompile(`(?m)^#\s*How Tall Is ([^?]+)\?`)
	nameFallbackPattern = regexp.MustCompile(`(?m)^#\s*(.+)$`)
)

// extractName resolves the celebrity name from the article's H1. The
// canonical corpus headline is "How Tall Is <Name>?"; older articles carry
// a plain title, so any first H1 is accepted as fallback.
var extractName = firstMatch(
	submatch(nameHowTallPattern),
	submatch(nameFallbackPattern),
)

// ExtractName exposes the H1 name extraction for tooling that needs a
// display name without running the full extraction pipeline.
func ExtractName(content string) (string, bool) {
	return extractName(content)
}

// heightMatch carries both sides of a verified height measurement.
type heightMatch struct {
	Imperial string
	Cm       float64
}

var (
	heightQuickPattern    = regexp.MustCompile(`(?i)📏\s*\*\*(\d+'\d+(?:½|\.5)?(?:"|'')?\s*\([\d.]+\s*cm\))\*\*`)
	heightBarefootPattern = regexp.MustCompile(`(?i)\*\*(\d+'\d+(?:½|\.5)?(?:"|'')?\s*\([\d.]+\s*cm\))\*\*\s*barefoot`)
	heightQuotedPattern   = regexp.MustCompile(`(?i)>\s*📏\s*\*\*(\d+'\d+(?:½|\.5)?(?:"|'')?\s*\([\d.]+\s*cm\))\*\*`)
	heightAnywherePattern = regexp.MustCompile(`(\d+'\d+(?:½|\.5)?(?:"|'')?)\s*\(([\d.]+)\s*cm\)`)
)

// extractHeight tries the quick-answer forms first, then any imperial
// measurement with a parenthesized centimeter value. The first alternative
// that matches determines both the display string and the numeric value.
var extractHeight = firstMatch(
	combinedHeight(heightQuickPattern),
	combinedHeight(heightBarefootPattern),
	combinedHeight(heightQuotedPattern),
	func(content string) (heightMatch, bool) {
		match := heightAnywherePattern.FindStringSubmatch(content)
		if match == nil {
			return heightMatch{}, false
		}
		cm, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			return heightMatch{}, false
		}
		return heightMatch{Imperial: match[1], Cm: cm}, true
	},
)

func combinedHeight(pattern *regexp.Regexp) extractor[heightMatch] {
	return func(content string) (heightMatch, bool) {
		match := pattern.FindStringSubmatch(content)
		if match == nil {
			return heightMatch{}, false
		}
		imperial, cm, ok := heights.ParseWithCm(match[1])
		if !ok {
			return heightMatch{}, false
		}
		return heightMatch{Imperial: imperial, Cm: cm}, true
	}
}

var (
	claimedMarkerPattern = regexp.MustCompile(`(?i)📋\s*Claims:\s*([^\n]+)`)
	claimedBarePattern   = regexp.MustCompile(`(?i)Claims:\s*\*?\*?(\d+'\d+(?:½|\.5)?(?:"|'')?)`)
)

// extractClaimed reads the self-reported height. Independent of the
// verified height; most articles have no claim at all.
var extractClaimed = firstMatch(
	func(content string) (string, bool) {
		match := claimedMarkerPattern.FindStringSubmatch(content)
		if match == nil {
			return "", false
		}
		return strings.ReplaceAll(strings.TrimSpace(match[1]), "*", ""), true
	},
	func(content string) (string, bool) {
		match := claimedBarePattern.FindStringSubmatch(content)
		if match == nil {
			return "", false
		}
		return strings.ReplaceAll(strings.TrimSpace(match[1]), "*", ""), true
	},
)

// weightMatch holds both authored units; they are read, not converted.
type weightMatch struct {
	Lbs int
	Kg  int
}

var weightPattern = regexp.MustCompile(`(?i)⚖️\s*Weight:\s*~?(\d+)\s*lbs?\s*\((\d+)\s*kg\)`)

func extractWeight(content string) (weightMatch, bool) {
	match := weightPattern.FindStringSubmatch(content)
	if match == nil {
		return weightMatch{}, false
	}
	lbs, _ := strconv.Atoi(match[1])
	kg, _ := strconv.Atoi(match[2])
	return weightMatch{Lbs: lbs, Kg: kg}, true
}

// birthMatch separates the date from the birthplace tail.
type birthMatch struct {
	Date  string
	Place string
}

var (
	bornMonthFirstPattern = regexp.MustCompile(`(?i)🎂\s*Born:\s*([A-Za-z]+\s+\d+,\s+\d{4}),?\s*(.*)`)
	bornPlaceFirstPattern = regexp.MustCompile(`(?i)🎂\s*Born:\s*([^,\n]+),\s*(\d{4}),?\s*(.*)`)
)

// extractBirth accommodates the corpus's two inconsistent layouts:
// "Month Day, Year, Place" and "Place, Year, Place-continued".
var extractBirth = firstMatch(
	func(content string) (birthMatch, bool) {
		match := bornMonthFirstPattern.FindStringSubmatch(content)
		if match == nil {
			return birthMatch{}, false
		}
		return birthMatch{
			Date:  strings.TrimSpace(match[1]),
			Place: strings.TrimSpace(match[2]),
		}, true
	},
	func(content string) (birthMatch, bool) {
		match := bornPlaceFirstPattern.FindStringSubmatch(content)
		if match == nil {
			return birthMatch{}, false
		}
		return birthMatch{
			Date:  strings.TrimSpace(match[1]) + ", " + match[2],
			Place: strings.TrimSpace(match[3]),
		}, true
	},
)

var nationalityPattern = regexp.MustCompile(`(?i)🌍\s*Nationality:\s*([^\n]+)`)

func extractNationality(content string) (string, bool) {
	match := nationalityPattern.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

var (
	professionTablePattern  = regexp.MustCompile(`(?i)\|\s*Profession\s*\|\s*([^|]+)\|`)
	professionSchemaPattern = regexp.MustCompile(`"jobTitle":\s*"([^"]+)"`)
)

// extractProfession prefers the Quick Facts table row; a raw jobTitle
// field inside any embedded JSON fragment is the fallback.
var extractProfession = firstMatch(
	submatch(professionTablePattern),
	submatch(professionSchemaPattern),
)

// submatch lifts a one-group regexp into an extractor, trimming the capture.
func submatch(pattern *regexp.Regexp) extractor[string] {
	return func(content string) (string, bool) {
		match := pattern.FindStringSubmatch(content)
		if match == nil {
			return "", false
		}
		value := strings.TrimSpace(match[1])
		if value == "" {
			return "", false
		}
		return value, true
	}
}

// FromArticle derives a Celebrity from one parsed article. Name and height
// gate the record: when either is missing the article is dropped, not
// errored. Every other field degrades to its zero value on a miss.
func FromArticle(article *interfaces.Article, imgs interfaces.ImageIndex) (*interfaces.Celebrity, bool) {
	if article == nil {
		return nil, false
	}

	name, ok := extractName(article.Content)
	if !ok {
		return nil, false
	}
	height, ok := extractHeight(article.Content)
	if !ok {
		return nil, false
	}

	c := &interfaces.Celebrity{
		Slug:            article.Slug,
		Name:            name,
		HeightCm:        height.Cm,
		HeightImperial:  height.Imperial,
		Title:           article.FrontMatter.Title,
		MetaDescription: article.FrontMatter.MetaDescription,
	}

	if claimed, ok := extractClaimed(article.Content); ok {
		c.HeightClaimed = claimed
	}
	if weight, ok := extractWeight(article.Content); ok {
		c.WeightLbs = weight.Lbs
		c.WeightKg = weight.Kg
	}
	if birth, ok := extractBirth(article.Content); ok {
		c.BirthDate = birth.Date
		c.BirthPlace = birth.Place
	}
	if nationality, ok := extractNationality(article.Content); ok {
		c.Nationality = nationality
	}
	if profession, ok := extractProfession(article.Content); ok {
		c.Profession = profession
	}

	if imgs != nil {
		if record, ok := imgs.Lookup(article.Slug); ok {
			c.ImageURL = record.ImageURL
			c.ImageSource = record.Source
		}
	}

	if err := validateCelebrity(c); err != nil {
		return nil, false
	}

	return c, true
}
