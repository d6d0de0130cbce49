package celebrity

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/tallerthan/content/pkg/interfaces"
)

// popularSlugs biases the pair ranking toward celebrities readers actually
// search for. The set is an editorial constant, not configuration.
var popularSlugs = map[string]struct{}{
	"kevin-hart": {}, "dwayne-johnson": {}, "taylor-swift": {}, "tom-cruise": {},
	"ariana-grande": {}, "beyonce": {}, "brad-pitt": {}, "leonardo-dicaprio": {},
	"tom-holland": {}, "zendaya": {}, "shaquille-oneal": {}, "danny-devito": {},
	"peter-dinklage": {}, "jason-momoa": {}, "chris-hemsworth": {}, "scarlett-johansson": {},
}

// professionKeywords drive the shared-profession bonus. Closed set by
// design; matchups within these lines are the ones readers compare.
var professionKeywords = []string{"actor", "singer", "basketball"}

const (
	popularityBonus  = 10
	extremeDiffBonus = 5
	notableDiffBonus = 3
	sharedProfBonus  = 3
	extremeDiffCm    = 30
	notableDiffCm    = 15
)

// ComparisonPairs ranks every unordered celebrity pair by a fixed
// heuristic and returns the positive-scoring pairs, best first, capped at
// the configured maximum. The function is deterministic: pairs are
// generated i<j over the name-sorted list and ties keep generation order.
func (s *Service) ComparisonPairs(ctx context.Context) ([]interfaces.ComparisonPair, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	var pairs []interfaces.ComparisonPair
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			c1, c2 := all[i], all[j]

			score := scorePair(c1, c2)
			if score <= 0 {
				continue
			}

			pairs = append(pairs, interfaces.ComparisonPair{
				SlugA: c1.Slug,
				SlugB: c2.Slug,
				Label: c1.Name + " vs " + c2.Name,
				Score: score,
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})

	if len(pairs) > s.maxPairs {
		pairs = pairs[:s.maxPairs]
	}
	return pairs, nil
}

func scorePair(c1, c2 *interfaces.Celebrity) int {
	score := 0

	if _, ok := popularSlugs[c1.Slug]; ok {
		score += popularityBonus
	}
	if _, ok := popularSlugs[c2.Slug]; ok {
		score += popularityBonus
	}

	diff := math.Abs(c1.HeightCm - c2.HeightCm)
	if diff > extremeDiffCm {
		score += extremeDiffBonus
	}
	if diff > notableDiffCm {
		score += notableDiffBonus
	}

	if c1.Profession != "" && c2.Profession != "" {
		p1 := strings.ToLower(c1.Profession)
		p2 := strings.ToLower(c2.Profession)
		for _, keyword := range professionKeywords {
			if strings.Contains(p1, keyword) && strings.Contains(p2, keyword) {
				score += sharedProfBonus
			}
		}
	}

	return score
}

// ComparisonSlug builds the canonical URL segment for a pair. Slugs are
// sorted lexicographically so both argument orders produce the same URL.
func ComparisonSlug(slugA, slugB string) string {
	if slugB < slugA {
		slugA, slugB = slugB, slugA
	}
	return slugA + "-vs-" + slugB
}

// ParseComparisonSlug splits a canonical comparison segment back into its
// two celebrity slugs.
func ParseComparisonSlug(comparison string) (string, string, bool) {
	idx := strings.LastIndex(comparison, "-vs-")
	if idx <= 0 || idx+4 >= len(comparison) {
		return "", "", false
	}
	return comparison[:idx], comparison[idx+4:], true
}
