// Package heights provides the unit conversion and formatting helpers shared
// by the extraction pipeline and its page-generation callers. All functions
// are pure; the canonical unit is centimeters.
package heights

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const cmPerInch = 2.54

// CmToInches converts centimeters to total inches.
func CmToInches(cm float64) float64 {
	return cm / cmPerInch
}

// InchesToCm converts total inches to centimeters.
func InchesToCm(inches float64) float64 {
	return inches * cmPerInch
}

// FeetInches is a height expressed in imperial components. Inches may carry
// a fractional part.
type FeetInches struct {
	Feet   int
	Inches float64
}

// TotalInches flattens the imperial components into inches.
func (f FeetInches) TotalInches() float64 {
	return float64(f.Feet)*12 + f.Inches
}

// FromTotalInches splits total inches into feet and remaining inches.
func FromTotalInches(total float64) FeetInches {
	feet := int(math.Floor(total / 12))
	return FeetInches{Feet: feet, Inches: total - float64(feet)*12}
}

// CmToFeetInches converts centimeters into imperial components.
func CmToFeetInches(cm float64) FeetInches {
	return FromTotalInches(CmToInches(cm))
}

// FeetInchesToCm converts imperial components to centimeters.
func FeetInchesToCm(feet int, inches float64) float64 {
	return InchesToCm(FeetInches{Feet: feet, Inches: inches}.TotalInches())
}

var imperialPattern = regexp.MustCompile(`(\d+)'(\d+)(½|\.5)?(?:"|'')?`)

// ParseImperial parses strings like 5'10", 5'10½" or 5'10.5" into
// centimeters. It returns false when no imperial measurement is present.
func ParseImperial(height string) (float64, bool) {
	match := imperialPattern.FindStringSubmatch(height)
	if match == nil {
		return 0, false
	}

	feet, _ := strconv.Atoi(match[1])
	inches, _ := strconv.ParseFloat(match[2], 64)
	if match[3] != "" {
		inches += 0.5
	}

	return FeetInchesToCm(feet, inches), true
}

var (
	cmParenPattern     = regexp.MustCompile(`\((\d+(?:\.\d+)?)\s*cm\)`)
	imperialSubPattern = regexp.MustCompile(`(\d+'[\d½.]+(?:"|'')?)`)
)

// ParseWithCm parses a combined measurement like `5'10" (178 cm)`. The
// parenthesized centimeter value wins when present; otherwise the imperial
// part is converted. The returned display string preserves the source's
// imperial spelling when it can be isolated.
func ParseWithCm(height string) (imperial string, cm float64, ok bool) {
	if match := cmParenPattern.FindStringSubmatch(height); match != nil {
		cm, _ = strconv.ParseFloat(match[1], 64)
		if imp := imperialSubPattern.FindString(height); imp != "" {
			return imp, cm, true
		}
		return FormatImperial(cm), cm, true
	}

	cm, ok = ParseImperial(height)
	if !ok {
		return "", 0, false
	}
	if imp := imperialSubPattern.FindString(height); imp != "" {
		return imp, cm, true
	}
	return height, cm, true
}

// FormatImperial renders centimeters as an imperial display string such as
// `5'10"`, using a half-inch glyph for fractional parts in [0.25, 0.75).
func FormatImperial(cm float64) string {
	fi := CmToFeetInches(cm)
	whole := int(math.Floor(fi.Inches))
	fraction := fi.Inches - float64(whole)

	switch {
	case fraction >= 0.25 && fraction < 0.75:
		return fmt.Sprintf(`%d'%d½"`, fi.Feet, whole)
	case fraction >= 0.75:
		return fmt.Sprintf(`%d'%d"`, fi.Feet, whole+1)
	default:
		return fmt.Sprintf(`%d'%d"`, fi.Feet, whole)
	}
}

// FormatFull renders a height as `5'10" (178 cm)`.
func FormatFull(cm float64) string {
	return fmt.Sprintf("%s (%d cm)", FormatImperial(cm), int(math.Round(cm)))
}

// DifferenceInches returns the signed height difference in inches.
func DifferenceInches(cm1, cm2 float64) float64 {
	return CmToInches(cm1) - CmToInches(cm2)
}

// FormatDifference describes the difference between two heights from the
// first subject's perspective, e.g. "3 inches taller" or "1'2\" shorter".
func FormatDifference(cm1, cm2 float64) string {
	diff := DifferenceInches(cm1, cm2)
	abs := math.Abs(diff)

	if abs < 0.5 {
		return "same height"
	}

	direction := "taller"
	if diff < 0 {
		direction = "shorter"
	}

	if abs >= 12 {
		feet := int(abs / 12)
		inches := int(math.Round(math.Mod(abs, 12)))
		if inches == 0 {
			unit := "feet"
			if feet == 1 {
				unit = "foot"
			}
			return fmt.Sprintf("%d %s %s", feet, unit, direction)
		}
		return fmt.Sprintf(`%d'%d" %s`, feet, inches, direction)
	}

	rounded := math.Round(abs*2) / 2
	unit := "inches"
	if rounded == 1 {
		unit = "inch"
	}
	return fmt.Sprintf("%g %s %s", rounded, unit, direction)
}

// Slug produces the canonical height-bucket key, e.g. "5-ft-10". Inches are
// rounded to the nearest whole number and stay within [0, 11]; a rounded 12
// carries into the feet component so the slug remains a valid bucket.
func Slug(cm float64) string {
	fi := CmToFeetInches(cm)
	feet := fi.Feet
	inches := int(math.Round(fi.Inches))
	if inches == 12 {
		feet++
		inches = 0
	}
	return fmt.Sprintf("%d-ft-%d", feet, inches)
}

var slugPattern = regexp.MustCompile(`(\d+)-ft-(\d+)`)

// ParseSlug recovers an approximate centimeter value from a height-bucket
// slug. The result re-buckets to the same slug.
func ParseSlug(slug string) (float64, bool) {
	match := slugPattern.FindStringSubmatch(slug)
	if match == nil {
		return 0, false
	}

	feet, _ := strconv.Atoi(match[1])
	inches, _ := strconv.ParseFloat(match[2], 64)

	return FeetInchesToCm(feet, inches), true
}

// Gender selects the population statistics used by Percentile.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Percentile approximates the US-population height percentile for the given
// height, clamped to [0.1, 99.9].
func Percentile(cm float64, gender Gender) float64 {
	mean, sd := 175.3, 7.5
	if gender == Female {
		mean, sd = 161.8, 6.9
	}

	z := (cm - mean) / sd

	sign := 0.0
	if z > 0 {
		sign = 1
	} else if z < 0 {
		sign = -1
	}
	percentile := 50 * (1 + sign*math.Sqrt(1-math.Exp(-2*z*z/math.Pi)))

	return math.Min(99.9, math.Max(0.1, percentile))
}
