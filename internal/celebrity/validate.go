package celebrity

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tallerthan/content/pkg/interfaces"
)

// validateCelebrity double-checks the assembly gate invariants before a
// record is published: slug and name present, centimeter height positive,
// imperial display string present. A failure here drops the article the
// same way a missed extraction does.
func validateCelebrity(c *interfaces.Celebrity) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Slug, validation.Required),
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.HeightCm, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&c.HeightImperial, validation.Required),
	)
}
