package imagescmd

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const refreshMessageType = "tallerthan.images.refresh"

// RefreshCommand rebuilds the slug-keyed image lookup table by querying
// Wikipedia for every corpus celebrity. The job runs sequentially with a
// fixed politeness delay; there is no retry or backoff.
type RefreshCommand struct {
	// OutputPath is where the JSON lookup table is written.
	OutputPath string `json:"output_path"`
	// Delay spaces out consecutive Wikipedia requests. Zero means the
	// default 100ms.
	Delay time.Duration `json:"delay,omitempty"`
}

// Type implements command.Message.
func (RefreshCommand) Type() string { return refreshMessageType }

// Validate ensures the output destination is present before handlers execute.
func (cmd RefreshCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.OutputPath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("tallerthan.images.refresh.output_required", "output path is required")
			}
			return nil
		})),
	)
}
