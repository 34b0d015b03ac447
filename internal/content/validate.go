package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a Document against the shape the page relies on: four
// table rows, three non-empty tips and three https footer links.
func Validate(doc Document) error {
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("invalid article: %w", err)
	}
	return nil
}
