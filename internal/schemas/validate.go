// Package schemas validates the loosely-typed filter document accepted at
// the API boundary before it is converted into typed records.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed filter_set.schema.json
var filterSetSchema string

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the schema violations of one document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "filter document is invalid: " + strings.Join(msgs, "; ")
}

// ValidateFilterSet checks a raw filter document against the filter schema.
// It returns a *ValidationError naming the offending fields, or a plain
// error when the document is not JSON at all.
func ValidateFilterSet(doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(filterSetSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("filter document is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, re := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return verr
}
