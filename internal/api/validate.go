package api

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/noteful/internal/database"
)

// createRequest is implemented by every POST body schema for rows of type T.
type createRequest[T any] interface {
	validation.Validatable
	requiredFields() []string
	toRow() T
}

// updateRequest is implemented by every PATCH body schema.
type updateRequest interface {
	updatableFields() []string
	values() []any
	fields() database.Fields
}

type requiredSchema interface {
	validation.Validatable
	requiredFields() []string
}

// missingFields returns the required fields of req that are absent or null,
// in declaration order.
func missingFields(req requiredSchema) ([]string, error) {
	err := req.Validate()
	if err == nil {
		return nil, nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil, err
	}
	var missing []string
	for _, field := range req.requiredFields() {
		if _, ok := errs[field]; ok {
			missing = append(missing, field)
		}
	}
	return missing, nil
}

// emptyUpdate reports whether no recognized field carries a non-empty value.
func emptyUpdate(req updateRequest) bool {
	for _, v := range req.values() {
		if validation.Validate(v, validation.Required) == nil {
			return false
		}
	}
	return true
}

func missingFieldMessage(field string) string {
	return fmt.Sprintf("Missing '%s' in request body", field)
}

// emptyUpdateMessage lists the accepted fields: 'a'; either 'a' or 'b';
// either 'a', 'b' or 'c'.
func emptyUpdateMessage(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = "'" + f + "'"
	}
	var list string
	switch len(quoted) {
	case 0:
		list = "a recognized field"
	case 1:
		list = quoted[0]
	default:
		list = "either " + strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
	}
	return "Request body must contain " + list
}
