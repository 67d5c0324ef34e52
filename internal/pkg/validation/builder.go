// Package validation implements the entity builder used by every create/edit
// operation: fields are accumulated one by one and a single Finalize step
// either passes or reports the full list of missing/invalid fields.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/erasmusedu/erasmus-portal/internal/pkg/apperrors"
)

var validate = validator.New()

// FieldsError reports every field that kept an entity from being finalized.
// It unwraps to apperrors.ErrValidationFailed so the central error mapper
// turns it into a 400 response.
type FieldsError struct {
	Entity string
	Fields []string
}

// Error implements the error interface.
func (e *FieldsError) Error() string {
	return fmt.Sprintf("%s: missing or invalid fields: %s", e.Entity, strings.Join(e.Fields, ", "))
}

// Unwrap implements errors.Unwrap.
func (e *FieldsError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// Builder accumulates field checks for one entity. Zero or more Require calls
// followed by exactly one Finalize.
type Builder struct {
	entity string
	fields []string
}

// NewBuilder creates a builder for the named entity.
func NewBuilder(entity string) *Builder {
	return &Builder{entity: entity}
}

// Require records the field as missing when the value is blank and returns
// the trimmed value either way.
func (b *Builder) Require(field, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		b.fields = append(b.fields, field)
	}
	return trimmed
}

// RequireEmail records the field when the value is blank or not an email
// address and returns the trimmed value.
func (b *Builder) RequireEmail(field, value string) string {
	trimmed := strings.TrimSpace(value)
	if err := validate.Var(trimmed, "required,email"); err != nil {
		b.fields = append(b.fields, field)
	}
	return trimmed
}

// RequirePositive records the field when the value is not strictly positive.
func (b *Builder) RequirePositive(field string, value float64) float64 {
	if value <= 0 {
		b.fields = append(b.fields, field)
	}
	return value
}

// RequireOneOf records the field when the value is not in the allowed set and
// returns the value either way.
func (b *Builder) RequireOneOf(field, value string, allowed ...string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	b.fields = append(b.fields, field)
	return value
}

// Check records the field when ok is false. Used for one-off constraints the
// other helpers do not cover.
func (b *Builder) Check(field string, ok bool) {
	if !ok {
		b.fields = append(b.fields, field)
	}
}

// Finalize returns nil when every required field was present, or a
// FieldsError listing everything that was missing.
func (b *Builder) Finalize() error {
	if len(b.fields) == 0 {
		return nil
	}
	return &FieldsError{Entity: b.entity, Fields: b.fields}
}
