// Package validate holds the string-validation helpers shared by the API
// handlers. Pure predicates, no state.
package validate

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrNameEmpty is returned when an item name is empty.
	ErrNameEmpty = errors.New("name must not be empty")

	// ErrNameFormat is returned when an item name does not match the
	// required pattern.
	ErrNameFormat = errors.New("name must contain only lowercase alphanumeric characters and hyphens, and must not start or end with a hyphen")

	// ErrNameReserved is returned when an item name collides with a
	// reserved route prefix.
	ErrNameReserved = errors.New("name is reserved")

	// ErrInvalidVisibility is returned when a visibility value is not one
	// of public, internal, demo.
	ErrInvalidVisibility = errors.New("visibility must be one of: public, internal, demo")

	// namePattern matches a single lowercase alphanumeric character or a
	// string of lowercase alphanumeric characters and hyphens that does
	// not start or end with a hyphen.
	namePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)

	// reservedNames conflict with application routes and MUST NOT be
	// accepted.
	reservedNames = map[string]bool{
		"api":     true,
		"docs":    true,
		"openapi": true,
		"metrics": true,
		"healthz": true,
	}
)

// ValidateName checks that name conforms to the required format and is not
// reserved. It does NOT check uniqueness — that is handled at the store
// layer via the unique index on items.name.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if !namePattern.MatchString(name) {
		return ErrNameFormat
	}
	if reservedNames[name] {
		return fmt.Errorf("%w: %q", ErrNameReserved, name)
	}
	return nil
}

// ValidateVisibility checks that v is one of the allowed visibility values.
func ValidateVisibility(v string) error {
	switch v {
	case "public", "internal", "demo":
		return nil
	default:
		return ErrInvalidVisibility
	}
}
