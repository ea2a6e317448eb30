// Package licenses provides the bundled license catalog and license rendering.
package licenses

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrLicenseNotFound is returned when a license id is not in the catalog.
	ErrLicenseNotFound = errors.New("license not found")
	// ErrTemplateNotFound is returned when a template reference cannot be resolved.
	ErrTemplateNotFound = errors.New("license template not found")
	// ErrCatalogInvalid is returned when the descriptor resource is missing or malformed.
	ErrCatalogInvalid = errors.New("invalid license catalog")
)

// NotFoundError describes a lookup for an id that is not in the catalog.
type NotFoundError struct {
	ID    string
	Valid []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("license %q not found (valid: %s)", e.ID, strings.Join(e.Valid, ", "))
}

// Is reports whether target is ErrLicenseNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrLicenseNotFound
}

// DescriptorError describes a validation error in a catalog descriptor.
type DescriptorError struct {
	Index   int
	ID      string
	Message string
}

func (e *DescriptorError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("license %q: %s", e.ID, e.Message)
	}
	return fmt.Sprintf("licenses[%d]: %s", e.Index, e.Message)
}

// Unwrap ties descriptor errors to ErrCatalogInvalid.
func (e *DescriptorError) Unwrap() error {
	return ErrCatalogInvalid
}

// License describes a single bundled license.
type License struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Template     string        `yaml:"template" json:"-"`
	Placeholders *Placeholders `yaml:"placeholders,omitempty" json:"placeholders,omitempty"`
}

// Placeholders holds the literal tokens replaced when a license is rendered.
// A nil *Placeholders means the template has no variable content.
type Placeholders struct {
	Author string `yaml:"author" json:"author"`
	Year   string `yaml:"year" json:"year"`
}

// HasPlaceholders reports whether rendering the license substitutes any values.
func (l *License) HasPlaceholders() bool {
	return l != nil && l.Placeholders != nil
}

func (l *License) validate(index int) error {
	if l.ID == "" {
		return &DescriptorError{Index: index, Message: "id is required"}
	}
	// The listing needs at least one space between id and name.
	if utf8.RuneCountInString(l.ID) >= ListingWidth {
		return &DescriptorError{Index: index, ID: l.ID, Message: fmt.Sprintf("id must be shorter than %d characters", ListingWidth)}
	}
	if l.Name == "" {
		return &DescriptorError{Index: index, ID: l.ID, Message: "name is required"}
	}
	if l.Template == "" {
		return &DescriptorError{Index: index, ID: l.ID, Message: "template is required"}
	}
	if p := l.Placeholders; p != nil {
		if p.Author == "" || p.Year == "" {
			return &DescriptorError{Index: index, ID: l.ID, Message: "placeholders must define both author and year tokens"}
		}
		if p.Author == p.Year {
			return &DescriptorError{Index: index, ID: l.ID, Message: "author and year tokens must differ"}
		}
	}
	return nil
}
