package config

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category key is not part of the table
var ErrUnknownCategory = errors.New("unknown environment category")

// Category is a canonical deployment environment
type Category int

// Deployment environment categories as constants to prevent typos
const (
	// CategoryIntegration represents integration builds, which are never rewritten
	CategoryIntegration Category = iota

	// CategoryDemo represents the demo environment
	CategoryDemo

	// CategoryProduction represents the production environment
	CategoryProduction

	// CategoryOther represents the catch-all "other" environment
	CategoryOther
)

var categoryKeys = [...]string{
	CategoryIntegration: "int",
	CategoryDemo:        "demo",
	CategoryProduction:  "prod",
	CategoryOther:       "other",
}

// Alias sets must stay disjoint.
var categoryAliases = [...][]string{
	CategoryIntegration: {"dev", "development", "int"},
	CategoryDemo:        {"demo"},
	CategoryProduction:  {"prod", "production"},
	CategoryOther:       {"other"},
}

// Categories returns every known category in table order
func Categories() []Category {
	return []Category{
		CategoryIntegration,
		CategoryDemo,
		CategoryProduction,
		CategoryOther,
	}
}

func (c Category) valid() bool {
	return c >= 0 && int(c) < len(categoryKeys)
}

// String returns the canonical key of the category
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryKeys[c]
}

// Aliases returns the accepted environment names for the category.
// It panics for a value outside the table.
func (c Category) Aliases() []string {
	if !c.valid() {
		panic(fmt.Sprintf("config: %v: %s", ErrUnknownCategory, c))
	}
	return append([]string(nil), categoryAliases[c]...)
}

// Has reports whether name is one of the category's aliases. Matching is case-sensitive.
func (c Category) Has(name string) bool {
	for _, alias := range c.Aliases() {
		if alias == name {
			return true
		}
	}
	return false
}

// ParseCategory resolves a canonical category key such as "prod"
func ParseCategory(key string) (Category, error) {
	for _, c := range Categories() {
		if categoryKeys[c] == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
}

// Classify returns the category that accepts name as an alias.
// Unrecognized and blank names report false.
func Classify(name string) (Category, bool) {
	for _, c := range Categories() {
		if c.Has(name) {
			return c, true
		}
	}
	return 0, false
}

// IsValidEnvironment checks if the given environment name is accepted by any category
func IsValidEnvironment(name string) bool {
	_, ok := Classify(name)
	return ok
}

// ValidEnvironments returns every accepted environment name
func ValidEnvironments() []string {
	var names []string
	for _, c := range Categories() {
		names = append(names, c.Aliases()...)
	}
	return names
}
