package config

import (
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidFormats    = []string{"md", "json"}
	ValidStates     = []string{"open", "closed", "all"}
	ValidThemeNames = []string{"default", "dracula", "nord", "none"}
)

// Validate checks enumerations and numeric ranges.
func (c *Config) Validate() error {
	if err := validateEnum(c.Format, "format", ValidFormats); err != nil {
		return err
	}
	if err := validateEnum(c.Bulk.State, "bulk.state", ValidStates); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if c.Bulk.PerPage < 1 || c.Bulk.PerPage > 100 {
		return fmt.Errorf("invalid bulk.per_page %d: must be between 1 and 100", c.Bulk.PerPage)
	}
	if c.Bulk.Pages < 1 {
		return fmt.Errorf("invalid bulk.pages %d: must be at least 1", c.Bulk.Pages)
	}
	if c.Batch.Concurrency < 1 || c.Batch.Concurrency > MaxConcurrency {
		return fmt.Errorf("invalid batch.concurrency %d: must be between 1 and %d", c.Batch.Concurrency, MaxConcurrency)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s: must be positive", c.Timeout)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
