package config

import "fmt"

// Validate checks if the configuration is valid. It rejects the malformed
// limits the solver would also reject, producing friendlier messages
// before any search starts.
func (c *Config) Validate() error {
	if c.MaxInt <= 0 {
		return fmt.Errorf("max-int must be positive, got %d", c.MaxInt)
	}
	if c.MaxNumbers <= 0 {
		return fmt.Errorf("max-numbers must be positive, got %d", c.MaxNumbers)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top must be positive, got %d", c.TopN)
	}
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("unknown output format %q (want auto, text, markdown, or json)", c.OutputFormat)
	}
	return nil
}

// AlphabetEmpty reports whether the exclusions remove every operand. The
// solver treats an empty alphabet as an ordinary unreachable target, so a
// caller wanting a distinct message must check before searching.
func (c *Config) AlphabetEmpty() bool {
	excluded := make(map[int64]bool, len(c.Exclude))
	for _, v := range c.Exclude {
		excluded[v] = true
	}
	for v := int64(1); v <= int64(c.MaxInt); v++ {
		if !excluded[v] {
			return false
		}
	}
	return true
}
