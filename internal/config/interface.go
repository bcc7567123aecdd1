package config

import "context"

// Loader is the interface for a format-specific scenario loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic scenario model. Requests keep the order in which
	// they were declared.
	Load(ctx context.Context, paths ...string) (*Scenario, error)
}
