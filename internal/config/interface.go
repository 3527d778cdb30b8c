package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every configuration file found under paths and returns
	// their merged model. Later files take precedence over earlier ones.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
