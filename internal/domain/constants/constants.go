// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selection values used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Deployment environment names matched against config.Env.Env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
