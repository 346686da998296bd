// Package constants holds shared configuration constant values.
package constants

// Deployment environments.
const (
	// EnvDevelop is the local development environment.
	EnvDevelop = "develop"
	// EnvProduction is the production environment.
	EnvProduction = "production"
)

// Pub/Sub provider names recognized by the event publisher factory.
const (
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal posts push-format messages to a local HTTP endpoint.
	PubSubProviderLocal = "local"
)
