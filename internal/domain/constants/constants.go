// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// LinkClickTopic is the logical topic link click events are published under.
const LinkClickTopic = "link-clicks"
