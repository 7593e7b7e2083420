package constants

// Supported Pub/Sub providers for assignment events
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
