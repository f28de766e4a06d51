package common

import "time"

const (
	DefinitionCacheTTL = 30 * time.Second

	// Caller-supplied secret locations evaluated by the auth gate.
	WebhookSecretHeader = "X-Webhook-Secret"
	EndpointKeyHeader   = "X-Api-Key"
	SecretQueryParam    = "secret"
)
