// Package constants holds provider names shared by configuration and infrastructure.
package constants

// Database drivers
const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"
)

// Identity providers
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderJWT      = "jwt"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
