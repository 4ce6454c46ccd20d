// Package constants contains string constants shared by config and infra providers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// PubSub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Store providers
const (
	StoreProviderFirestore = "firestore"
	StoreProviderSQLite    = "sqlite"
	StoreProviderPostgres  = "postgres"
)

// Claim store providers
const (
	ClaimProviderNone   = "none"
	ClaimProviderMemory = "memory"
	ClaimProviderRedis  = "redis"
)
