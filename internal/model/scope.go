package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries per-request caller identity through use cases. The access
// token is the caller's Google OAuth token, forwarded to the Calendar API.
type Scope struct {
	AccessToken string
	UserEmail   string
	Timezone    string // IANA name; empty means the configured default
}
