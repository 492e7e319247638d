package config

import "github.com/law-makers/filters/internal/filters"

// Default constants for application configuration
const (
	DefaultLogLevel = "info"
	DefaultJSONLog  = false
	DefaultFormat   = "json"
	DefaultFilter   = filters.HTMLHeaders
	DefaultEnvFile  = ".env"
	EnvPrefix       = "FILTERS_"
)
