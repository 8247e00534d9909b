// Package config loads and validates the dashboard service configuration
// from YAML, with ${VAR} environment variable expansion for secrets.
package config
