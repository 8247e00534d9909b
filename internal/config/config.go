package config

import "time"

// Config is the root configuration for the dashboard service.
type Config struct {
	Neo4j   Neo4jConfig   `yaml:"neo4j"`
	Server  ServerConfig  `yaml:"server"`
	Filters FiltersConfig `yaml:"filters"`
}

// Neo4jConfig holds the Bolt connection to the backing graph database.
type Neo4jConfig struct {
	URI      string        `yaml:"uri"`      // e.g. bolt://localhost:7687 or neo4j+s://xxx.databases.neo4j.io
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout"` // per-query deadline; a timed-out fetch degrades to empty rows
}

// ServerConfig holds the HTTP listener and background refresh settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	RefreshInterval time.Duration `yaml:"refresh_interval"` // cadence of the background table refresh
}

// FiltersConfig holds the default ticket-price range applied when a
// request carries no explicit bounds.
type FiltersConfig struct {
	MinTicketPrice float64 `yaml:"min_ticket_price"`
	MaxTicketPrice float64 `yaml:"max_ticket_price"`
}
