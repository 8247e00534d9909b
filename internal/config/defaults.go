package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultNeo4jURI        = "bolt://localhost:7687"
	DefaultFetchTimeout    = 10 * time.Second
	DefaultServerPort      = 8080
	DefaultRefreshInterval = 15 * time.Minute
	DefaultMinTicketPrice  = 1
	DefaultMaxTicketPrice  = 100
)

func (c *Config) applyDefaults() {
	if c.Neo4j.URI == "" {
		c.Neo4j.URI = DefaultNeo4jURI
	}
	if c.Neo4j.Timeout == 0 {
		c.Neo4j.Timeout = DefaultFetchTimeout
	}

	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.RefreshInterval == 0 {
		c.Server.RefreshInterval = DefaultRefreshInterval
	}

	if c.Filters.MinTicketPrice == 0 {
		c.Filters.MinTicketPrice = DefaultMinTicketPrice
	}
	if c.Filters.MaxTicketPrice == 0 {
		c.Filters.MaxTicketPrice = DefaultMaxTicketPrice
	}
}
