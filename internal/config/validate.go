package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Neo4j.URI == "" {
		return errors.New("neo4j.uri is required")
	}
	if c.Neo4j.Username == "" {
		return errors.New("neo4j.username is required")
	}
	if c.Neo4j.Password == "" {
		return errors.New("neo4j.password is required")
	}
	if c.Neo4j.Timeout <= 0 {
		return errors.New("neo4j.timeout must be positive")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RefreshInterval <= 0 {
		return errors.New("server.refresh_interval must be positive")
	}

	if c.Filters.MinTicketPrice < 0 {
		return errors.New("filters.min_ticket_price must be >= 0")
	}
	if c.Filters.MinTicketPrice > c.Filters.MaxTicketPrice {
		return fmt.Errorf("filters.min_ticket_price (%v) cannot exceed max_ticket_price (%v)",
			c.Filters.MinTicketPrice, c.Filters.MaxTicketPrice)
	}

	return nil
}
