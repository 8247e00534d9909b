package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
neo4j:
  uri: neo4j+s://test.databases.neo4j.io
  username: neo4j
  password: testpass
  timeout: 5s
server:
  port: 9090
filters:
  min_ticket_price: 2
  max_ticket_price: 50
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Neo4j.URI != "neo4j+s://test.databases.neo4j.io" {
		t.Errorf("Neo4j.URI = %q, want %q", cfg.Neo4j.URI, "neo4j+s://test.databases.neo4j.io")
	}
	if cfg.Neo4j.Timeout != 5*time.Second {
		t.Errorf("Neo4j.Timeout = %v, want %v", cfg.Neo4j.Timeout, 5*time.Second)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Filters.MinTicketPrice != 2 {
		t.Errorf("Filters.MinTicketPrice = %v, want 2", cfg.Filters.MinTicketPrice)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_NEO4J_PASSWORD", "secret123")

	yaml := `
neo4j:
  uri: bolt://localhost:7687
  username: neo4j
  password: ${TEST_NEO4J_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Neo4j.Password != "secret123" {
		t.Errorf("Neo4j.Password = %q, want %q", cfg.Neo4j.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
neo4j:
  username: neo4j
  password: testpass
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Neo4j.URI != DefaultNeo4jURI {
		t.Errorf("Neo4j.URI = %q, want default %q", cfg.Neo4j.URI, DefaultNeo4jURI)
	}
	if cfg.Neo4j.Timeout != DefaultFetchTimeout {
		t.Errorf("Neo4j.Timeout = %v, want default %v", cfg.Neo4j.Timeout, DefaultFetchTimeout)
	}
	if cfg.Server.Port != DefaultServerPort {
		t.Errorf("Server.Port = %d, want default %d", cfg.Server.Port, DefaultServerPort)
	}
	if cfg.Server.RefreshInterval != DefaultRefreshInterval {
		t.Errorf("Server.RefreshInterval = %v, want default %v", cfg.Server.RefreshInterval, DefaultRefreshInterval)
	}
	if cfg.Filters.MinTicketPrice != DefaultMinTicketPrice {
		t.Errorf("Filters.MinTicketPrice = %v, want default %v", cfg.Filters.MinTicketPrice, float64(DefaultMinTicketPrice))
	}
	if cfg.Filters.MaxTicketPrice != DefaultMaxTicketPrice {
		t.Errorf("Filters.MaxTicketPrice = %v, want default %v", cfg.Filters.MaxTicketPrice, float64(DefaultMaxTicketPrice))
	}
}

func TestLoadAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid",
			yaml: `
neo4j:
  uri: bolt://localhost:7687
  username: neo4j
  password: testpass
`,
		},
		{
			name: "missing username",
			yaml: `
neo4j:
  uri: bolt://localhost:7687
  password: testpass
`,
			wantErr: "neo4j.username is required",
		},
		{
			name: "missing password",
			yaml: `
neo4j:
  uri: bolt://localhost:7687
  username: neo4j
`,
			wantErr: "neo4j.password is required",
		},
		{
			name: "min above max",
			yaml: `
neo4j:
  username: neo4j
  password: testpass
filters:
  min_ticket_price: 50
  max_ticket_price: 10
`,
			wantErr: "min_ticket_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.yaml)
			_, err := LoadAndValidate(path)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("LoadAndValidate failed: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("LoadAndValidate succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}
