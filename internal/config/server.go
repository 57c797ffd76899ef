package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// ServerConfig holds settings for the HTTP move oracle.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowOrigins is the CORS origin list, comma-separated
	AllowOrigins string

	// AccessLog enables the per-request access log
	AccessLog bool
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		AllowOrigins: "*",
		AccessLog:    true,
	}
}

// Validate checks that the server settings are usable.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" || !strings.Contains(s.Addr, ":") {
		return fmt.Errorf("listen address %q needs a port: %w", s.Addr, errors.ErrInvalidConfig)
	}
	if strings.TrimSpace(s.AllowOrigins) == "" {
		return fmt.Errorf("empty CORS origin list: %w", errors.ErrInvalidConfig)
	}
	return nil
}
