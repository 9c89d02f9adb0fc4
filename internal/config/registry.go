package config

import "strings"

// Registry backends.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// RegistryConfig selects where players are stored.
type RegistryConfig struct {
	Backend     string
	File        string
	DatabaseURL string
}

func loadRegistry() RegistryConfig {
	return RegistryConfig{
		Backend:     strings.ToLower(strings.TrimSpace(envOrDefault(envRegistryBackend, defaultRegistryBackend))),
		File:        envOrDefault(envRegistryFile, defaultRegistryFile),
		DatabaseURL: envOrDefault(envDatabaseURL, ""),
	}
}
