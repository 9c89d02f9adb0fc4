package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout %s, got %s", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Registry.Backend != BackendMemory || cfg.Registry.File != defaultRegistryFile {
		t.Fatalf("unexpected registry defaults %+v", cfg.Registry)
	}
	if cfg.Draw.RefineMode != "all" || cfg.Draw.MaxPlayers != 20 || cfg.Draw.DefaultLevel != 5 {
		t.Fatalf("unexpected draw defaults %+v", cfg.Draw)
	}
	if cfg.Draw.SnapshotDir != defaultSnapshotDir || cfg.Draw.MaxSnapshots != defaultMaxSnapshots {
		t.Fatalf("unexpected snapshot defaults %+v", cfg.Draw)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected empty admin token by default, got %s", cfg.AdminToken)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envShutdownTimeout, "3s")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envAdminToken, "secret")
	t.Setenv(envRegistryBackend, " Postgres ")
	t.Setenv(envDatabaseURL, "postgres://localhost/draws")
	t.Setenv(envRefineMode, "single")
	t.Setenv(envMaxPlayers, "15")
	t.Setenv(envDefaultLevel, "7")
	t.Setenv(envSnapshotDir, "/tmp/draws")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected shutdown timeout 3s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if cfg.AdminToken != "secret" {
		t.Fatalf("expected admin token override, got %s", cfg.AdminToken)
	}
	if cfg.Registry.Backend != BackendPostgres || cfg.Registry.DatabaseURL != "postgres://localhost/draws" {
		t.Fatalf("unexpected registry config %+v", cfg.Registry)
	}
	if cfg.Draw.RefineMode != "single" || cfg.Draw.MaxPlayers != 15 || cfg.Draw.DefaultLevel != 7 || cfg.Draw.SnapshotDir != "/tmp/draws" {
		t.Fatalf("unexpected draw config %+v", cfg.Draw)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv(envShutdownTimeout, "not-a-duration")
	t.Setenv(envMaxPlayers, "-3")
	t.Setenv(envDefaultLevel, "abc")

	cfg := Load()

	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout on invalid value, got %s", cfg.ShutdownTimeout)
	}
	if cfg.Draw.MaxPlayers != defaultMaxPlayers || cfg.Draw.DefaultLevel != defaultLevel {
		t.Fatalf("expected draw defaults on invalid values, got %+v", cfg.Draw)
	}
}

func TestLoadOutOfRangeDrawValuesFallBack(t *testing.T) {
	t.Setenv(envMaxPlayers, "25")
	t.Setenv(envDefaultLevel, "11")

	cfg := Load()

	if cfg.Draw.MaxPlayers != defaultMaxPlayers || cfg.Draw.DefaultLevel != defaultLevel {
		t.Fatalf("expected draw defaults for out-of-range values, got %+v", cfg.Draw)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envShutdownTimeout, "0s")

	cfg := Load()

	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout on non-positive value, got %s", cfg.ShutdownTimeout)
	}
}
