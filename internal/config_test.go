package internal

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.App.IsProduction() {
		t.Error("default env should not be production")
	}
	if cfg.Resources.Examples {
		t.Error("examples resource should be disabled by default")
	}
}

func TestApplicationConfig_InvalidEnv(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.Env = "staging"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("unknown env should fail validation")
	}
	if !strings.HasPrefix(err.Error(), "app:") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestApplicationConfig_Production(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.App.Env = EnvProduction
	if err := cfg.Validate(); err != nil {
		t.Fatalf("production env should pass: %v", err)
	}
	if !cfg.App.IsProduction() {
		t.Error("production env should report production")
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 8000}
	if got := cfg.Address(); got != ":8000" {
		t.Errorf("Address() = %q, want %q", got, ":8000")
	}
}

func TestDatabaseConfig_InvalidDriver(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Database.Driver = "mysql"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("unsupported driver should fail validation")
	}
	if !strings.HasPrefix(err.Error(), "database:") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDatabaseConfig_EmptyDSN(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Database.DSN = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty dsn should fail validation")
	}
}

func TestDatabaseConfig_Postgres(t *testing.T) {
	cfg := DatabaseConfig{Driver: "pgx", DSN: "postgres://localhost/noteful", MaxOpenConns: 4}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("pgx driver should pass: %v", err)
	}
	if opts := cfg.Options(); opts.MaxOpenConns != 4 {
		t.Errorf("MaxOpenConns = %d, want 4", opts.MaxOpenConns)
	}
}
