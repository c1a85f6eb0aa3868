package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "cassandra")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported STORAGE_DRIVER")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_IngestTuning(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("INGEST_MAX_WORKERS", "16")
	t.Setenv("INGEST_RECORD_TIMEOUT", "2s")
	t.Setenv("RESOLVER_AUTO_REGISTER", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.IngestMaxWorkers != 16 {
		t.Fatalf("unexpected IngestMaxWorkers: %d", cfg.IngestMaxWorkers)
	}
	if cfg.IngestRecordTimeout != 2*time.Second {
		t.Fatalf("unexpected IngestRecordTimeout: %s", cfg.IngestRecordTimeout)
	}
	if !cfg.ResolverAutoRegister {
		t.Fatalf("expected ResolverAutoRegister=true")
	}
}

func TestLoad_IngestWorkersMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("INGEST_MAX_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for INGEST_MAX_WORKERS=0")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StoragePostgres {
		t.Fatalf("unexpected default StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.ResolverAutoRegister {
		t.Fatalf("expected auto-register disabled by default")
	}
	if cfg.DefaultLeagueName != "Default League" {
		t.Fatalf("unexpected DefaultLeagueName: %q", cfg.DefaultLeagueName)
	}
}
