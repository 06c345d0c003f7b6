package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.App.Env != "dev" || c.App.Mode != "offline" {
		t.Fatalf("app = %+v", c.App)
	}
	if c.Server.Addr != ":8080" {
		t.Fatalf("addr = %q", c.Server.Addr)
	}
	if c.Cache.Kind != "memory" {
		t.Fatalf("cache kind = %q", c.Cache.Kind)
	}
	if c.SessionTTL() != 168*time.Hour {
		t.Fatalf("session ttl = %v", c.SessionTTL())
	}
	if c.MemoryTTL() != 2*time.Minute {
		t.Fatalf("memory ttl = %v", c.MemoryTTL())
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
app:
  env: prod
  mode: live
server:
  addr: ":9090"
  public_base_url: "https://app.queuecx.com"
storage:
  postgres:
    dsn: "postgres://localhost/dash"
    max_conns: 10
cache:
  kind: redis
  redis:
    addr: "localhost:6379"
auth:
  session_secret: "s3cret"
  session_ttl: "24h"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.App.Mode != "live" || c.Server.Addr != ":9090" {
		t.Fatalf("config = %+v", c)
	}
	if c.Storage.Postgres.MaxConns != 10 {
		t.Fatalf("max conns = %d", c.Storage.Postgres.MaxConns)
	}
	if c.SessionTTL() != 24*time.Hour {
		t.Fatalf("session ttl = %v", c.SessionTTL())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DASH_MODE", "live")
	t.Setenv("DASH_ADDR", ":7070")
	t.Setenv("DASH_PG_MAX_CONNS", "20")
	t.Setenv("DASH_SMTP_ENABLED", "true")

	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.App.Mode != "live" {
		t.Fatalf("mode = %q", c.App.Mode)
	}
	if c.Server.Addr != ":7070" {
		t.Fatalf("addr = %q", c.Server.Addr)
	}
	if c.Storage.Postgres.MaxConns != 20 {
		t.Fatalf("max conns = %d", c.Storage.Postgres.MaxConns)
	}
	if !c.Email.Enabled {
		t.Fatal("smtp not enabled")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTTLFallbacks(t *testing.T) {
	c := &Config{}
	c.Auth.SessionTTL = "garbage"
	if c.SessionTTL() != 168*time.Hour {
		t.Fatalf("ttl = %v", c.SessionTTL())
	}
	c.Cache.Memory.DefaultTTL = "-5m"
	if c.MemoryTTL() != 2*time.Minute {
		t.Fatalf("memory ttl = %v", c.MemoryTTL())
	}
}
