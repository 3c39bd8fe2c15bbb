package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APIFORGE_DB_DRIVER", "sqlite3")
	t.Setenv("APIFORGE_DB_DSN", ":memory:")
}

func TestLoad_defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.Docs.MainTitle != "apiforge API" {
		t.Errorf("main title = %q", cfg.Docs.MainTitle)
	}
	if cfg.Docs.DemoTitle != "apiforge Demo API" {
		t.Errorf("demo title = %q", cfg.Docs.DemoTitle)
	}
	if cfg.Docs.DemoPrefix != "/api/demo/" {
		t.Errorf("demo prefix = %q", cfg.Docs.DemoPrefix)
	}
	if cfg.Docs.CacheTTL != 5*time.Minute {
		t.Errorf("cache ttl = %v, want 5m", cfg.Docs.CacheTTL)
	}
}

func TestLoad_missingDriver(t *testing.T) {
	t.Setenv("APIFORGE_DB_DRIVER", "")
	t.Setenv("APIFORGE_DB_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing db driver")
	}
}

func TestLoad_invalidCacheTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("APIFORGE_DOCS_CACHE_TTL", "not-a-duration")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "APIFORGE_DOCS_CACHE_TTL") {
		t.Fatalf("err = %v, want cache TTL error", err)
	}
}

func TestLoad_demoTitleMustContainDemo(t *testing.T) {
	setRequired(t)
	t.Setenv("APIFORGE_DOCS_DEMO_TITLE", "Sandbox API")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for demo title without Demo")
	}
}

func TestLoad_mainTitleMustNotContainDemo(t *testing.T) {
	setRequired(t)
	t.Setenv("APIFORGE_DOCS_MAIN_TITLE", "Demo-ish API")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for main title containing Demo")
	}
}

func TestLoadDocs_noDatabaseRequired(t *testing.T) {
	cfg, err := LoadDocs()
	if err != nil {
		t.Fatalf("LoadDocs: %v", err)
	}
	if cfg.DemoPrefix != "/api/demo/" {
		t.Errorf("demo prefix = %q", cfg.DemoPrefix)
	}
}
