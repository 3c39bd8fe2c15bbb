package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Docs DocsConfig
}

// DocsConfig configures document generation. The demo title must contain
// "Demo" (it selects the Demo partition) and the main title must not.
type DocsConfig struct {
	MainTitle  string
	DemoTitle  string
	DemoPrefix string
	CacheTTL   time.Duration
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("APIFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("apiforge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("docs.main_title", "apiforge API")
	v.SetDefault("docs.demo_title", "apiforge Demo API")
	v.SetDefault("docs.demo_prefix", "/api/demo/")
	v.SetDefault("docs.cache_ttl", "5m")

	return v
}

// Load reads the full server config from environment (APIFORGE_ prefix) and
// optional apiforge.yaml.
func Load() (*Config, error) {
	v := newViper()

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")

	docs, err := loadDocs(v)
	if err != nil {
		return nil, err
	}
	cfg.Docs = *docs

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("APIFORGE_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("APIFORGE_DB_DSN is required")
	}

	return cfg, nil
}

// LoadDocs reads only the document-generation config. Used by commands that
// run the pipeline without a database.
func LoadDocs() (*DocsConfig, error) {
	return loadDocs(newViper())
}

func loadDocs(v *viper.Viper) (*DocsConfig, error) {
	cfg := &DocsConfig{
		MainTitle:  v.GetString("docs.main_title"),
		DemoTitle:  v.GetString("docs.demo_title"),
		DemoPrefix: v.GetString("docs.demo_prefix"),
	}

	ttl, err := time.ParseDuration(v.GetString("docs.cache_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid APIFORGE_DOCS_CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	if !strings.Contains(strings.ToLower(cfg.DemoTitle), "demo") {
		return nil, fmt.Errorf("APIFORGE_DOCS_DEMO_TITLE must contain \"Demo\", got %q", cfg.DemoTitle)
	}
	if strings.Contains(strings.ToLower(cfg.MainTitle), "demo") {
		return nil, fmt.Errorf("APIFORGE_DOCS_MAIN_TITLE must not contain \"Demo\", got %q", cfg.MainTitle)
	}

	return cfg, nil
}
