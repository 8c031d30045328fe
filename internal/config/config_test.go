package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("PROVIDER_API_KEY", "sk-test-key")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

provider:
  api_key: "sk-yaml-key"
  model: "claude-3-5-haiku-latest"
  timeout: "20s"

tts:
  base_url: "https://tts.example.com/v1"
  model: "tts-1"
  voice: "nova"
  max_text_len: 60

history:
  default_limit: 10
  max_limit: 40

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Provider.Timeout != 20*time.Second {
		t.Errorf("Provider.Timeout = %v, want 20s", cfg.Provider.Timeout)
	}
	if cfg.TTS.Voice != "nova" {
		t.Errorf("TTS.Voice = %q, want %q", cfg.TTS.Voice, "nova")
	}
	if cfg.History.DefaultLimit != 10 {
		t.Errorf("History.DefaultLimit = %d, want 10", cfg.History.DefaultLimit)
	}
}

func TestLoad_EnvOnly_Defaults(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	// Run from a directory with no config.yaml.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Provider.Model != "claude-3-5-haiku-latest" {
		t.Errorf("Provider.Model = %q, want default", cfg.Provider.Model)
	}
	if cfg.History.DefaultLimit != 5 || cfg.History.MaxLimit != 50 {
		t.Errorf("History limits = %d/%d, want 5/50", cfg.History.DefaultLimit, cfg.History.MaxLimit)
	}
	if cfg.TTS.MaxTextLen != 80 {
		t.Errorf("TTS.MaxTextLen = %d, want 80", cfg.TTS.MaxTextLen)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("PROVIDER_MODEL", "claude-sonnet-4-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.Provider.Model != "claude-sonnet-4-5" {
		t.Errorf("Provider.Model = %q, want env override", cfg.Provider.Model)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("PROVIDER_API_KEY", "")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for missing DATABASE_DSN")
	}
}

func TestLoad_ExplicitPathMissingFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "nope.yaml") {
		t.Errorf("error %q should mention the missing path", err)
	}
}

func TestValidate_HistoryLimits(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HISTORY_DEFAULT_LIMIT", "60")
	t.Setenv("HISTORY_MAX_LIMIT", "50")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error when max_limit < default_limit")
	}
}
