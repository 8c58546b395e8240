package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all HOMEFORGE_ env vars to test pure defaults
	envVars := []string{
		"HOMEFORGE_PORT", "HOMEFORGE_METRICS_PORT", "HOMEFORGE_ADMIN_TOKEN",
		"HOMEFORGE_DATABASE_URL", "HOMEFORGE_OLLAMA_URL", "HOMEFORGE_OLLAMA_MODEL",
		"HOMEFORGE_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8710 {
		t.Errorf("expected port 8710, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8711 {
		t.Errorf("expected metrics port 8711, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Ollama.URL != "http://localhost:11434" {
		t.Errorf("expected ollama URL, got %s", cfg.Ollama.URL)
	}
	if cfg.Ollama.Model != "llama3.1" {
		t.Errorf("expected default model, got %s", cfg.Ollama.Model)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
	if cfg.OllamaTimeout() != 2*time.Minute {
		t.Errorf("expected OllamaTimeout 2m, got %v", cfg.OllamaTimeout())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOMEFORGE_PORT", "9000")
	t.Setenv("HOMEFORGE_METRICS_PORT", "9001")
	t.Setenv("HOMEFORGE_ADMIN_TOKEN", "secret-token")
	t.Setenv("HOMEFORGE_DATABASE_URL", "postgres://localhost/homeforge_test")
	t.Setenv("HOMEFORGE_OLLAMA_URL", "http://ollama:11434")
	t.Setenv("HOMEFORGE_OLLAMA_MODEL", "mistral")
	t.Setenv("HOMEFORGE_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/homeforge_test" {
		t.Errorf("expected database URL, got '%s'", cfg.Database.URL)
	}
	if cfg.Ollama.URL != "http://ollama:11434" {
		t.Errorf("expected ollama URL, got '%s'", cfg.Ollama.URL)
	}
	if cfg.Ollama.Model != "mistral" {
		t.Errorf("expected model 'mistral', got '%s'", cfg.Ollama.Model)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 8800
ollama:
  model: qwen2.5
logging:
  level: warn
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800, got %d", cfg.Server.Port)
	}
	// Unset fields keep defaults.
	if cfg.Server.MetricsPort != 8711 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Ollama.Model != "qwen2.5" {
		t.Errorf("expected model from file, got %s", cfg.Ollama.Model)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level 'warn', got %s", cfg.Logging.Level)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
