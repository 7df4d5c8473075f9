package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("backend_url = %q", cfg.BackendURL)
	}
	if cfg.Port != 3000 {
		t.Errorf("port = %d", cfg.Port)
	}
	if cfg.RequestTimeout() != 300*time.Second {
		t.Errorf("request timeout = %v", cfg.RequestTimeout())
	}
	if cfg.ToastTTL() != 4*time.Second {
		t.Errorf("toast ttl = %v", cfg.ToastTTL())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	original := &Config{
		BackendURL:            "http://backend:9000",
		Model:                 "deepseek-r1:1.5b",
		Port:                  8080,
		AllowAllOrigins:       true,
		RequestTimeoutSeconds: 120,
		ToastSeconds:          6,
		OutputDir:             "out",
	}
	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, original)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte("port: 4000\nmodel: llama3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 4000 || cfg.Model != "llama3" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.BackendURL != "http://localhost:8000" || cfg.OutputDir != "export" {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte("backend_url: http://file:8000\nport: 4000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("COURSETRAIL_BACKEND_URL", "http://env:8000")
	t.Setenv("COURSETRAIL_MODEL", "llama3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://env:8000" {
		t.Errorf("backend_url = %q, env should win over the file", cfg.BackendURL)
	}
	if cfg.Model != "llama3" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Port != 4000 {
		t.Errorf("port = %d, file value should survive", cfg.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty backend url", func(c *Config) { c.BackendURL = "" }, true},
		{"non-http backend url", func(c *Config) { c.BackendURL = "ftp://host" }, true},
		{"backend url without host", func(c *Config) { c.BackendURL = "http://" }, true},
		{"https backend url", func(c *Config) { c.BackendURL = "https://backend:8000" }, false},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.Port = 70000 }, true},
		{"negative timeout", func(c *Config) { c.RequestTimeoutSeconds = -1 }, true},
		{"zero toast seconds", func(c *Config) { c.ToastSeconds = 0 }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
