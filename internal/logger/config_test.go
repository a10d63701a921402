package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Level != "INFO" {
		t.Errorf("expected default level INFO, got %s", cfg.Level)
	}
	if !cfg.ConsoleEnabled {
		t.Error("expected console enabled by default")
	}
	if cfg.FileEnabled {
		t.Error("expected file logging disabled by default")
	}
	if cfg.FileMaxSizeMB != 10 {
		t.Errorf("expected default max size 10, got %d", cfg.FileMaxSizeMB)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	data := `
logging:
  level: DEBUG
  console_enabled: true
  console_format: json
  file_enabled: true
  file_path: /tmp/test.log
  file_max_size_mb: 25
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Level != "DEBUG" {
		t.Errorf("expected level DEBUG, got %s", cfg.Level)
	}
	if cfg.ConsoleFormat != "json" {
		t.Errorf("expected console format json, got %s", cfg.ConsoleFormat)
	}
	if !cfg.FileEnabled || cfg.FilePath != "/tmp/test.log" {
		t.Errorf("unexpected file config: %+v", cfg)
	}
	if cfg.FileMaxSizeMB != 25 {
		t.Errorf("expected max size 25, got %d", cfg.FileMaxSizeMB)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LOG_FILE_ENABLED", "true")
	t.Setenv("LOG_FILE_PATH", "/tmp/override.log")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Level != "ERROR" {
		t.Errorf("expected env override level ERROR, got %s", cfg.Level)
	}
	if !cfg.FileEnabled {
		t.Error("expected env override to enable file logging")
	}
	if cfg.FilePath != "/tmp/override.log" {
		t.Errorf("expected env override path, got %s", cfg.FilePath)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"DEBUG", "DEBUG"},
		{"INFO", "INFO"},
		{"WARNING", "WARN"},
		{"WARN", "WARN"},
		{"ERROR", "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got.String() != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %s", tt.input, got, tt.want)
		}
	}
}
