package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voyageware/farequote/internal/config"
	"github.com/voyageware/farequote/pkg/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %s, expected %s", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.RequestSizeBytes() != constants.DefaultMaxRequestSizeBytes {
		t.Errorf("request size = %d, expected %d", cfg.RequestSizeBytes(), constants.DefaultMaxRequestSizeBytes)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %s, expected %s", cfg.Address, constants.DefaultServerAddress)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	data := `
address: ":9999"
maxRequestSize: 1M
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write server config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":9999" {
		t.Errorf("address = %s, expected :9999", cfg.Address)
	}
	if cfg.RequestSizeBytes() != 1024*1024 {
		t.Errorf("request size = %d, expected 1M", cfg.RequestSizeBytes())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %s, expected debug", cfg.Logging.Level)
	}
}

func TestFromServerConfig(t *testing.T) {
	cfg, err := FromServerConfig(config.ServerConfig{Address: ":7070", MaxRequestSize: "2K"}, config.LoggingConfig{Level: "info"})
	if err != nil {
		t.Fatalf("FromServerConfig() error = %v", err)
	}
	if cfg.Address != ":7070" {
		t.Errorf("address = %s, expected :7070", cfg.Address)
	}
	if cfg.RequestSizeBytes() != 2048 {
		t.Errorf("request size = %d, expected 2048", cfg.RequestSizeBytes())
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  int64
		wantError bool
	}{
		{
			name:     "Plain bytes",
			value:    "1024",
			expected: 1024,
		},
		{
			name:     "Kilobytes",
			value:    "256K",
			expected: 256 * 1024,
		},
		{
			name:     "Megabytes with unit suffix",
			value:    "10MB",
			expected: 10 * 1024 * 1024,
		},
		{
			name:     "Gigabytes",
			value:    "1G",
			expected: 1024 * 1024 * 1024,
		},
		{
			name:     "Empty string uses default",
			value:    "",
			expected: constants.DefaultMaxRequestSizeBytes,
		},
		{
			name:      "Unsupported unit",
			value:     "5T",
			wantError: true,
		},
		{
			name:      "No digits",
			value:     "KB",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.value)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseSize(%q) expected error but got none", tt.value)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseSize(%q) error = %v", tt.value, err)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.value, got, tt.expected)
			}
		})
	}
}
