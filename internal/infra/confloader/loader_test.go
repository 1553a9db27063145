// Package confloader provides configuration loading for idmint.
package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Server struct {
		HTTP struct {
			Addr string `koanf:"addr"`
		} `koanf:"http"`
	} `koanf:"server"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "idmint.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeTempConfig(t, `
server:
  http:
    addr: "0.0.0.0:7000"
log:
  level: debug
`)

	var cfg testConfig
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTP.Addr != "0.0.0.0:7000" {
		t.Errorf("addr = %q, want 0.0.0.0:7000", cfg.Server.HTTP.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	l := NewLoader(WithConfigFile("/does/not/exist.yaml"))

	var cfg testConfig
	if err := l.Load(&cfg); err == nil {
		t.Error("Load() should fail for a missing config file")
	}
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, `
server:
  http:
    addr: "127.0.0.1:5090"
`)

	t.Setenv("IDMINT_SERVER_HTTP_ADDR", "0.0.0.0:9999")

	var cfg testConfig
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTP.Addr != "0.0.0.0:9999" {
		t.Errorf("addr = %q, env should override file", cfg.Server.HTTP.Addr)
	}
}

func TestLoader_CustomEnvPrefix(t *testing.T) {
	t.Setenv("CUSTOM_LOG_LEVEL", "warn")

	var cfg testConfig
	l := NewLoader(WithEnvPrefix("CUSTOM_"))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"log.level": "error",
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if got := l.GetString("log.level"); got != "error" {
		t.Errorf("GetString(log.level) = %q, want error", got)
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	p := mapProvider{"a": 1}
	if _, err := p.ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v, want ErrReadBytesNotSupported", err)
	}
}
