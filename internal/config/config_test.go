package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearEnv unsets every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		PathEnv, "MEMELAB_ADDR",
		"MEMELAB_REDIS_ADDR", "MEMELAB_REDIS_PASSWORD", "MEMELAB_REDIS_DB", "MEMELAB_REDIS_NAMESPACE",
		"SERPER_API_KEY", "SERPAPI_API_KEY", "BRAVE_API_KEY",
		"TAVILY_API_KEY", "GIPHY_API_KEY", "PIXABAY_API_KEY",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memelab.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.UseRedis() {
		t.Error("Redis should be disabled by default")
	}
	if creds := cfg.Credentials(); creds.Serper != "" || creds.Pixabay != "" {
		t.Errorf("Credentials = %+v, want empty", creds)
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEMELAB_ADDR", ":8080")
	t.Setenv("SERPER_API_KEY", "serper-key")
	t.Setenv("GIPHY_API_KEY", "giphy-key")
	t.Setenv("MEMELAB_REDIS_ADDR", "localhost:6379")
	t.Setenv("MEMELAB_REDIS_DB", "2")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	creds := cfg.Credentials()
	if creds.Serper != "serper-key" || creds.Giphy != "giphy-key" {
		t.Errorf("Credentials = %+v", creds)
	}
	if creds.Brave != "" {
		t.Errorf("Brave = %q, want empty", creds.Brave)
	}
	if !cfg.UseRedis() || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
addr = ":9000"

[redis]
addr = "cache.internal:6379"
namespace = "staging:"

[keys]
serper = "from-file"
tavily = "tavily-file"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Redis.Addr != "cache.internal:6379" || cfg.Redis.Namespace != "staging:" {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Keys.Serper != "from-file" || cfg.Keys.Tavily != "tavily-file" {
		t.Errorf("Keys = %+v", cfg.Keys)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
addr = ":9000"

[keys]
serper = "from-file"
brave = "brave-file"
`)
	t.Setenv("SERPER_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Keys.Serper != "from-env" {
		t.Errorf("Serper = %q, want from-env", cfg.Keys.Serper)
	}
	if cfg.Keys.Brave != "brave-file" {
		t.Errorf("Brave = %q, want brave-file", cfg.Keys.Brave)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
}

func TestLoadPathFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(PathEnv, writeFile(t, `addr = ":7000"`))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("Addr = %q, want :7000", cfg.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{"malformed toml", `addr = `, nil, "parse config"},
		{"empty addr", `addr = ""`, nil, "Addr"},
		{"bad redis addr", "[redis]\naddr = \"no-port\"", nil, "Redis.Addr"},
		{"bad redis db", "", map[string]string{"MEMELAB_REDIS_DB": "99"}, "Redis.DB"},
		{"non-numeric redis db", "", map[string]string{"MEMELAB_REDIS_DB": "two"}, "read environment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load: expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load = %v, want not found error", err)
	}
}
