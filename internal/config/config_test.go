package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv blanks every variable the loader reads so host settings do not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"SERVER_HOST", "SERVER_PORT", "PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_REQUEST_TIMEOUT", "SERVER_MAX_FORM_SIZE",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS_PER_MINUTE",
		"TRUSTED_PROXIES", "SECURITY_ENABLE_CSP", "SECURITY_SECURE_COOKIES",
		"LOG_LEVEL", "LOG_FORMAT",
		"SESSION_COOKIE_NAME", "SESSION_IDLE_TIMEOUT", "SESSION_SWEEP_INTERVAL",
		"APP_DEFAULT_LANGUAGE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8501)
	}
	if cfg.Server.MaxFormSize != 1048576 {
		t.Errorf("Server.MaxFormSize = %d, want %d", cfg.Server.MaxFormSize, 1048576)
	}
	if cfg.Rate.RequestsPerMinute != 120 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 120)
	}
	if !cfg.Security.EnableCSP {
		t.Error("Security.EnableCSP = false, want true")
	}
	if cfg.Security.SecureCookies {
		t.Error("Security.SecureCookies = true, want false")
	}
	if cfg.Session.CookieName != "irm_session" {
		t.Errorf("Session.CookieName = %q, want %q", cfg.Session.CookieName, "irm_session")
	}
	if cfg.Session.IdleTimeout != 12*time.Hour {
		t.Errorf("Session.IdleTimeout = %v, want %v", cfg.Session.IdleTimeout, 12*time.Hour)
	}
	if cfg.App.DefaultLanguage != "KO" {
		t.Errorf("App.DefaultLanguage = %q, want %q", cfg.App.DefaultLanguage, "KO")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_DEFAULT_LANGUAGE", "en")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Rate.Enabled {
		t.Error("Rate.Enabled = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.App.DefaultLanguage != "en" {
		t.Errorf("App.DefaultLanguage = %q, want %q", cfg.App.DefaultLanguage, "en")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "eighty")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for non-numeric SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("error should mention SERVER_PORT: %v", err)
	}
}

func TestLoad_Duration(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_READ_TIMEOUT", "45s")
	t.Setenv("SESSION_IDLE_TIMEOUT", "1h30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Session.IdleTimeout != 90*time.Minute {
		t.Errorf("Session.IdleTimeout = %v, want %v", cfg.Session.IdleTimeout, 90*time.Minute)
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(expected) {
		t.Fatalf("TrustedProxies length = %d, want %d", len(cfg.Security.TrustedProxies), len(expected))
	}
	for i, v := range expected {
		if cfg.Security.TrustedProxies[i] != v {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], v)
		}
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8501,
			ShutdownTimeout: time.Second,
			RequestTimeout:  time.Second,
			MaxFormSize:     1024,
		},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100},
		Session: SessionConfig{CookieName: "irm_session", IdleTimeout: time.Hour, SweepInterval: time.Minute},
		App:     AppConfig{DefaultLanguage: "KO"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"invalid port", func(c *Config) { c.Server.Port = 99999 }, "SERVER_PORT"},
		{"zero form size", func(c *Config) { c.Server.MaxFormSize = 0 }, "SERVER_MAX_FORM_SIZE"},
		{"rate enabled without limit", func(c *Config) { c.Rate.RequestsPerMinute = 0 }, "RATE_LIMIT_REQUESTS_PER_MINUTE"},
		{"rate disabled without limit", func(c *Config) { c.Rate.Enabled = false; c.Rate.RequestsPerMinute = 0 }, ""},
		{"empty cookie name", func(c *Config) { c.Session.CookieName = "" }, "SESSION_COOKIE_NAME"},
		{"zero idle timeout", func(c *Config) { c.Session.IdleTimeout = 0 }, "SESSION_IDLE_TIMEOUT"},
		{"unsupported language", func(c *Config) { c.App.DefaultLanguage = "FR" }, "APP_DEFAULT_LANGUAGE"},
		{"lower-case language", func(c *Config) { c.App.DefaultLanguage = "en" }, ""},
		{"invalid log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"invalid log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"SERVER_PORT", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
		{"::1", 8501, "[::1]:8501"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Host = "127.0.0.1"
	str := cfg.String()
	for _, want := range []string{"127.0.0.1:8501", "DefaultLanguage", "Level"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, should contain %q", str, want)
		}
	}
}

func TestLoadFrom_CustomSource(t *testing.T) {
	env := map[string]string{
		"SERVER_PORT":          "8600",
		"SESSION_COOKIE_NAME":  "irm",
		"APP_DEFAULT_LANGUAGE": "EN",
	}

	cfg, err := LoadFrom(func(key string) string { return env[key] })
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Server.Port != 8600 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8600)
	}
	if cfg.Session.CookieName != "irm" {
		t.Errorf("Session.CookieName = %q, want %q", cfg.Session.CookieName, "irm")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8501)
	}
	if cfg.Session.SweepInterval != 10*time.Minute {
		t.Errorf("Session.SweepInterval = %v, want %v", cfg.Session.SweepInterval, 10*time.Minute)
	}
}
