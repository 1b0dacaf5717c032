// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so tests see pure defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
		"AI_PROVIDER", "DEMO_SEED",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"CLAUDE_API_KEY", "CLAUDE_MODEL", "CLAUDE_BASE_URL",
		"MISTRAL_API_KEY", "MISTRAL_MODEL", "MISTRAL_BASE_URL",
	}
	// envOrDefault treats "" the same as unset, so blanking is enough.
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("ValkeyHost", cfg.ValkeyHost, "localhost")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")
	check("AIProvider", cfg.AIProvider, "openai")
	check("OpenAIModel", cfg.OpenAIModel, "gpt-4o")
	check("GeminiModel", cfg.GeminiModel, "gemini-3.1-pro-preview")
	check("ClaudeModel", cfg.ClaudeModel, "claude-sonnet-4-6")
	check("MistralModel", cfg.MistralModel, "mistral-large-latest")

	if cfg.DemoSeed != 1 {
		t.Errorf("DemoSeed = %d, want 1", cfg.DemoSeed)
	}
}

// TestLoad_EnvOverrides verifies that every environment variable properly
// overrides the default value.
func TestLoad_EnvOverrides(t *testing.T) {
	overrides := map[string]string{
		"APP_HOST":         "127.0.0.1",
		"APP_PORT":         "9090",
		"APP_ENV":          "testing",
		"VALKEY_HOST":      "cache.example.com",
		"VALKEY_PORT":      "6380",
		"VALKEY_PASSWORD":  "cachepass",
		"AI_PROVIDER":      "mistral",
		"DEMO_SEED":        "42",
		"OPENAI_API_KEY":   "sk-test-key",
		"OPENAI_MODEL":     "gpt-4-turbo",
		"OPENAI_BASE_URL":  "https://custom.openai.example.com",
		"GEMINI_API_KEY":   "gemini-test-key",
		"GEMINI_MODEL":     "gemini-pro",
		"GEMINI_BASE_URL":  "https://custom.gemini.example.com",
		"CLAUDE_API_KEY":   "claude-test-key",
		"CLAUDE_MODEL":     "claude-3-opus",
		"CLAUDE_BASE_URL":  "https://custom.claude.example.com",
		"MISTRAL_API_KEY":  "mistral-test-key",
		"MISTRAL_MODEL":    "mistral-medium",
		"MISTRAL_BASE_URL": "https://custom.mistral.example.com",
	}

	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "127.0.0.1")
	check("Port", cfg.Port, "9090")
	check("Env", cfg.Env, "testing")
	check("ValkeyHost", cfg.ValkeyHost, "cache.example.com")
	check("ValkeyPort", cfg.ValkeyPort, "6380")
	check("ValkeyPassword", cfg.ValkeyPassword, "cachepass")
	check("AIProvider", cfg.AIProvider, "mistral")
	check("OpenAIKey", cfg.OpenAIKey, "sk-test-key")
	check("OpenAIModel", cfg.OpenAIModel, "gpt-4-turbo")
	check("OpenAIBaseURL", cfg.OpenAIBaseURL, "https://custom.openai.example.com")
	check("GeminiKey", cfg.GeminiKey, "gemini-test-key")
	check("GeminiModel", cfg.GeminiModel, "gemini-pro")
	check("GeminiBaseURL", cfg.GeminiBaseURL, "https://custom.gemini.example.com")
	check("ClaudeKey", cfg.ClaudeKey, "claude-test-key")
	check("ClaudeModel", cfg.ClaudeModel, "claude-3-opus")
	check("ClaudeBaseURL", cfg.ClaudeBaseURL, "https://custom.claude.example.com")
	check("MistralKey", cfg.MistralKey, "mistral-test-key")
	check("MistralModel", cfg.MistralModel, "mistral-medium")
	check("MistralBaseURL", cfg.MistralBaseURL, "https://custom.mistral.example.com")

	if cfg.DemoSeed != 42 {
		t.Errorf("DemoSeed = %d, want 42", cfg.DemoSeed)
	}
}

// TestLoad_RejectsUnknownProvider verifies validation of AI_PROVIDER.
func TestLoad_RejectsUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "skynet")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject an unknown AI_PROVIDER")
	}
	if !strings.Contains(err.Error(), "AI_PROVIDER") {
		t.Errorf("error should mention AI_PROVIDER, got: %v", err)
	}
}

// TestLoad_RejectsBadSeed verifies DEMO_SEED must be an integer.
func TestLoad_RejectsBadSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEMO_SEED", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject a non-integer DEMO_SEED")
	}
}

// TestLoad_ProductionRequiresValkeyPassword verifies that production mode
// refuses to start against an unauthenticated Valkey.
func TestLoad_ProductionRequiresValkeyPassword(t *testing.T) {
	t.Run("rejects empty password", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() should return an error when production has no Valkey password")
		}
		if !strings.Contains(err.Error(), "VALKEY_PASSWORD") {
			t.Errorf("error should mention VALKEY_PASSWORD, got: %v", err)
		}
	})

	t.Run("accepts real password", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("VALKEY_PASSWORD", "s3cur3-pr0d-p@ssw0rd")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.ValkeyPassword != "s3cur3-pr0d-p@ssw0rd" {
			t.Errorf("ValkeyPassword = %q, want the configured value", cfg.ValkeyPassword)
		}
	})
}

// TestAddr verifies the server listen address format.
func TestAddr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{name: "default", host: "0.0.0.0", port: "8080", expected: "0.0.0.0:8080"},
		{name: "localhost with custom port", host: "127.0.0.1", port: "3000", expected: "127.0.0.1:3000"},
		{name: "empty host", host: "", port: "8080", expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Host: tt.host, Port: tt.port}
			got := cfg.Addr()
			if got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestIsDev verifies the IsDev method for various environment modes.
func TestIsDev(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected bool
	}{
		{name: "development mode", env: "development", expected: true},
		{name: "production mode", env: "production", expected: false},
		{name: "testing mode", env: "testing", expected: false},
		{name: "empty string", env: "", expected: false},
		{name: "dev shorthand", env: "dev", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			got := cfg.IsDev()
			if got != tt.expected {
				t.Errorf("IsDev() = %v, want %v (env=%q)", got, tt.expected, tt.env)
			}
		})
	}
}

// TestEnvOrDefault verifies the unexported helper function indirectly
// through Load: an explicitly set env var wins over the default, and an
// empty var falls through to the default.
func TestEnvOrDefault(t *testing.T) {
	t.Run("set value wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_PORT", "3000")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.Port != "3000" {
			t.Errorf("Port = %q, want %q", cfg.Port, "3000")
		}
	})

	t.Run("empty value uses default", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("Port = %q, want default %q", cfg.Port, "8080")
		}
	})
}
