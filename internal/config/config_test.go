package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FirstRunCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayplan.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != "127.0.0.1:8080" || cfg.DatabasePath != "dayplan.db" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionSecret == "" {
		t.Error("first run should generate a session secret")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}

	// The second load reads back what the first one wrote.
	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load (reread): %v", err)
	}
	if again.SessionSecret != cfg.SessionSecret {
		t.Error("session secret changed between loads")
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayplan.yaml")
	content := "listen: \"0.0.0.0:9000\"\nopenai:\n  model: gpt-4o-mini\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != "0.0.0.0:9000" {
		t.Errorf("listen = %q", cfg.Listen)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.OpenAI.Model)
	}
	// Normalize fills everything the file left out.
	if cfg.Timezone != "Local" || cfg.DatabasePath != "dayplan.db" || cfg.SessionSecret == "" {
		t.Errorf("missing fields not normalized: %+v", cfg)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayplan.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load on malformed YAML should fail")
	}
}

func TestNormalize_APIKeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-env")

	cfg := &Config{}
	cfg.Normalize()

	if cfg.OpenAI.APIKey != "sk-test-env" {
		t.Errorf("api key = %q, want the env value", cfg.OpenAI.APIKey)
	}
}

func TestNormalize_KeepsExplicitAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-env")

	cfg := &Config{OpenAI: OpenAIConfig{APIKey: "sk-from-file"}}
	cfg.Normalize()

	if cfg.OpenAI.APIKey != "sk-from-file" {
		t.Errorf("api key = %q, file value must win over env", cfg.OpenAI.APIKey)
	}
}
