package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when GEMINI_API_KEY is empty")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("PORT", "")
	t.Setenv("RETRY_MAX", "")
	t.Setenv("MAX_UPLOAD_MB", "")
	t.Setenv("RETRY_BASE_DELAY", "500ms")
	t.Setenv("ALLOWED_ORIGIN_SUFFIXES", "vercel.app,example.org")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "8080" || cfg.RetryMax != 3 || cfg.MaxUploadMB != 25 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.RetryBaseDelay != 500*time.Millisecond {
		t.Fatalf("delay=%v", cfg.RetryBaseDelay)
	}
	if len(cfg.AllowedOriginSuffixes) != 2 || cfg.AllowedOriginSuffixes[1] != "example.org" {
		t.Fatalf("suffixes=%v", cfg.AllowedOriginSuffixes)
	}
}
