package config

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultHasNonZeroScrollbackAndKeybindings(t *testing.T) {
	cfg := Default()

	if cfg.Appearance.ScrollbackLines <= 0 {
		t.Fatalf("ScrollbackLines = %d, want > 0", cfg.Appearance.ScrollbackLines)
	}
	if len(cfg.Keybindings.Global["quit"]) == 0 {
		t.Fatal("expected a default binding for \"quit\"")
	}
}

// TestUnmarshalOverridesThenFillMissing exercises the same parse-then-merge
// path Load takes for an on-disk file, without touching the XDG directories
// themselves (those are resolved once at process start by the xdg package).
func TestUnmarshalOverridesThenFillMissing(t *testing.T) {
	body := "[appearance]\ntheme = \"solarized\"\nscrollback_lines = 500\n"

	cfg := Default()
	if err := toml.Unmarshal([]byte(body), cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	fillMissing(cfg)

	if cfg.Appearance.Theme != "solarized" {
		t.Fatalf("Theme = %q, want %q", cfg.Appearance.Theme, "solarized")
	}
	if cfg.Appearance.ScrollbackLines != 500 {
		t.Fatalf("ScrollbackLines = %d, want 500", cfg.Appearance.ScrollbackLines)
	}
	if len(cfg.Keybindings.Global["quit"]) == 0 {
		t.Fatal("expected fillMissing to backfill the default quit binding")
	}
}

func TestFillMissingBackfillsZeroScrollback(t *testing.T) {
	cfg := &Config{}
	fillMissing(cfg)

	if cfg.Appearance.ScrollbackLines != Default().Appearance.ScrollbackLines {
		t.Fatalf("ScrollbackLines = %d, want default", cfg.Appearance.ScrollbackLines)
	}
	if cfg.Keybindings.Global == nil {
		t.Fatal("expected fillMissing to populate Keybindings.Global")
	}
}
