package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.PagesPath != "" || cfg.App.CachePath != "" {
		t.Fatalf("expected empty paths by default, got %#v", cfg.App)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions by default, got %#v", cfg.App)
	}
	if cfg.Logging.Trace {
		t.Fatal("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	environ := []string{
		"FLAPBOARD_PAGES=/env/pages.json",
		"FLAPBOARD_WIDTH=80",
		"FLAPBOARD_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"-pages", "/flag/pages.json", "-width", "100"}, environ)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.PagesPath != "/flag/pages.json" {
		t.Fatalf("expected flag to win, got %q", cfg.App.PagesPath)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("expected flag width, got %d", cfg.App.Width)
	}
	if !cfg.Logging.Trace {
		t.Fatal("expected env trace to apply")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestLoadArgsInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"FLAPBOARD_WIDTH=not-a-number", "FLAPBOARD_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks for bad env values, got %#v", cfg.App)
	}
}
