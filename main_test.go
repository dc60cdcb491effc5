package main

import (
	"testing"

	"github.com/flapboard/flapboard/internal/app"
	"github.com/flapboard/flapboard/internal/config"
)

func TestProbeTerminalsCoversStandardDescriptors(t *testing.T) {
	report := probeTerminals()
	if len(report.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(report.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if report.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, report.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			PagesPath:  "pages.json",
			CachePath:  "cache.db",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"pages":   "pages.json",
			"cache":   "cache.db",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--pages", "pages.json"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["pages"] != "pages.json" {
		t.Fatalf("expected pages flag %q, got %v", "pages.json", flagsValue["pages"])
	}
	if flagsValue["cache"] != "cache.db" {
		t.Fatalf("expected cache flag %q, got %v", "cache.db", flagsValue["cache"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(terminalReport); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
