package main

import (
	"testing"

	"github.com/AssassinTK/readlog-ai-tracker/internal/app"
	"github.com/AssassinTK/readlog-ai-tracker/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DataPath:      "readlog.db",
			ParticleCount: 150,
			FPS:           30,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"data":      "readlog.db",
			"particles": "150",
			"fps":       "30",
		},
		Args: []string{"--data", "readlog.db"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["data"] != "readlog.db" {
		t.Fatalf("expected data flag %q, got %v", "readlog.db", flagsValue["data"])
	}
	if flagsValue["particles"] != "150" {
		t.Fatalf("expected particles 150, got %v", flagsValue["particles"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App.DataPath != cfg.App.DataPath {
		t.Fatalf("expected data path %q, got %q", cfg.App.DataPath, cfgValue.App.DataPath)
	}
}
