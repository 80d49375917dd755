package app

import (
	"flag"
	"io"
	"testing"
)

func TestBindParsesOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("factions", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scale", "2", "-set", "w=64", "-set", "palette=#FF0000,#00FF00", "-set", "w=80"})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cfg.Scale != 2 {
		t.Fatalf("expected scale 2, got %d", cfg.Scale)
	}
	m, err := cfg.Overrides.Map()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["w"] != "80" {
		t.Fatalf("later override should win, got %q", m["w"])
	}
	if m["palette"] != "#FF0000,#00FF00" {
		t.Fatalf("value containing commas must survive, got %q", m["palette"])
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestBindRejectsMalformedOverride(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("factions", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected malformed override to be rejected")
	}
}

func TestValidate(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Scale = 0 },
		func(c *Config) { c.TPS = -1 },
		func(c *Config) { c.HUDWidth = -5 },
		func(c *Config) { c.Overrides = KVList{"=x"} },
	}
	for i, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestDefaultSeedDefersToSim(t *testing.T) {
	if seed := NewConfig().Seed; seed != 0 {
		t.Fatalf("default seed should be 0 so the sim config decides, got %d", seed)
	}
}
