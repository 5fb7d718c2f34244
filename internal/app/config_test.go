package app

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 100 || cfg.CellSize != 8 || cfg.Speed != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"speed too low", func(c *Config) { c.Speed = 1 }},
		{"speed too high", func(c *Config) { c.Speed = 500 }},
	}
	for _, c := range cases {
		cfg := NewConfig()
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", c.name)
		}
	}
}
