package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ORS_API_KEY", "key")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("LEG_PACING", "")
	t.Setenv("GRID_WIDTH", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.LegPacing != time.Second {
		t.Fatalf("LegPacing = %v, want 1s", cfg.LegPacing)
	}
	if cfg.GridWidth != 800 {
		t.Fatalf("GridWidth = %d, want 800", cfg.GridWidth)
	}
	if cfg.ORSProfile != "driving-hgv" {
		t.Fatalf("ORSProfile = %q, want driving-hgv", cfg.ORSProfile)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing ors key", map[string]string{"ORS_API_KEY": ""}},
		{"bad pacing", map[string]string{"ORS_API_KEY": "k", "LEG_PACING": "soon"}},
		{"narrow grid", map[string]string{"ORS_API_KEY": "k", "GRID_WIDTH": "100"}},
		{"postgres without url", map[string]string{"ORS_API_KEY": "k", "DB_DRIVER": "postgres", "DATABASE_URL": ""}},
		{"unknown driver", map[string]string{"ORS_API_KEY": "k", "DB_DRIVER": "mysql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
