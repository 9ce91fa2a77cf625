package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MINDPLAY_DB", "")
	t.Setenv("MINDPLAY_CHILD", "")
	t.Setenv("MINDPLAY_LEVELS", "")
	t.Setenv("MINDPLAY_LOG_LEVEL", "")

	cfg := Load()
	if cfg.ChildID != "default" {
		t.Errorf("ChildID = %q, want default", cfg.ChildID)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.DBPath != "" || cfg.LevelsPath != "" {
		t.Errorf("paths should default empty, got %q / %q", cfg.DBPath, cfg.LevelsPath)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MINDPLAY_DB", "/tmp/mp.db")
	t.Setenv("MINDPLAY_CHILD", "ada")
	t.Setenv("MINDPLAY_LEVELS", "/tmp/levels.json")
	t.Setenv("MINDPLAY_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.DBPath != "/tmp/mp.db" || cfg.ChildID != "ada" ||
		cfg.LevelsPath != "/tmp/levels.json" || cfg.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
