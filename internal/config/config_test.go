package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rules.MaxHeaderLength != 72 {
		t.Errorf("MaxHeaderLength = %d, want 72", cfg.Rules.MaxHeaderLength)
	}
	if !cfg.Rules.AllowReverts {
		t.Error("AllowReverts = false, want true")
	}
	if cfg.Rules.RequireBreakingFooter {
		t.Error("RequireBreakingFooter = true, want false")
	}
	if cfg.Scopes.Require {
		t.Error("Scopes.Require = true, want false")
	}
	if len(cfg.Types.Extra) != 0 {
		t.Errorf("Types.Extra = %v, want empty", cfg.Types.Extra)
	}
}

func TestLoadCreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Rules.MaxHeaderLength != 72 {
		t.Errorf("MaxHeaderLength = %d, want 72", cfg.Rules.MaxHeaderLength)
	}

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created at %s: %v", path, err)
	}
}

func TestLoadReadsUserFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := "[types]\nextra = [\"build\", \"ci\"]\n\n[rules]\nmax_header_length = 50\n"
	if err := os.WriteFile(filepath.Join(dir, "attcl.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Types.Extra) != 2 || cfg.Types.Extra[0] != "build" {
		t.Errorf("Types.Extra = %v, want [build ci]", cfg.Types.Extra)
	}
	if cfg.Rules.MaxHeaderLength != 50 {
		t.Errorf("MaxHeaderLength = %d, want 50", cfg.Rules.MaxHeaderLength)
	}
}

func TestLoadForRepoOverlay(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)

	user := "[rules]\nmax_header_length = 50\n\n[scopes]\nrequire = true\n"
	if err := os.WriteFile(filepath.Join(configDir, "attcl.toml"), []byte(user), 0644); err != nil {
		t.Fatal(err)
	}

	repo := t.TempDir()
	local := "[scopes]\nallowed = [\"parser\", \"lexer\"]\n"
	if err := os.WriteFile(filepath.Join(repo, RepoFileName), []byte(local), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadForRepo(repo)
	if err != nil {
		t.Fatalf("LoadForRepo returned error: %v", err)
	}

	// Repo file wins for keys it sets
	if len(cfg.Scopes.Allowed) != 2 {
		t.Errorf("Scopes.Allowed = %v, want [parser lexer]", cfg.Scopes.Allowed)
	}
	// User-level values survive where the repo file is silent
	if cfg.Rules.MaxHeaderLength != 50 {
		t.Errorf("MaxHeaderLength = %d, want 50", cfg.Rules.MaxHeaderLength)
	}
	if !cfg.Scopes.Require {
		t.Error("Scopes.Require = false, want true from user config")
	}
}

func TestLoadForRepoWithoutLocalFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadForRepo(t.TempDir())
	if err != nil {
		t.Fatalf("LoadForRepo returned error: %v", err)
	}
	if cfg.Rules.MaxHeaderLength != 72 {
		t.Errorf("MaxHeaderLength = %d, want 72", cfg.Rules.MaxHeaderLength)
	}
}

func TestValidateRejectsBadTokens(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := "[types]\nextra = [\"Build\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "attcl.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load accepted an uppercase extra type token")
	}
}
