package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// RepoFileName is the repo-local override file, looked up at the repo root
const RepoFileName = ".attcl.toml"

type Config struct {
	Types  TypesConfig  `toml:"types"`
	Scopes ScopesConfig `toml:"scopes"`
	Rules  RulesConfig  `toml:"rules"`
	Update UpdateConfig `toml:"update"`
}

type TypesConfig struct {
	// Extra type tokens accepted in addition to the built-in set
	Extra []string `toml:"extra"`
}

type ScopesConfig struct {
	// Allowed restricts scopes to this list when non-empty
	Allowed []string `toml:"allowed"`
	// Require rejects messages without a scope
	Require bool `toml:"require"`
}

type RulesConfig struct {
	// MaxHeaderLength rejects longer headers; 0 disables the check
	MaxHeaderLength int `toml:"max_header_length"`
	// RequireBreakingFooter rejects a "!" header without a BREAKING CHANGE footer
	RequireBreakingFooter bool `toml:"require_breaking_footer"`
	// AllowReverts skips git-generated Revert "..." subjects in range mode
	AllowReverts bool `toml:"allow_reverts"`
}

type UpdateConfig struct {
	Enabled        bool      `toml:"enabled"`
	LastCheck      time.Time `toml:"last_check"`
	SkippedVersion string    `toml:"skipped_version"`
	Repo           string    `toml:"repo"`
}

func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			MaxHeaderLength: 72,
			AllowReverts:    true,
		},
		Update: UpdateConfig{
			Enabled: true,
			Repo:    "wahlandcase/attuned.commitlint",
		},
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attcl.toml"), nil
}

// Load reads the user-level config, creating it with defaults on first run
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadForRepo loads the user config and overlays the repo-local .attcl.toml
// if one exists at the repository root
func LoadForRepo(repoPath string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	local := filepath.Join(repoPath, RepoFileName)
	data, err := os.ReadFile(local)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal over the loaded config: keys present in the repo file win,
	// everything else keeps the user-level value
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", local, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	for _, t := range c.Types.Extra {
		if !validToken(t) {
			return fmt.Errorf("invalid types.extra entry %q: must match [a-z0-9-]+", t)
		}
	}
	for _, s := range c.Scopes.Allowed {
		if !validToken(s) {
			return fmt.Errorf("invalid scopes.allowed entry %q: must match [a-z0-9-]+", s)
		}
	}
	if c.Rules.MaxHeaderLength < 0 {
		return fmt.Errorf("rules.max_header_length cannot be negative")
	}
	return nil
}

func validToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ShouldCheckForUpdate returns true if update check is enabled and 24h since last check
func (c *Config) ShouldCheckForUpdate() bool {
	if !c.Update.Enabled {
		return false
	}
	return time.Since(c.Update.LastCheck) > 24*time.Hour
}

// RecordUpdateCheck updates the last check time
func (c *Config) RecordUpdateCheck() {
	c.Update.LastCheck = time.Now()
}
