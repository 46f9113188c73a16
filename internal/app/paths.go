package app

import (
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem locations lenz reads and writes.
// All fields are pre-computed strings.
type Paths struct {
	ConfigDir  string // $XDG_CONFIG_HOME/lenz/
	ConfigFile string // $XDG_CONFIG_HOME/lenz/config.yaml

	StateDir string // $XDG_STATE_HOME/lenz/
	LogFile  string // $XDG_STATE_HOME/lenz/lenz.log

	envConfig string // $LENZ_CONFIG
}

// NewPaths resolves every path from the given environment lookup and home
// directory, following the XDG base directory layout.
func NewPaths(getenv func(string) string, home string) *Paths {
	configHome := getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	stateHome := getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	configDir := filepath.Join(configHome, "lenz")
	stateDir := filepath.Join(stateHome, "lenz")
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),

		StateDir: stateDir,
		LogFile:  filepath.Join(stateDir, "lenz.log"),

		envConfig: getenv("LENZ_CONFIG"),
	}
}

// DefaultPaths resolves paths for the current user.
func DefaultPaths() *Paths {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback - should rarely happen
		home = os.TempDir()
	}
	return NewPaths(os.Getenv, home)
}

// ResolveConfig picks the config file: the --config flag, then $LENZ_CONFIG,
// then the default location. Only an explicitly named file is required to exist.
func (p *Paths) ResolveConfig(flag string) (path string, required bool) {
	if flag != "" {
		return flag, true
	}
	if p.envConfig != "" {
		return p.envConfig, true
	}
	return p.ConfigFile, false
}

// EnsureDirs creates the state directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.StateDir, 0755)
}
