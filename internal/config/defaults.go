package config

import "path/filepath"

// DefaultConfigDir is where FinLens keeps its database and config file,
// relative to the user's home directory.
const DefaultConfigDir = "~/.config/finlens"

// DefaultDBPath returns the expanded default database location.
func DefaultDBPath() string {
	return filepath.Join(ExpandPath(DefaultConfigDir), "finlens.db")
}
