// Package config loads filesort settings.
//
// Layers are merged with koanf, later layers winning:
//
//  1. embedded/defaults.toml
//  2. the user config file (TOML or YAML)
//  3. FILESORT_* environment variables
//  4. command line flags that were explicitly set
//
// Sorting rules are not configuration; see pkg/rules for rules files.
package config
