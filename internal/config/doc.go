// Package config owns the two configuration layers of clipcut: Prefs, the
// user-editable defaults loaded from an optional TOML file, and Config, the
// immutable per-invocation result of layering command-line overrides on top
// of those preferences.
//
// Precedence, highest wins: command-line flag, preferences-file value,
// hard-coded default. A Config is built exactly once per invocation and never
// mutated afterward.
package config
