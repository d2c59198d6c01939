// Package config loads, validates, and normalizes scriptcast configuration.
//
// Configuration lives in a TOML file, by default at
// ~/.config/scriptcast/config.toml with a project-local scriptcast.toml
// fallback. Every path field is expanded (~ and relative forms) during load,
// so consumers always see absolute paths.
package config
