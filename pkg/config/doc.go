// Package config loads dashtabs settings. Sources are layered with koanf,
// later ones overriding earlier ones: embedded defaults, the user's config
// file (TOML or YAML), DASHTABS_* environment variables, then explicit
// overrides such as command-line flags.
package config
