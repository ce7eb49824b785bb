// Package config loads keepspec's own settings: output defaults, the
// rule file search list and the options applied before every rule file.
//
// Sources are layered with koanf, later ones winning:
//
//  1. the embedded defaults.toml
//  2. $XDG_CONFIG_HOME/keepspec/config.toml, or the file given explicitly
//  3. KEEPSPEC_* environment variables (KEEPSPEC_OUTPUT_FORMAT sets output.format)
package config
