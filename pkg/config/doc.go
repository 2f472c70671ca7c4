// Package config handles configuration management for gestures.
// It layers the embedded defaults, the user's TOML file and GESTURES_*
// environment variables with koanf, then decodes the result into Config.
package config
