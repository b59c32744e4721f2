// Package config sources runtime configuration from the environment.
//
// All values pass through strict ${VAR} expansion before use, so a value
// may refer to another environment variable and a missing reference is a
// startup error rather than a silently empty string.
package config
