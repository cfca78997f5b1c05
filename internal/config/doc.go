// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// Every field is optional; a missing file means defaults only. In serve mode the
// file is watched and reloaded on change.
package config
