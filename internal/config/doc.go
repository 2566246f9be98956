// Package config handles YAML configuration loading with environment
// variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. The config file is optional: Default() yields a working
// configuration pointing at the collector's conventional data layout.
package config
