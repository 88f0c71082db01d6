// Package config provides the runtime configuration for passmeter: defaults,
// validation, XDG directories and the optional .passmeter YAML file that
// extends the reference tables and configures the HTTP server.
package config
