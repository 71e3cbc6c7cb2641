// Package config defines the format-agnostic study model for the
// application, along with the Loader interface for reading studies from
// configuration files.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete loaders, such as for HCL and YAML, are provided in separate
// packages.
package config
