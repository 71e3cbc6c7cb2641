// Package registry provides the central "glue" for the module system.
//
// The Registry stores mappings between the kind names used in study files
// (e.g. the "s3" in `source "s3" { ... }`) and the compiled Go factories
// that build the matching Source or Exporter. Modules register themselves at
// startup, and the loaded studies are validated against the registry before
// anything runs, so a typo in a kind fails fast.
package registry
