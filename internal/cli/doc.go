// Package cli turns statgrid's command-line arguments into an app.Config.
// Usage errors surface as *ExitError carrying exit code 2; -h and a missing
// study path print usage and ask the caller to exit cleanly.
package cli
