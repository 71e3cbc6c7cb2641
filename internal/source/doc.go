// Package source defines where results files are read from. A Source opens a
// slash-separated results path and reports a missing file with an error
// matching fs.ErrNotExist, which callers treat as data rather than failure.
package source
