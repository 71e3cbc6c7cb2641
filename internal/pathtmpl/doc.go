// Package pathtmpl resolves a record into a directory path using a template
// with named placeholders, e.g. "${bench}_${matrix}/${prefetcher}_DG${degree}".
//
// Templates use HCL template syntax. Every record field is exposed as a
// string variable, and a small set of string functions (lower, upper, format,
// replace, trimspace) is available inside interpolations. Referencing a name
// that is not a field of the record is an error.
package pathtmpl
