// Package extract scrapes named metrics out of per-record results files.
//
// For every record the results path is built from a path template and a fixed
// file name. A missing file marks every metric of that record FileMissing. In
// an existing file each metric takes the text following its first occurrence
// on the first line that mentions it, after the line's "#" comment and
// surrounding whitespace are removed. A metric no line mentions is NotFound.
//
// Metric names are matched as plain substrings, so a name that is contained in
// another metric's name can match the longer metric's line.
package extract
