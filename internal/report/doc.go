// Package report renders pivot tables for people and for other tools.
//
// Supported formats are an aligned text table, CSV, a Markdown table and
// newline-delimited JSON (one object per table). A (row, column) pair that no
// record produced prints as NaN; missing-data values keep their placeholder
// text, so NaN, NAN and EMPTY can be told apart in the output.
package report
