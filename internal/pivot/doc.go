// Package pivot reshapes a flat list of augmented records into a 2-D table.
//
// Rows are the distinct values of an index field, columns the distinct values
// of a column field, and each cell holds the value field of the one record
// with that (row, column) pair. Any of the three fields may name a parameter
// or a metric. A pair that occurs twice is an error; a pair that never occurs
// is an empty cell.
package pivot
