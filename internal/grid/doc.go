// Package grid expands a parameter space into the records of an experiment
// grid: every element of the Cartesian product of the parameters' values.
package grid
