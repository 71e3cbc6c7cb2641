// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model defines the in-memory data of a statgrid run: the parameter
// space a study sweeps over, the records produced from it, and the metric
// values scraped for each record.
//
// # Core Concepts
//
//   - Space: an ordered list of Parameters, each a name with its candidate
//     values. Values are strings; loaders coerce numbers before they get here.
//
//   - Record: one point of the experiment grid, a single value per parameter.
//     Records are immutable. Adding a field produces a new Record.
//
//   - Value: the outcome of looking up one metric for one record. It is a
//     tagged value (Found, NotFound, FileMissing) so downstream code never has
//     to compare against placeholder text.
//
//   - AugmentedRecord: a Record plus exactly one Value per requested metric.
package model
