// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Value, the result of looking up a metric, and the
// AugmentedRecord that carries those results next to their Record.
package model

import "fmt"

// Kind tags a Value.
type Kind int

const (
	// Found means the metric line was present; Text holds the value.
	Found Kind = iota + 1
	// NotFound means the results file exists but no line mentions the metric.
	NotFound
	// FileMissing means the results file does not exist.
	FileMissing
)

// Placeholder texts used when a Value has to be rendered as a plain string.
const (
	FileMissingText = "NAN"
	NotFoundText    = "EMPTY"
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case FileMissing:
		return "file_missing"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "found":
		return Found, nil
	case "not_found":
		return NotFound, nil
	case "file_missing":
		return FileMissing, nil
	}
	return 0, fmt.Errorf("unknown value kind %q", s)
}

// Value is the outcome of a metric lookup. The zero Value is invalid.
type Value struct {
	Kind Kind
	Text string
}

// FoundValue wraps an extracted metric text.
func FoundValue(text string) Value {
	return Value{Kind: Found, Text: text}
}

// NotFoundValue is the value of a metric absent from an existing file.
func NotFoundValue() Value {
	return Value{Kind: NotFound}
}

// FileMissingValue is the value of every metric of a record whose results
// file does not exist.
func FileMissingValue() Value {
	return Value{Kind: FileMissing}
}

// IsFound reports whether v holds extracted text.
func (v Value) IsFound() bool {
	return v.Kind == Found
}

// String renders the value, using the placeholder texts for the missing kinds.
func (v Value) String() string {
	switch v.Kind {
	case Found:
		return v.Text
	case NotFound:
		return NotFoundText
	case FileMissing:
		return FileMissingText
	default:
		return ""
	}
}

// PathField is the reserved field name under which flat outputs carry the
// results path of a record.
const PathField = "path"

// AugmentedRecord is a Record extended with one Value per requested metric.
type AugmentedRecord struct {
	Record  Record
	Metrics map[string]Value
	// Path is the results file the metrics were read from (or would have been).
	Path string
}

// Field resolves name against the record's parameters first and its metrics
// second. Parameter values are reported as Found.
func (a AugmentedRecord) Field(name string) (Value, bool) {
	if v, ok := a.Record.Get(name); ok {
		return FoundValue(v), true
	}
	v, ok := a.Metrics[name]
	return v, ok
}

// Len returns the number of parameter fields plus metric fields.
func (a AugmentedRecord) Len() int {
	return a.Record.Len() + len(a.Metrics)
}
