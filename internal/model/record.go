// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Parameter, Space and Record.
package model

// Parameter is a named list of candidate values.
type Parameter struct {
	Name   string
	Values []string
}

// Space is an ordered parameter space. The order only affects the iteration
// order of generated records, never their content.
type Space []Parameter

// Names returns the parameter names in declaration order.
func (s Space) Names() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}

// Record is one combination of parameter values. The zero Record is empty and
// ready to use. A Record is never modified after construction.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord builds a record from alternating name, value pairs. It panics on
// an odd number of arguments.
func NewRecord(pairs ...string) Record {
	if len(pairs)%2 != 0 {
		panic("model: NewRecord requires name/value pairs")
	}
	r := Record{}
	for i := 0; i < len(pairs); i += 2 {
		r = r.With(pairs[i], pairs[i+1])
	}
	return r
}

// With returns a copy of r with name set to value. An existing field keeps its
// position.
func (r Record) With(name, value string) Record {
	keys := r.keys
	if _, exists := r.values[name]; !exists {
		keys = make([]string, len(r.keys), len(r.keys)+1)
		copy(keys, r.keys)
		keys = append(keys, name)
	}

	values := make(map[string]string, len(r.values)+1)
	for k, v := range r.values {
		values[k] = v
	}
	values[name] = value

	return Record{keys: keys, values: values}
}

// Get returns the value of a field.
func (r Record) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Keys returns the field names in insertion order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Map returns a copy of the record's fields.
func (r Record) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
