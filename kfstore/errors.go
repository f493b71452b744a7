package kfstore

import "errors"

// Sentinel errors returned by Store implementations.
var (
	// ErrNotFound indicates that the requested (section, variable) pair is
	// absent from the store.
	ErrNotFound = errors.New("kfstore: variable not found")

	// ErrType indicates that the requested variable exists but holds a
	// different kind than the read method asked for.
	ErrType = errors.New("kfstore: variable has wrong type")

	// ErrBadDump indicates that a JSON dump could not be decoded into a
	// section/variable map.
	ErrBadDump = errors.New("kfstore: malformed dump")
)
