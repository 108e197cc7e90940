// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public codecs API,
// covering name normalization, module loading, descriptor validation, and
// encode/decode failures.

package codecs

import "errors"

// Resolution errors
var (
	// ErrUnknownEncoding is returned when no codec module exists for a name.
	// The negative result is cached, so repeated lookups of a truly
	// nonexistent encoding cost one module-load attempt total.
	ErrUnknownEncoding = errors.New("codecs: unknown encoding")

	// ErrIncompatibleCodec is returned when a module loads but its registry
	// entry is missing or yields a malformed descriptor. This result is NOT
	// cached: a module fixed at runtime resolves on the next lookup.
	ErrIncompatibleCodec = errors.New("codecs: incompatible codec")

	// ErrBadName is returned when an encoding name given as raw bytes
	// contains bytes outside the ASCII range.
	ErrBadName = errors.New("codecs: invalid encoding name")
)

// Namespace errors
var (
	ErrModuleNotFound  = errors.New("codecs: codec module not found")
	ErrDuplicateModule = errors.New("codecs: codec module already registered")
	ErrInvalidModule   = errors.New("codecs: module must be non-nil with a qualified path")
)

// Codec errors
var (
	ErrEncodeFailed      = errors.New("codecs: failed to encode input")
	ErrDecodeFailed      = errors.New("codecs: failed to decode input")
	ErrStreamUnsupported = errors.New("codecs: codec has no stream support")
)
