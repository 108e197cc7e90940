// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// info.go — the CodecInfo descriptor returned by a resolved codec module,
// plus the schema validation the registry applies before caching one.

package codecs

import (
	"fmt"
	"io"

	"golang.org/x/text/transform"
)

// CodecInfo is the validated descriptor of one encoding. Encode and Decode
// are required; the incremental and stream members are optional and may be
// nil for codecs that only support whole-value conversion.
type CodecInfo struct {
	// Name labels the codec in diagnostics. When a module's registry entry
	// leaves it empty, the registry fills it with the module's qualified
	// path.
	Name string

	// Encode converts a UTF-8 string into the target encoding.
	Encode func(s string) ([]byte, error)

	// Decode converts encoded bytes back into a UTF-8 string.
	Decode func(b []byte) (string, error)

	// NewEncoder returns a fresh incremental encoder. Optional.
	NewEncoder func() transform.Transformer

	// NewDecoder returns a fresh incremental decoder. Optional.
	NewDecoder func() transform.Transformer

	// NewWriter wraps w so UTF-8 text written to the result is emitted in
	// the target encoding. Optional.
	NewWriter func(w io.Writer) io.WriteCloser

	// NewReader wraps r so encoded bytes read from it surface as UTF-8.
	// Optional.
	NewReader func(r io.Reader) io.Reader
}

// validate checks the descriptor against the registry schema and fills the
// diagnostic Name from the module path when the entry left it empty.
func (ci *CodecInfo) validate(modulePath string) error {
	if ci == nil {
		return fmt.Errorf("%w: module %s returned no codec info", ErrIncompatibleCodec, modulePath)
	}
	if ci.Encode == nil || ci.Decode == nil {
		return fmt.Errorf("%w: module %s failed to register: encode/decode not callable", ErrIncompatibleCodec, modulePath)
	}
	if ci.Name == "" {
		ci.Name = modulePath
	}
	return nil
}
