// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// encode.go — generic encode/decode/stream entry points. Each resolves the
// named codec through the registry's search chain and delegates to the
// descriptor; an unresolvable name fails immediately with a descriptive
// error.

package codecs

import (
	"fmt"
	"io"
)

// Encode converts s into the named encoding.
func (r *Registry) Encode(name, s string) ([]byte, error) {
	info, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return info.Encode(s)
}

// Decode converts b from the named encoding into a UTF-8 string.
func (r *Registry) Decode(name string, b []byte) (string, error) {
	info, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	return info.Decode(b)
}

// NewReader wraps rd so bytes in the named encoding read as UTF-8. Fails
// with ErrStreamUnsupported for codecs without a stream-reader factory.
func (r *Registry) NewReader(name string, rd io.Reader) (io.Reader, error) {
	info, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if info.NewReader == nil {
		return nil, fmt.Errorf("%w: %s", ErrStreamUnsupported, info.Name)
	}
	return info.NewReader(rd), nil
}

// NewWriter wraps w so UTF-8 text written to the result is emitted in the
// named encoding. Fails with ErrStreamUnsupported for codecs without a
// stream-writer factory.
func (r *Registry) NewWriter(name string, w io.Writer) (io.WriteCloser, error) {
	info, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if info.NewWriter == nil {
		return nil, fmt.Errorf("%w: %s", ErrStreamUnsupported, info.Name)
	}
	return info.NewWriter(w), nil
}

// Encode converts s into the named encoding using the default Registry.
func Encode(name, s string) ([]byte, error) { return Default().Encode(name, s) }

// Decode converts b from the named encoding using the default Registry.
func Decode(name string, b []byte) (string, error) { return Default().Decode(name, b) }

// NewReader wraps rd using the default Registry.
func NewReader(name string, rd io.Reader) (io.Reader, error) { return Default().NewReader(name, rd) }

// NewWriter wraps w using the default Registry.
func NewWriter(name string, w io.Writer) (io.WriteCloser, error) { return Default().NewWriter(name, w) }
