// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// normalize.go — canonical encoding-name normalization shared by the
// registry, the alias table, and the built-in codec modules.

package codecs

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// modSeparator separates segments of a qualified module path. Normalization
// retains it; candidate filtering in the resolver rejects names containing it
// so a lookup can never traverse into submodules.
const modSeparator = "."

// NormalizeEncoding returns the canonical form of an encoding name.
//
// Alphanumeric characters and the module-path separator are retained, with
// ASCII letters folded to lower case. Every run of other characters collapses
// into a single underscore, so "UTF-8", "utf_8" and "utf 8" all normalize to
// "utf_8". No underscore is emitted before the first retained character or
// after the last one; a name consisting only of separator characters
// normalizes to a single underscore.
//
// Names should be ASCII-only. Non-ASCII alphanumerics are retained unfolded;
// they work, but no codec module will ever be registered under them.
//
// NormalizeEncoding is idempotent: applying it to its own output returns the
// same string.
func NormalizeEncoding(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pending := false
	for _, r := range name {
		if r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			if 'A' <= r && r <= 'Z' {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
			pending = false
			continue
		}
		pending = true
	}
	if b.Len() == 0 && pending {
		return "_"
	}
	return b.String()
}

// NormalizeEncodingBytes decodes a raw encoding name using the restricted
// ASCII charset and normalizes it. Bytes outside that set fail with
// ErrBadName.
func NormalizeEncodingBytes(name []byte) (string, error) {
	for i := 0; i < len(name); i++ {
		if name[i] >= utf8.RuneSelf {
			return "", fmt.Errorf("%w: non-ascii byte 0x%02x at offset %d", ErrBadName, name[i], i)
		}
	}
	return NormalizeEncoding(string(name)), nil
}
