// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// mbcs_other.go — non-Windows platforms have no ANSI code page, so no
// "mbcs" fallback is registered unless Config.CodePage injects one.

//go:build !windows

package codecs

// activeCodePage is nil off Windows: NewRegistry registers no code-page
// fallback and "mbcs" fails like any unknown name.
var activeCodePage CodePageFunc
