// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// mbcs_windows.go — Windows code-page strategy: "mbcs" resolves through the
// active ANSI code page reported by GetACP.

//go:build windows

package codecs

import "golang.org/x/sys/windows"

// activeCodePage is the platform default for Config.CodePage.
var activeCodePage CodePageFunc = func() (uint32, error) {
	return windows.GetACP(), nil
}
