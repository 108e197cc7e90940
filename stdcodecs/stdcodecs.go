// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// stdcodecs.go — the built-in codec modules, backed by golang.org/x/text
// encodings and registered into codecs.DefaultNamespace on import.

// Package stdcodecs registers the built-in encodings with the default codec
// namespace. Import it for side effect:
//
//	_ "github.com/AndrewDonelson/codecs/stdcodecs"
package stdcodecs

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/AndrewDonelson/codecs"
)

func init() {
	builtins := []*codecs.Module{
		module("utf_8", unicode.UTF8, "u8", "utf", "utf8", "cp65001"),
		module("utf_16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), "u16", "utf16"),
		module("utf_16_le", unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), "utf_16le", "unicodelittleunmarked"),
		module("utf_16_be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), "utf_16be", "unicodebigunmarked"),
		asciiModule(),
		module("latin_1", charmap.ISO8859_1, "iso8859_1", "iso_8859_1", "8859", "cp819", "latin", "latin1", "l1"),
		module("cp437", charmap.CodePage437, "437", "ibm437"),
		module("cp1251", charmap.Windows1251, "windows_1251", "1251"),
		module("cp1252", charmap.Windows1252, "windows_1252", "1252"),
		module("koi8_r", charmap.KOI8R, "cskoi8r"),
		module("iso8859_15", charmap.ISO8859_15, "iso_8859_15", "latin9", "l9"),
		module("mac_roman", charmap.Macintosh, "macintosh", "macroman"),
		module("shift_jis", japanese.ShiftJIS, "sjis", "shiftjis", "csshiftjis"),
		module("euc_jp", japanese.EUCJP, "eucjp", "ujis"),
		module("iso2022_jp", japanese.ISO2022JP, "iso_2022_jp", "iso2022jp"),
		module("euc_kr", korean.EUCKR, "euckr", "korean", "ksc5601"),
		module("gbk", simplifiedchinese.GBK, "936", "cp936", "ms936"),
		module("gb18030", simplifiedchinese.GB18030, "gb18030_2000"),
		module("big5", traditionalchinese.Big5, "big5_tw", "csbig5"),
	}
	for _, m := range builtins {
		if err := codecs.DefaultNamespace.Register(m); err != nil {
			panic(err)
		}
	}
}

// module builds a codec module from an x/text Encoding. The registry entry
// is a factory: the descriptor is materialized on first resolution, not at
// import.
func module(name string, e encoding.Encoding, aliases ...string) *codecs.Module {
	return &codecs.Module{
		Path:    codecs.ModulePrefix + name,
		Aliases: aliases,
		RegEntry: func() (*codecs.CodecInfo, error) {
			return &codecs.CodecInfo{
				Name: name,
				Encode: func(s string) ([]byte, error) {
					b, err := e.NewEncoder().Bytes([]byte(s))
					if err != nil {
						return nil, fmt.Errorf("%w: %s: %v", codecs.ErrEncodeFailed, name, err)
					}
					return b, nil
				},
				Decode: func(b []byte) (string, error) {
					out, err := e.NewDecoder().Bytes(b)
					if err != nil {
						return "", fmt.Errorf("%w: %s: %v", codecs.ErrDecodeFailed, name, err)
					}
					return string(out), nil
				},
				NewEncoder: func() transform.Transformer { return e.NewEncoder() },
				NewDecoder: func() transform.Transformer { return e.NewDecoder() },
				NewWriter: func(w io.Writer) io.WriteCloser {
					return transform.NewWriter(w, e.NewEncoder())
				},
				NewReader: func(r io.Reader) io.Reader {
					return transform.NewReader(r, e.NewDecoder())
				},
			}, nil
		},
	}
}

// asciiModule is the strict 7-bit codec. x/text has no pure US-ASCII
// encoding, so this one is hand-built: any byte or rune >= 0x80 is an error
// rather than a substitution.
func asciiModule() *codecs.Module {
	return &codecs.Module{
		Path:    codecs.ModulePrefix + "ascii",
		Aliases: []string{"646", "us_ascii", "us", "ansi_x3.4_1968"},
		RegEntry: func() (*codecs.CodecInfo, error) {
			return &codecs.CodecInfo{
				Name: "ascii",
				Encode: func(s string) ([]byte, error) {
					for i := 0; i < len(s); i++ {
						if s[i] >= utf8.RuneSelf {
							return nil, fmt.Errorf("%w: ascii: character at byte %d not in range(128)", codecs.ErrEncodeFailed, i)
						}
					}
					return []byte(s), nil
				},
				Decode: func(b []byte) (string, error) {
					for i := 0; i < len(b); i++ {
						if b[i] >= utf8.RuneSelf {
							return "", fmt.Errorf("%w: ascii: byte 0x%02x at %d not in range(128)", codecs.ErrDecodeFailed, b[i], i)
						}
					}
					return string(b), nil
				},
			}, nil
		},
	}
}
