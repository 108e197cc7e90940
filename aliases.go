// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// aliases.go — the static alias table mapping normalized encoding names to
// canonical module names. Loaded once, read-only during resolution; modules
// may declare further aliases that the registry records at first load.

package codecs

// defaultAliases maps normalized alias → canonical module name. Keys and
// values are already in NormalizeEncoding form.
var defaultAliases = map[string]string{
	// ascii
	"646":              "ascii",
	"ansi_x3.4_1968":   "ascii",
	"ansi_x3_4_1968":   "ascii",
	"ansi_x3.4_1986":   "ascii",
	"cp367":            "ascii",
	"csascii":          "ascii",
	"ibm367":           "ascii",
	"iso646_us":        "ascii",
	"iso_646.irv_1991": "ascii",
	"iso_ir_6":         "ascii",
	"us":               "ascii",
	"us_ascii":         "ascii",

	// big5
	"big5_tw": "big5",
	"csbig5":  "big5",

	// cp437
	"437":      "cp437",
	"csibm437": "cp437",
	"ibm437":   "cp437",

	// cp1251
	"1251":         "cp1251",
	"windows_1251": "cp1251",

	// cp1252
	"1252":         "cp1252",
	"windows_1252": "cp1252",

	// euc_jp
	"eucjp": "euc_jp",
	"ujis":  "euc_jp",
	"u_jis": "euc_jp",

	// euc_kr
	"euckr":          "euc_kr",
	"korean":         "euc_kr",
	"ksc5601":        "euc_kr",
	"ks_c_5601":      "euc_kr",
	"ks_c_5601_1987": "euc_kr",
	"ksx1001":        "euc_kr",
	"ks_x_1001":      "euc_kr",

	// gb18030
	"gb18030_2000": "gb18030",

	// gbk
	"936":   "gbk",
	"cp936": "gbk",
	"ms936": "gbk",

	// iso2022_jp
	"csiso2022jp": "iso2022_jp",
	"iso2022jp":   "iso2022_jp",
	"iso_2022_jp": "iso2022_jp",

	// iso8859_15
	"iso_8859_15": "iso8859_15",
	"l9":          "iso8859_15",
	"latin9":      "iso8859_15",

	// koi8_r
	"cskoi8r": "koi8_r",

	// latin_1
	"8859":            "latin_1",
	"cp819":           "latin_1",
	"csisolatin1":     "latin_1",
	"ibm819":          "latin_1",
	"iso8859":         "latin_1",
	"iso8859_1":       "latin_1",
	"iso_8859_1":      "latin_1",
	"iso_8859_1_1987": "latin_1",
	"iso_ir_100":      "latin_1",
	"l1":              "latin_1",
	"latin":           "latin_1",
	"latin1":          "latin_1",

	// mac_roman
	"macintosh": "mac_roman",
	"macroman":  "mac_roman",

	// shift_jis
	"csshiftjis": "shift_jis",
	"shiftjis":   "shift_jis",
	"sjis":       "shift_jis",
	"s_jis":      "shift_jis",

	// utf_16
	"u16":   "utf_16",
	"utf16": "utf_16",

	// utf_16_be
	"unicodebigunmarked": "utf_16_be",
	"utf_16be":           "utf_16_be",

	// utf_16_le
	"unicodelittleunmarked": "utf_16_le",
	"utf_16le":              "utf_16_le",

	// utf_8
	"u8":      "utf_8",
	"utf":     "utf_8",
	"utf8":    "utf_8",
	"cp65001": "utf_8",
}

// Aliases returns a copy of the default alias table, for callers building a
// customized Config.Aliases.
func Aliases() map[string]string {
	m := make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		m[k] = v
	}
	return m
}
