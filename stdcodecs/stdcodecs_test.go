package stdcodecs_test

import (
	"testing"

	"github.com/AndrewDonelson/codecs"
	_ "github.com/AndrewDonelson/codecs/stdcodecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, name, text string) {
	t.Helper()
	raw, err := codecs.Encode(name, text)
	require.NoError(t, err, "encode %s", name)
	back, err := codecs.Decode(name, raw)
	require.NoError(t, err, "decode %s", name)
	assert.Equal(t, text, back, "round trip %s", name)
}

func TestBuiltins_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"utf-8", "héllo wörld"},
		{"utf-16", "mixed ascii + ünïcode"},
		{"utf-16-le", "little"},
		{"utf-16-be", "big"},
		{"ascii", "plain ascii"},
		{"latin-1", "déjà vu"},
		{"cp437", "café"},
		{"cp1251", "Привет"},
		{"cp1252", "€100 – fünf"},
		{"koi8-r", "привет"},
		{"iso8859-15", "€uro"},
		{"mac-roman", "café"},
		{"shift_jis", "日本語"},
		{"euc-jp", "日本語"},
		{"iso2022-jp", "日本語"},
		{"euc-kr", "한국어"},
		{"gbk", "简体中文"},
		{"gb18030", "简体中文"},
		{"big5", "中文"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			roundTrip(t, tc.name, tc.text)
		})
	}
}

func TestBuiltins_AliasesShareDescriptor(t *testing.T) {
	canonical, err := codecs.Lookup("shift_jis")
	require.NoError(t, err)
	alias, err := codecs.Lookup("sjis")
	require.NoError(t, err)
	assert.Same(t, canonical, alias)
}

func TestBuiltins_DescriptorShape(t *testing.T) {
	info, err := codecs.Lookup("latin-1")
	require.NoError(t, err)
	assert.Equal(t, "latin_1", info.Name)
	assert.NotNil(t, info.Encode)
	assert.NotNil(t, info.Decode)
	assert.NotNil(t, info.NewEncoder)
	assert.NotNil(t, info.NewDecoder)
	assert.NotNil(t, info.NewWriter)
	assert.NotNil(t, info.NewReader)
}
