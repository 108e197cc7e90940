package codecs_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/AndrewDonelson/codecs"
	_ "github.com/AndrewDonelson/codecs/stdcodecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end tests over the process-wide default registry with the built-in
// codecs registered.

func TestEncode_UTF8RoundTrip(t *testing.T) {
	raw, err := codecs.Encode("utf-8", "héllo, wörld")
	require.NoError(t, err)
	assert.Equal(t, []byte("héllo, wörld"), raw)

	back, err := codecs.Decode("UTF 8", raw)
	require.NoError(t, err)
	assert.Equal(t, "héllo, wörld", back)
}

func TestLookup_CaseAndPunctuationEquivalent(t *testing.T) {
	a, err := codecs.Lookup("utf-8")
	require.NoError(t, err)
	b, err := codecs.Lookup("Utf_8")
	require.NoError(t, err)
	c, err := codecs.Lookup("u8")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Same(t, a, c, "alias must resolve to the same descriptor")
}

func TestEncode_Latin1(t *testing.T) {
	raw, err := codecs.Encode("latin-1", "déjà")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x64, 0xE9, 0x6A, 0xE0}, raw)

	// The ISO spelling goes through the alias table to the same module.
	raw2, err := codecs.Encode("ISO-8859-1", "déjà")
	require.NoError(t, err)
	assert.Equal(t, raw, raw2)
}

func TestEncode_CP1252Euro(t *testing.T) {
	raw, err := codecs.Encode("windows-1252", "€")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, raw)
}

func TestEncode_UTF16BOM(t *testing.T) {
	raw, err := codecs.Encode("utf-16", "A")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE, 0x41, 0x00}, raw)
}

func TestEncode_ASCIIStrict(t *testing.T) {
	raw, err := codecs.Encode("ascii", "plain")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), raw)

	_, err = codecs.Encode("us-ascii", "café")
	assert.ErrorIs(t, err, codecs.ErrEncodeFailed)

	_, err = codecs.Decode("ascii", []byte{0x63, 0xE9})
	assert.ErrorIs(t, err, codecs.ErrDecodeFailed)
}

func TestEncode_UnknownEncoding(t *testing.T) {
	_, err := codecs.Encode("no-such-codec-xyz", "data")
	assert.ErrorIs(t, err, codecs.ErrUnknownEncoding)
	assert.Contains(t, err.Error(), "no-such-codec-xyz")
}

func TestNewWriter_UTF16LE(t *testing.T) {
	var buf bytes.Buffer
	w, err := codecs.NewWriter("utf-16-le", &buf)
	require.NoError(t, err)

	_, err = w.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, []byte{0x68, 0x00, 0x69, 0x00}, buf.Bytes())
}

func TestNewReader_ShiftJIS(t *testing.T) {
	raw, err := codecs.Encode("shift_jis", "こんにちは")
	require.NoError(t, err)

	rd, err := codecs.NewReader("sjis", bytes.NewReader(raw))
	require.NoError(t, err)
	got, err := io.ReadAll(rd)
	require.NoError(t, err)
	assert.Equal(t, "こんにちは", string(got))
}

func TestNewWriter_StreamUnsupported(t *testing.T) {
	// The strict ascii codec has no stream factories.
	_, err := codecs.NewWriter("ascii", &strings.Builder{})
	assert.ErrorIs(t, err, codecs.ErrStreamUnsupported)

	_, err = codecs.NewReader("ascii", strings.NewReader(""))
	assert.ErrorIs(t, err, codecs.ErrStreamUnsupported)
}
