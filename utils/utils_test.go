package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestCString(t *testing.T) {
	t.Parallel()

	c := CString("Description\x00\x00rest")
	assert.Equal(t, "Description", c.String())
	assert.Equal(t, []byte("\x00rest"), c.Rest())
	assert.Equal(t, "Description", c.Decode(charmap.ISO8859_1))

	assert.Nil(t, CString("\x00abc").NullTerminateBytes())
	assert.Nil(t, CString("abc").Rest())
}

func TestLatin1RoundTrip(t *testing.T) {
	t.Parallel()

	b, err := EncodeLatin1("café")
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xe9}, b)
	assert.Equal(t, "café", Latin1(b))

	_, err = EncodeLatin1("日本")
	require.Error(t, err)
}

func TestUint32BE(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteUint32BE(&buf, 0x0102abcd))
	assert.Equal(t, []byte{0x01, 0x02, 0xab, 0xcd}, buf.Bytes())

	v, err := ReadUint32BE(&buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0102abcd), v)

	_, err = ReadByte(&buf)
	require.Error(t, err)
}
