package utils

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

type CString []byte

func (c CString) NullTerminateBytes() []byte {
	i := bytes.IndexByte(c, 0)
	if i == -1 {
		return c
	} else if i == 0 {
		return nil
	} else {
		return c[:i]
	}
}

// Rest returns the bytes following the terminator, or nil when there is none.
func (c CString) Rest() []byte {
	i := bytes.IndexByte(c, 0)
	if i == -1 {
		return nil
	}
	return c[i+1:]
}

func (c CString) String() string { return string(c.NullTerminateBytes()) }

func (c CString) Decode(encoding *charmap.Charmap) string {
	buf, err := encoding.NewDecoder().Bytes(c.NullTerminateBytes())
	if err != nil {
		return c.String()
	}
	return string(buf)
}

// Latin1 decodes PNG text chunk payloads, which are ISO 8859-1 by definition.
func Latin1(b []byte) string {
	buf, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(buf)
}

// EncodeLatin1 fails on runes outside ISO 8859-1.
func EncodeLatin1(s string) ([]byte, error) {
	return charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
}
