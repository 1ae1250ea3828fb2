package typing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Longest string a one byte length prefix can frame.
const MaxStringLen = 255

type stringReader interface {
	io.ByteReader
	io.Reader
}

var ErrLength = errors.New("string too long")

func WriteString(b *bytes.Buffer, s string) error {
	if len(s) > MaxStringLen {
		return fmt.Errorf("%w: len=%d", ErrLength, len(s))
	}

	b.WriteByte(byte(len(s)))
	b.WriteString(s)

	return nil
}

func ReadString(r stringReader) (string, error) {
	n, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
