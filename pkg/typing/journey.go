package typing

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	JourneyOk byte = iota
	JourneyFailed
)

var ErrJourney = errors.New("journey request failed")

type JourneyResult struct {
	Legs  []float64
	Total float64
}

func JourneyRequestMarshal(b *bytes.Buffer, codes []string) error {
	if len(codes) > MaxStringLen {
		return fmt.Errorf("%w: %d codes", ErrLength, len(codes))
	}
	b.WriteByte(byte(len(codes)))
	for _, code := range codes {
		if err := WriteString(b, code); err != nil {
			return err
		}
	}
	return nil
}

func JourneyRequestUnmarshal(r *bytes.Reader) (codes []string, err error) {
	n, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	codes = make([]string, 0, n)
	for i := 0; i < int(n); i++ {
		code, err := ReadString(r)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func JourneyResultMarshal(b *bytes.Buffer, result JourneyResult) {
	b.WriteByte(JourneyOk)
	binary.Write(b, binary.LittleEndian, uint32(len(result.Legs)))
	binary.Write(b, binary.LittleEndian, result.Legs)
	binary.Write(b, binary.LittleEndian, result.Total)
}

// JourneyErrorMarshal encodes a failed request. Messages longer than a
// string frame allows are truncated on a rune boundary.
func JourneyErrorMarshal(b *bytes.Buffer, cause error) {
	msg := cause.Error()
	if len(msg) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	b.WriteByte(JourneyFailed)
	WriteString(b, msg)
}

// JourneyResultUnmarshal decodes a reply. A failed request comes back as an
// error wrapping ErrJourney with the remote message.
func JourneyResultUnmarshal(r *bytes.Reader) (result JourneyResult, err error) {
	status, err := r.ReadByte()
	if err != nil {
		return result, err
	}

	switch status {
	case JourneyOk:
	case JourneyFailed:
		msg, err := ReadString(r)
		if err != nil {
			return result, err
		}
		return result, fmt.Errorf("%w: %s", ErrJourney, msg)
	default:
		return result, fmt.Errorf("%w: unknown status %d", ErrJourney, status)
	}

	var n uint32
	if err = binary.Read(r, binary.LittleEndian, &n); err != nil {
		return result, err
	}
	if int64(n)*8 > int64(r.Len()) {
		return result, io.ErrUnexpectedEOF
	}
	result.Legs = make([]float64, n)
	if err = binary.Read(r, binary.LittleEndian, result.Legs); err == nil {
		err = binary.Read(r, binary.LittleEndian, &result.Total)
	}
	return result, err
}
