package base85

import (
	"encoding/binary"
)

// DecodedLen returns the maximum length of the data decoded from n
// encoded bytes. It is exact when the input holds no whitespace.
func DecodedLen(n int) int {
	tail := n % blockSymbols
	if tail > 0 {
		tail--
	}
	return n/blockSymbols*blockBytes + tail
}

// Decode writes the data encoded in src into dst and returns the number of
// bytes written. Whitespace in src is skipped.
// dst must be at least DecodedLen(len(src)) bytes long.
//
// Decoding stops at the first failure: the returned error wraps either
// ErrInvalidCharacter (as *InvalidCharacterError) or ErrUnexpectedEOF and
// the returned count is 0.
func Decode(dst, src []byte) (int, error) {
	var (
		n       int
		v       uint32
		symbols int
	)

	for i, c := range src {
		if isSpace(c) {
			continue
		}
		d, ok := charDigit(c)
		if !ok {
			return 0, newInvalidCharacterError(src, i)
		}

		v = v*Radix + uint32(d)
		symbols++
		if symbols == blockSymbols {
			binary.BigEndian.PutUint32(dst[n:n+blockBytes], v)
			n += blockBytes
			v = 0
			symbols = 0
		}
	}

	switch symbols {
	case 0:
	case 1:
		return 0, ErrUnexpectedEOF
	default:
		for k := symbols; k < blockSymbols; k++ {
			v = v*Radix + PadDigit
		}
		var block [blockBytes]byte
		binary.BigEndian.PutUint32(block[:], v)
		n += copy(dst[n:], block[:symbols-1])
	}

	return n, nil
}

// DecodeString returns the bytes encoded by s.
func DecodeString(s string) ([]byte, error) {
	buf := make([]byte, DecodedLen(len(s)))
	n, err := Decode(buf, []byte(s))
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
