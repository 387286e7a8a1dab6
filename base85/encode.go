package base85

import (
	"encoding/binary"
)

const (
	blockBytes   = 4
	blockSymbols = 5
)

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	tail := n % blockBytes
	if tail > 0 {
		tail++
	}
	return n/blockBytes*blockSymbols + tail
}

// Encode writes the encoding of src into dst and returns the number of
// bytes written, which is always EncodedLen(len(src)).
// dst must be at least EncodedLen(len(src)) bytes long.
func Encode(dst, src []byte) int {
	var n int

	for len(src) >= blockBytes {
		encodeBlock(dst[n:n+blockSymbols], binary.BigEndian.Uint32(src))
		src = src[blockBytes:]
		n += blockSymbols
	}

	if len(src) > 0 {
		var (
			block  [blockBytes]byte
			digits [blockSymbols]byte
		)
		copy(block[:], src)
		encodeBlock(digits[:], binary.BigEndian.Uint32(block[:]))
		n += copy(dst[n:], digits[:len(src)+1])
	}

	return n
}

// EncodeToString returns the encoding of src.
func EncodeToString(src []byte) string {
	buf := make([]byte, EncodedLen(len(src)))
	Encode(buf, src)
	return string(buf)
}

func encodeBlock(dst []byte, v uint32) {
	for i := blockSymbols - 1; i >= 0; i-- {
		dst[i] = digitChar(v % Radix)
		v /= Radix
	}
}
