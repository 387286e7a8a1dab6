package base85

const (
	Alphabet = "0123456789" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"!#$%&()*+-;<=>?@^_`{|}~"

	// Radix is the number of symbols in Alphabet.
	Radix = 85

	// PadDigit fills the missing trailing symbols of a short group while decoding.
	PadDigit = Radix - 1
)

const (
	digitSkip    byte = 0xfe
	digitInvalid byte = 0xff
)

var decodeTable = func() [256]byte {
	var t [256]byte
	for n := range t {
		t[n] = digitInvalid
	}
	for n := 0; n < len(Alphabet); n++ {
		t[Alphabet[n]] = byte(n)
	}
	// space, LF, VT and CR are skipped
	for _, c := range []byte{' ', '\n', '\v', '\r'} {
		t[c] = digitSkip
	}
	return t
}()

// digitChar maps a digit in [0, Radix) to its symbol.
func digitChar(d uint32) byte {
	return Alphabet[d]
}

// charDigit maps a symbol back to its digit, ok is false for anything
// outside of Alphabet (whitespace included).
func charDigit(c byte) (byte, bool) {
	d := decodeTable[c]
	if d >= byte(Radix) {
		return 0, false
	}
	return d, true
}

func isSpace(c byte) bool {
	return decodeTable[c] == digitSkip
}
