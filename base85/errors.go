package base85

import (
	"fmt"
	"unicode/utf8"

	"github.com/corpix/b85/errors"
)

type InvalidCharacterError struct {
	Char   rune
	Offset int
}

var (
	ErrInvalidCharacter = errors.New("invalid base85 character")
	ErrUnexpectedEOF    = errors.New("unexpected end of base85 input")
)

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base85 character %q at offset %d", e.Char, e.Offset)
}

// newInvalidCharacterError reports the character starting at src[offset],
// the error matches ErrInvalidCharacter with errors.Is.
func newInvalidCharacterError(src []byte, offset int) error {
	r, size := utf8.DecodeRune(src[offset:])
	if r == utf8.RuneError && size <= 1 {
		r = rune(src[offset])
	}
	return errors.Mark(
		&InvalidCharacterError{Char: r, Offset: offset},
		ErrInvalidCharacter,
	)
}
