package encoding

import (
	"github.com/corpix/b85/base85"
	"github.com/corpix/b85/errors"
)

// EncodeDecoderBase85 is an RFC 1924 base85 EncodeDecoder.
// With Width > 0 the encoded text is broken into lines of Width symbols,
// the decoder skips line feeds so wrapped text decodes as is.
type EncodeDecoderBase85 struct {
	Width int
}

var _ EncodeDecoder = &EncodeDecoderBase85{}

//

func (e *EncodeDecoderBase85) Encode(buf []byte) ([]byte, error) {
	out := make([]byte, base85.EncodedLen(len(buf)))
	base85.Encode(out, buf)
	return Wrap(out, e.Width), nil
}

func (e *EncodeDecoderBase85) Decode(buf []byte) ([]byte, error) {
	out := make([]byte, base85.DecodedLen(len(buf)))
	n, err := base85.Decode(out, buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode base85")
	}
	return out[:n], nil
}

func NewEncodeDecoderBase85(width int) *EncodeDecoderBase85 {
	return &EncodeDecoderBase85{Width: width}
}

//

// Wrap breaks buf into lines of at most width bytes separated by '\n'.
// Zero or negative width returns buf unchanged.
func Wrap(buf []byte, width int) []byte {
	if width <= 0 || len(buf) <= width {
		return buf
	}

	out := make([]byte, 0, len(buf)+(len(buf)-1)/width)
	for len(buf) > width {
		out = append(out, buf[:width]...)
		out = append(out, '\n')
		buf = buf[width:]
	}
	return append(out, buf...)
}
