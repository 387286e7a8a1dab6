package encoding

import (
	"strings"

	"github.com/corpix/b85/errors"
)

type (
	EncodeDecoder interface {
		Encode([]byte) ([]byte, error)
		Decode([]byte) ([]byte, error)
	}
	EncodeDecoderType string

	Config struct {
		Type string      `yaml:"type"`
		Wrap int         `yaml:"wrap"`
		Zstd *ZstdConfig `yaml:"zstd,omitempty"`
	}
)

const (
	EncodeDecoderTypeRaw    EncodeDecoderType = "raw"
	EncodeDecoderTypeBase85 EncodeDecoderType = "base85"
	EncodeDecoderTypeZstd   EncodeDecoderType = "zstd"
)

func (c *Config) Default() {
	if c.Type == "" {
		c.Type = string(EncodeDecoderTypeBase85)
	}
	if c.Zstd == nil {
		c.Zstd = &ZstdConfig{}
	}
	c.Zstd.Default()
}

func (c *Config) Validate() error {
	switch EncodeDecoderType(strings.ToLower(c.Type)) {
	case
		EncodeDecoderTypeRaw,
		EncodeDecoderTypeBase85,
		EncodeDecoderTypeZstd:
	default:
		return errors.Errorf("unsupported encode decoder %q", c.Type)
	}
	if c.Wrap < 0 {
		return errors.Errorf("wrap width should be positive or zero, got %d", c.Wrap)
	}
	if c.Zstd != nil {
		return c.Zstd.Validate()
	}
	return nil
}

//

// New constructs the EncodeDecoder described by c.
// c is expected to be defaulted and valid.
func New(c *Config) (EncodeDecoder, error) {
	switch EncodeDecoderType(strings.ToLower(c.Type)) {
	case EncodeDecoderTypeRaw:
		return NewEncodeDecoderRaw(), nil
	case EncodeDecoderTypeBase85:
		return NewEncodeDecoderBase85(c.Wrap), nil
	case EncodeDecoderTypeZstd:
		return NewEncodeDecoderZstd(c.Zstd, NewEncodeDecoderBase85(c.Wrap))
	default:
		return nil, errors.Errorf("unsupported encode decoder %q", c.Type)
	}
}
