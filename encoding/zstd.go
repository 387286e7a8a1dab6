package encoding

import (
	"bytes"

	"github.com/klauspost/compress/zstd"

	"github.com/corpix/b85/errors"
)

type (
	ZstdConfig struct {
		Level     string `yaml:"level"`
		MaxMemory uint64 `yaml:"max-memory"`
	}

	// EncodeDecoderZstd compresses data before handing it to the wrapped
	// EncodeDecoder and decompresses after it on the way back.
	EncodeDecoderZstd struct {
		EncodeDecoder
		level     zstd.EncoderLevel
		maxMemory uint64
	}
)

// ZstdDefaultMaxMemory caps the decompressed size of a single Decode call.
const ZstdDefaultMaxMemory uint64 = 64 << 20

var _ EncodeDecoder = &EncodeDecoderZstd{}

func (c *ZstdConfig) Default() {
	if c.Level == "" {
		c.Level = zstd.SpeedDefault.String()
	}
	if c.MaxMemory == 0 {
		c.MaxMemory = ZstdDefaultMaxMemory
	}
}

func (c *ZstdConfig) Validate() error {
	ok, _ := zstd.EncoderLevelFromString(c.Level)
	if !ok {
		return errors.Errorf("unsupported zstd level %q", c.Level)
	}
	return nil
}

//

func (e *EncodeDecoderZstd) Encode(buf []byte) ([]byte, error) {
	w := bytes.NewBuffer(nil)
	enc, err := zstd.NewWriter(
		w,
		zstd.WithEncoderLevel(e.level),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, err
	}
	_, err = enc.Write(buf)
	if err != nil {
		enc.Close()
		return nil, err
	}
	err = enc.Close()
	if err != nil {
		return nil, err
	}
	return e.EncodeDecoder.Encode(w.Bytes())
}

func (e *EncodeDecoderZstd) Decode(buf []byte) ([]byte, error) {
	compressed, err := e.EncodeDecoder.Decode(buf)
	if err != nil {
		return nil, err
	}

	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(e.maxMemory),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create zstd decoder")
	}
	defer decoder.Close()

	out, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress zstd")
	}
	return out, nil
}

func NewEncodeDecoderZstd(c *ZstdConfig, next EncodeDecoder) (*EncodeDecoderZstd, error) {
	var (
		level     = zstd.SpeedDefault
		maxMemory = ZstdDefaultMaxMemory
	)
	if c != nil && c.Level != "" {
		var ok bool
		ok, level = zstd.EncoderLevelFromString(c.Level)
		if !ok {
			return nil, errors.Errorf("unsupported zstd level %q", c.Level)
		}
	}
	if c != nil && c.MaxMemory > 0 {
		maxMemory = c.MaxMemory
	}
	return &EncodeDecoderZstd{
		EncodeDecoder: next,
		level:         level,
		maxMemory:     maxMemory,
	}, nil
}
