package config

import (
	"github.com/corpix/revip"

	"github.com/corpix/b85/encoding"
	"github.com/corpix/b85/log"
)

type (
	Config            = revip.Config
	Container         = revip.Container
	Defaultable       = revip.Defaultable
	Marshaler         = revip.Marshaler
	SourceOption      = revip.SourceOption
	PostprocessOption = revip.PostprocessOption
	Unmarshaler       = revip.Unmarshaler
	Validatable       = revip.Validatable
	Expandable        = revip.Expandable
	ErrMarshal        = revip.ErrMarshal
	ErrUnmarshal      = revip.ErrUnmarshal
)

//

// BaseConfig holds the sections every codec application shares.
type BaseConfig struct {
	Log      *log.Config      `yaml:"log"`
	Encoding *encoding.Config `yaml:"encoding"`
}

func (c *BaseConfig) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
	c.Log.Default()

	if c.Encoding == nil {
		c.Encoding = &encoding.Config{}
	}
	c.Encoding.Default()
}

func (c *BaseConfig) Validate() error {
	err := c.Log.Validate()
	if err != nil {
		return err
	}
	return c.Encoding.Validate()
}

func (c *BaseConfig) LogConfig() *log.Config           { return c.Log }
func (c *BaseConfig) EncodingConfig() *encoding.Config { return c.Encoding }

//

var (
	FromFile       = revip.FromFile
	FromReader     = revip.FromReader
	Load           = revip.Load
	New            = revip.New
	Postprocess    = revip.Postprocess
	ToWriter       = revip.ToWriter
	WithDefaults   = revip.WithDefaults
	WithExpansion  = revip.WithExpansion
	WithValidation = revip.WithValidation

	JsonMarshaler   = revip.JsonMarshaler
	JsonUnmarshaler = revip.JsonUnmarshaler
	YamlMarshaler   = revip.YamlMarshaler
	YamlUnmarshaler = revip.YamlUnmarshaler
)
