package cli

import (
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/corpix/b85/config"
	"github.com/corpix/b85/encoding"
	"github.com/corpix/b85/log"
	"github.com/corpix/b85/metrics"
)

type (
	BoolFlag        = cli.BoolFlag
	Command         = cli.Command
	Commands        = []*cli.Command
	Context         = cli.Context
	Flag            = cli.Flag
	Flags           = []Flag
	IntFlag         = cli.IntFlag
	StringFlag      = cli.StringFlag
	StringSliceFlag = cli.StringSliceFlag

	App        = cli.App
	BeforeFunc = cli.BeforeFunc
	AfterFunc  = cli.AfterFunc
	ActionFunc = cli.ActionFunc
	Action     = func(*Context) error

	Config          = config.Config
	ConfigContainer = config.Container

	Cli struct {
		*App
		Config *ConfigContainer
	}

	Option func(*Cli)
)

//

func WithComposition(options ...Option) Option {
	return func(c *Cli) {
		for _, option := range options {
			option(c)
		}
	}
}

//

func WithName(name string) Option {
	return func(c *Cli) {
		c.Name = name
	}
}

func WithDescription(desc string) Option {
	return func(c *Cli) {
		c.Description = desc
	}
}

func WithUsage(usage string) Option {
	return func(c *Cli) {
		c.Usage = usage
	}
}

func WithVersion(version string) Option {
	return func(c *Cli) {
		c.Version = version
	}
}

func WithConfig(cfg Config) Option {
	return func(c *Cli) {
		c.Config = config.New(cfg)
	}
}

//

func WithFlags(flags Flags) Option {
	return func(c *Cli) {
		c.Flags = append(c.Flags, flags...)
	}
}

func WithCommands(commands Commands) Option {
	return func(c *Cli) {
		c.Commands = append(c.Commands, commands...)
	}
}

//

func ActionChain(current Action, next Action) Action {
	if current != nil {
		return func(ctx *Context) error {
			err := current(ctx)
			if err != nil {
				return err
			}
			return next(ctx)
		}
	}
	return next
}

func WithBefore(fn BeforeFunc) Option {
	return func(c *Cli) {
		c.Before = ActionChain(c.Before, fn)
	}
}
func WithAfter(fn AfterFunc) Option {
	return func(c *Cli) {
		c.After = ActionChain(c.After, fn)
	}
}

//

// ConfigFromContext loads cfg from the files named by the config flag.
// The default path is skipped when it does not exist, explicitly passed
// paths must exist.
func ConfigFromContext(ctx *Context, cfg Config, unmarshaler config.Unmarshaler) error {
	var (
		paths   = ctx.StringSlice("config")
		sources = make([]config.SourceOption, 0, len(paths))
	)

	for _, path := range paths {
		if !ctx.IsSet("config") {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				continue
			}
		}
		sources = append(sources, config.FromFile(path, unmarshaler))
	}

	_, err := config.Load(cfg, sources...)
	if err != nil {
		return err
	}
	return nil
}

func WithConfigTools(cfg Config, unmarshaler config.Unmarshaler, marshaler config.Marshaler) Option {
	return WithComposition(
		WithConfig(cfg),
		WithBefore(func(ctx *Context) error {
			err := ConfigFromContext(ctx, cfg, unmarshaler)
			if err != nil {
				return err
			}

			return config.Postprocess(
				cfg,
				config.WithDefaults(),
				config.WithExpansion(),
				config.WithValidation(),
			)
		}),
		func(c *Cli) {
			c.Flags = append(c.Flags, &StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to application configuration file",
				Value:   cli.NewStringSlice("config.yml"),
			})

			commands := Commands{}

			if _, ok := c.Config.Unwrap().(config.Defaultable); ok {
				commands = append(commands, &Command{
					Name:    "show-default",
					Aliases: []string{"sd"},
					Usage:   "Show default configuration",
					Action: func(ctx *Context) error {
						defaults := c.Config.EmptyClone()
						err := config.Postprocess(
							defaults,
							config.WithDefaults(),
						)
						if err != nil {
							return err
						}
						return config.ToWriter(ctx.App.Writer, marshaler)(defaults)
					},
				})
			}

			if _, ok := c.Config.Unwrap().(config.Validatable); ok {
				commands = append(commands, &Command{
					Name:    "validate",
					Aliases: []string{"v"},
					Usage:   "Validate configuration and exit",
					Action: func(ctx *Context) error {
						fmt.Fprintln(ctx.App.Writer, "configuration is valid")
						return nil
					},
				})
			}

			commands = append(commands, &Command{
				Name:    "show",
				Aliases: []string{"s"},
				Usage:   "Show current configuration",
				Action: func(ctx *Context) error {
					return config.ToWriter(ctx.App.Writer, marshaler)(cfg)
				},
			})

			c.Commands = append(c.Commands, &Command{
				Name:        "config",
				Usage:       "Configuration tools",
				Subcommands: commands,
			})
		},
	)
}

func WithLogTools(cfg func() *log.Config, options ...log.Option) Option {
	return WithComposition(
		WithFlags(Flags{
			&StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "logging level (trace, debug, info, warn, error, disabled)",
			},
		}),
		WithBefore(func(ctx *Context) error {
			level := ctx.String("log-level")
			if level == "" {
				level = cfg().Level
			}

			return log.Init(
				level,
				append([]log.Option{log.WithOutput(ctx.App.ErrWriter)}, options...)...,
			)
		}),
	)
}

func WithMetricsTools(gatherer metrics.Gatherer) Option {
	return WithComposition(
		WithFlags(Flags{
			&BoolFlag{
				Name:    "metrics",
				Aliases: []string{"m"},
				Usage:   "write collected metrics to stderr on exit",
			},
		}),
		WithAfter(func(ctx *Context) error {
			if !ctx.Bool("metrics") {
				return nil
			}

			return metrics.Write(ctx.App.ErrWriter, gatherer)
		}),
	)
}

//

func codecFromContext(ctx *Context, cfg *encoding.Config) (encoding.EncodeDecoder, error) {
	conf := *cfg
	if ctx.IsSet("type") {
		conf.Type = ctx.String("type")
	}
	if ctx.IsSet("wrap") {
		conf.Wrap = ctx.Int("wrap")
	}
	conf.Default()

	err := conf.Validate()
	if err != nil {
		return nil, err
	}

	ed, err := encoding.New(&conf)
	if err != nil {
		return nil, err
	}
	return encoding.NewEncodeDecoderMetrics(conf.Type, ed), nil
}

func codecAction(cfg func() *encoding.Config, operation string) ActionFunc {
	return func(ctx *Context) error {
		ed, err := codecFromContext(ctx, cfg())
		if err != nil {
			return err
		}

		in, err := io.ReadAll(ctx.App.Reader)
		if err != nil {
			return err
		}

		var out []byte
		switch operation {
		case "encode":
			out, err = ed.Encode(in)
		case "decode":
			out, err = ed.Decode(in)
		}
		if err != nil {
			log.Error().
				Err(err).
				Str("operation", operation).
				Int("read", len(in)).
				Msg("codec failed")
			return err
		}

		_, err = ctx.App.Writer.Write(out)
		if err != nil {
			return err
		}

		log.Debug().
			Str("operation", operation).
			Int("read", len(in)).
			Int("written", len(out)).
			Msg("codec done")

		return nil
	}
}

func WithCodecTools(cfg func() *encoding.Config) Option {
	typeFlag := func() Flag {
		return &StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "encode decoder type (raw, base85, zstd)",
		}
	}

	return WithCommands(Commands{
		&Command{
			Name:    "encode",
			Aliases: []string{"e"},
			Usage:   "Encode stdin to stdout",
			Flags: Flags{
				typeFlag(),
				&IntFlag{
					Name:    "wrap",
					Aliases: []string{"w"},
					Usage:   "wrap encoded lines after this many symbols, 0 disables wrapping",
				},
			},
			Action: codecAction(cfg, "encode"),
		},
		&Command{
			Name:    "decode",
			Aliases: []string{"d"},
			Usage:   "Decode stdin to stdout",
			Flags:   Flags{typeFlag()},
			Action:  codecAction(cfg, "decode"),
		},
	})
}

func New(options ...Option) *Cli {
	c := &Cli{
		App: &App{},
	}

	for _, option := range options {
		option(c)
	}

	return c
}
