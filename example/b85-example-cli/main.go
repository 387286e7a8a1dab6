package main

import (
	"github.com/corpix/b85/cli"
	"github.com/corpix/b85/config"
	"github.com/corpix/b85/metrics"
)

var (
	version = "development"
	cfg     = &config.BaseConfig{}
)

func main() {
	cli.New(
		cli.WithName("b85-example-cli"),
		cli.WithUsage("RFC 1924 base85 encoder and decoder"),
		cli.WithVersion(version),
		cli.WithDescription("Example application encoding and decoding stdin with base85"),
		cli.WithConfigTools(
			cfg,
			config.YamlUnmarshaler,
			config.YamlMarshaler,
		),
		cli.WithLogTools(cfg.LogConfig),
		cli.WithMetricsTools(metrics.Default),
		cli.WithCodecTools(cfg.EncodingConfig),
	).RunAndExitOnError()
}
