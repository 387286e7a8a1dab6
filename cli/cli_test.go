package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/b85/base85"
	"github.com/corpix/b85/config"
	"github.com/corpix/b85/encoding"
	"github.com/corpix/b85/errors"
	"github.com/corpix/b85/log"
	"github.com/corpix/b85/metrics"
)

func newCodecCli(input string) (*Cli, *bytes.Buffer, *bytes.Buffer) {
	conf := &encoding.Config{}
	conf.Default()
	logConf := &log.Config{Level: "disabled"}

	c := New(
		WithName("b85-test"),
		WithLogTools(func() *log.Config { return logConf }),
		WithMetricsTools(metrics.Default),
		WithCodecTools(func() *encoding.Config { return conf }),
	)

	out := bytes.NewBuffer(nil)
	errOut := bytes.NewBuffer(nil)
	c.Reader = strings.NewReader(input)
	c.Writer = out
	c.ErrWriter = errOut

	return c, out, errOut
}

func TestCodecTools(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		input  string
		output string
	}{
		{name: "encode", args: []string{"encode"}, input: "aaaaa", output: "VPRomVE"},
		{name: "encode alias", args: []string{"e"}, input: "aaaa", output: "VPRom"},
		{name: "encode empty", args: []string{"encode"}, input: "", output: ""},
		{name: "encode wrapped", args: []string{"encode", "--wrap", "4"}, input: "Hello, World!", output: "NM&q\nnZ!9\n2JZ*\npv8A\np"},
		{name: "decode", args: []string{"decode"}, input: "VPRomVE\n", output: "aaaaa"},
		{name: "decode alias", args: []string{"d"}, input: "NM&q\nnZ!9\n2JZ*\npv8A\np", output: "Hello, World!"},
		{name: "raw", args: []string{"encode", "-t", "raw"}, input: "plain", output: "plain"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, out, _ := newCodecCli(tc.input)
			err := c.Run(append([]string{"b85-test"}, tc.args...))
			require.NoError(t, err)
			assert.Equal(t, tc.output, out.String())
		})
	}
}

func TestCodecToolsZstd(t *testing.T) {
	src := strings.Repeat("Aenean ut rhoncus dolor ", 64)

	c, encoded, _ := newCodecCli(src)
	require.NoError(t, c.Run([]string{"b85-test", "encode", "--type", "zstd"}))
	assert.Less(t, encoded.Len(), base85.EncodedLen(len(src)))

	c, decoded, _ := newCodecCli(encoded.String())
	require.NoError(t, c.Run([]string{"b85-test", "decode", "--type", "zstd"}))
	assert.Equal(t, src, decoded.String())
}

func TestCodecToolsErrors(t *testing.T) {
	c, out, _ := newCodecCli("VPR\"m")
	err := c.Run([]string{"b85-test", "decode"})
	assert.True(t, errors.Is(err, base85.ErrInvalidCharacter))
	assert.Zero(t, out.Len())

	c, _, _ = newCodecCli("VPRomV")
	err = c.Run([]string{"b85-test", "decode"})
	assert.True(t, errors.Is(err, base85.ErrUnexpectedEOF))

	c, _, _ = newCodecCli("aaaa")
	err = c.Run([]string{"b85-test", "encode", "--type", "ascii85"})
	assert.Error(t, err)

	c, _, _ = newCodecCli("aaaa")
	err = c.Run([]string{"b85-test", "encode", "--wrap", "-1"})
	assert.Error(t, err)
}

func TestMetricsTools(t *testing.T) {
	c, out, errOut := newCodecCli("aaaaa")
	err := c.Run([]string{"b85-test", "--metrics", "encode"})
	require.NoError(t, err)
	assert.Equal(t, "VPRomVE", out.String())
	assert.Contains(t, errOut.String(), "# TYPE b85_codec_operations_total counter\n")
	assert.Contains(t, errOut.String(), `b85_codec_operations_total{codec="base85",operation="encode",status="ok"}`)
	assert.Contains(t, errOut.String(), `b85_codec_bytes_total{codec="base85",direction="out",operation="encode"}`)
}

func TestMetricsToolsDisabled(t *testing.T) {
	c, _, errOut := newCodecCli("aaaaa")
	require.NoError(t, c.Run([]string{"b85-test", "encode"}))
	assert.Zero(t, errOut.Len())
}

func TestVersion(t *testing.T) {
	c, out, _ := newCodecCli("")
	WithVersion("1.2.3")(c)
	require.NoError(t, c.Run([]string{"b85-test", "--version"}))
	assert.Equal(t, "b85-test version 1.2.3\n", out.String())
}

func TestConfigTools(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: disabled\nencoding:\n  type: raw\n"), 0o600))

	run := func(input string, args ...string) (string, error) {
		cfg := &config.BaseConfig{}
		c := New(
			WithName("b85-test"),
			WithConfigTools(cfg, config.YamlUnmarshaler, config.YamlMarshaler),
			WithLogTools(func() *log.Config { return cfg.LogConfig() }),
			WithCodecTools(func() *encoding.Config { return cfg.EncodingConfig() }),
		)
		out := bytes.NewBuffer(nil)
		c.Reader = strings.NewReader(input)
		c.Writer = out
		c.ErrWriter = bytes.NewBuffer(nil)

		err := c.Run(append([]string{"b85-test"}, args...))
		return out.String(), err
	}

	output, err := run("plain", "--config", path, "encode")
	require.NoError(t, err)
	assert.Equal(t, "plain", output)

	output, err = run("aaaaa", "--config", path, "encode", "--type", "base85")
	require.NoError(t, err)
	assert.Equal(t, "VPRomVE", output)

	output, err = run("", "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Equal(t, "configuration is valid\n", output)

	output, err = run("", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "type: raw")

	_, err = run("", "--config", filepath.Join(t.TempDir(), "missing.yml"), "encode")
	assert.Error(t, err)
}
