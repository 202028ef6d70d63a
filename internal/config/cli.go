package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// Flag names shared with the app package.
const (
	FlagFTP         = "ftp"
	FlagWeight      = "kg"
	FlagFormat      = "type"
	FlagMinDuration = "minduration"
	FlagOutFile     = "outfile"
	FlagVerbose     = "verbose"
)

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags set explicitly on the command line override earlier values,
// and the first positional argument is taken as the input file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		if ctx.IsSet(FlagFTP) {
			c.FTP = ctx.Int(FlagFTP)
		}

		if ctx.IsSet(FlagWeight) {
			c.Weight = ctx.Float64(FlagWeight)
		}

		if ctx.IsSet(FlagFormat) {
			c.Format = strings.ToLower(ctx.String(FlagFormat))
		}

		if ctx.IsSet(FlagMinDuration) {
			c.MinDuration = ctx.Int(FlagMinDuration)
		}

		if ctx.IsSet(FlagOutFile) {
			c.OutFile = ctx.String(FlagOutFile)
		}

		if ctx.IsSet(FlagVerbose) {
			c.Verbose = ctx.Bool(FlagVerbose)
		}

		if ctx.Args().Present() {
			c.InputPath = ctx.Args().First()
		}

		return nil
	}
}
