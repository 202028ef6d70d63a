package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zwoparse/internal/config"
	"github.com/ayoisaiah/zwoparse/internal/render"
)

var (
	ftpFlag = &cli.IntFlag{
		Name:    config.FlagFTP,
		Aliases: []string{"f"},
		Usage:   "The rider's functional threshold power in watts",
		Value:   config.DefaultFTP,
	}

	weightFlag = &cli.Float64Flag{
		Name:    config.FlagWeight,
		Aliases: []string{"k"},
		Usage:   "The rider's weight in kilograms",
		Value:   config.DefaultWeight,
	}

	formatFlag = &cli.StringFlag{
		Name:    config.FlagFormat,
		Aliases: []string{"t"},
		Usage: fmt.Sprintf(
			"The output type. One of: %s",
			strings.Join(render.Formats, ", "),
		),
		Value: config.DefaultFormat,
	}

	minDurationFlag = &cli.IntFlag{
		Name:    config.FlagMinDuration,
		Aliases: []string{"m"},
		Usage:   "Merge segments shorter than this many seconds into the one before. 0 disables merging",
	}

	outFileFlag = &cli.StringFlag{
		Name:        config.FlagOutFile,
		Aliases:     []string{"o"},
		Usage:       "The output file",
		DefaultText: "workout.<type>",
	}

	verboseFlag = &cli.BoolFlag{
		Name:    config.FlagVerbose,
		Aliases: []string{"v"},
		Usage:   "Print the output to the console. Use --verbose=false to silence",
		Value:   true,
	}

	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the config file",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	portFlag = &cli.UintFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "Specify the port for the conversion server",
		Value:   1111,
	}

	forceFlag = &cli.BoolFlag{
		Name:  "force",
		Usage: "Overwrite the destination file if it exists",
	}
)
