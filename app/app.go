package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zwoparse/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the zwoparse app instance.
func Get() *cli.App {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	zwoparseApp := &cli.App{
		Name: "zwoparse",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		zwoparse converts Zwift workout files (.zwo) into plain text, CSV, JSON 
		or Parquet. Interval sets are expanded into individual segments and 
		power targets are shown as a percentage of FTP, in watts and in W/kg.`,
		UsageText:            "[COMMAND] [OPTIONS] <file.zwo>",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "init",
				Usage:  "Create the configuration file interactively",
				Action: initAction,
			},
			{
				Name:      "example",
				Usage:     "Write an example workout file",
				ArgsUsage: "[destination]",
				Flags: []cli.Flag{
					forceFlag,
				},
				Action: exampleAction,
			},
			{
				Name:  "serve",
				Usage: "Serve the conversion API over HTTP",
				Flags: []cli.Flag{
					portFlag,
				},
				Action: serveAction,
			},
		},
		Flags: []cli.Flag{
			ftpFlag,
			weightFlag,
			formatFlag,
			minDurationFlag,
			outFileFlag,
			verboseFlag,
			configFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return zwoparseApp
}
