package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/zwoparse/internal/render"
)

const asciiLogo = `
███████╗██╗    ██╗ ██████╗
╚══███╔╝██║    ██║██╔═══██╗
  ███╔╝ ██║ █╗ ██║██║   ██║
 ███╔╝  ██║███╗██║██║   ██║
███████╗╚███╔███╔╝╚██████╔╝
╚══════╝ ╚══╝╚══╝  ╚═════╝ `

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	FTP         string
	Weight      string
	Format      string
	MinDuration int
	Verbose     bool
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. Nothing is asked when configPath already exists and
// overwrite is false.
func WithPromptConfig(configPath string, overwrite bool) Option {
	return func(c *Config) error {
		if !overwrite {
			_, err := os.Stat(configPath)
			if err == nil || !errors.Is(err, os.ErrNotExist) {
				return err
			}
		}

		opts, err := promptUser(c)
		if err != nil {
			return errUserPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process. The current
// settings are offered as the defaults.
func promptUser(c *Config) (PromptOptions, error) {
	opts := PromptOptions{
		FTP:         strconv.Itoa(c.FTP),
		Weight:      strconv.FormatFloat(c.Weight, 'f', -1, 64),
		Format:      c.Format,
		MinDuration: c.MinDuration,
		Verbose:     c.Verbose,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure zwoparse.
Enter your values, or press ENTER to accept the defaults.
Edit the config file with 'zwoparse edit-config' to change any settings.`, " ").
		Render()

	formatOptions := make([]huh.Option[string], 0, len(render.Formats))
	for _, f := range render.Formats {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Functional threshold power (watts)").
				Value(&opts.FTP).
				Validate(positiveInt),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&opts.Weight).
				Validate(positiveFloat),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output type").
				Options(formatOptions...).
				Value(&opts.Format),
			huh.NewSelect[int]().
				Title("Merge segments shorter than").
				Options(
					huh.NewOption("Never merge", 0),
					huh.NewOption("5 seconds", 5),
					huh.NewOption("10 seconds", 10),
					huh.NewOption("30 seconds", 30),
					huh.NewOption("60 seconds", 60),
				).
				Value(&opts.MinDuration),
			huh.NewConfirm().
				Title("Print the output to the console?").
				Value(&opts.Verbose),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return ErrInvalidParam.Fmt(s, FlagFTP)
	}

	return nil
}

func positiveFloat(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return ErrInvalidParam.Fmt(s, FlagWeight)
	}

	return nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	ftp, err := strconv.Atoi(opts.FTP)
	if err != nil {
		return ErrInvalidParam.Fmt(opts.FTP, FlagFTP)
	}

	weight, err := strconv.ParseFloat(opts.Weight, 64)
	if err != nil {
		return ErrInvalidParam.Fmt(opts.Weight, FlagWeight)
	}

	c.FTP = ftp
	c.Weight = weight
	c.Format = opts.Format
	c.MinDuration = opts.MinDuration
	c.Verbose = opts.Verbose

	return nil
}
