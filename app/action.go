package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/zwoparse/internal/config"
	"github.com/ayoisaiah/zwoparse/internal/convert"
	"github.com/ayoisaiah/zwoparse/internal/logger"
	"github.com/ayoisaiah/zwoparse/internal/osutil"
	"github.com/ayoisaiah/zwoparse/internal/pathutil"
	"github.com/ayoisaiah/zwoparse/internal/render"
	"github.com/ayoisaiah/zwoparse/internal/server"
	"github.com/ayoisaiah/zwoparse/internal/static"
	"github.com/ayoisaiah/zwoparse/internal/ui"
)

const (
	envNoColor         = "NO_COLOR"
	envZwoparseNoColor = "ZWOPARSE_NO_COLOR"
	envDebug           = "ZWOPARSE_DEBUG"
)

// keys into cli.App.Metadata
const (
	metaPaths     = "paths"
	metaLogCloser = "log_closer"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func appPaths(ctx *cli.Context) *pathutil.Paths {
	p, _ := ctx.App.Metadata[metaPaths].(*pathutil.Paths)
	return p
}

// configPath returns the config file location, preferring --config.
func configPath(ctx *cli.Context) string {
	return firstNonEmptyString(
		ctx.String(configFlag.Name),
		appPaths(ctx).ConfigFilePath(),
	)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	path := configPath(ctx)

	// creates the file with the defaults if it does not exist yet
	if _, err := config.New(config.WithViperConfig(path)); err != nil {
		return err
	}

	cmd := exec.Command(editor, path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// initAction prompts for the settings and writes them to the config file.
func initAction(ctx *cli.Context) error {
	path := configPath(ctx)

	cfg, err := config.New(config.WithPromptConfig(path, true))
	if err != nil {
		return err
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	pterm.Success.Printfln("Configuration saved to %s", path)

	return nil
}

// exampleAction writes the embedded sample workout to disk.
func exampleAction(ctx *cli.Context) error {
	dest := firstNonEmptyString(ctx.Args().First(), static.SampleName)

	if err := static.WriteSample(dest, ctx.Bool(forceFlag.Name)); err != nil {
		return err
	}

	pterm.Success.Printfln("Example workout written to %s", dest)

	return nil
}

// serveAction starts the conversion API and blocks until the process is
// interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, err := config.New(
		config.WithViperConfig(configPath(ctx)),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	cfg.OutFile = ""
	cfg.InputPath = ""

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	port := ctx.Uint(portFlag.Name)

	pterm.Info.Printfln(
		"Serving on %s",
		ui.Green(fmt.Sprintf("http://localhost:%d/api/v1/convert", port)),
	)

	return server.New(cfg, slog.Default()).Run(sigCtx, fmt.Sprintf(":%d", port))
}

// defaultAction converts the workout file given as the first argument and
// writes the result to the output file.
func defaultAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return errMissingInput
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath(ctx)),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	res, err := convertFile(ctx.Context, cfg)
	if err != nil {
		return err
	}

	outPath := cfg.OutputPath()

	if err := writeOutput(outPath, res.Output); err != nil {
		return err
	}

	slog.InfoContext(
		ctx.Context,
		"workout converted",
		slog.String("input", cfg.InputPath),
		slog.String("output", outPath),
		slog.String("type", cfg.Format),
		slog.Int("segments", len(res.Workout.Segments)),
	)

	if cfg.Verbose {
		return echo(ctx.App.Writer, cfg, res)
	}

	return nil
}

func convertFile(ctx context.Context, cfg *config.Config) (*convert.Result, error) {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, errOpenInput.Fmt(cfg.InputPath).Wrap(err)
	}

	defer f.Close()

	slog.DebugContext(ctx, "converting workout", slog.String("input", cfg.InputPath))

	return convert.Convert(f, convert.Options{
		Format:      cfg.Format,
		MinDuration: cfg.MinDuration,
		Athlete:     cfg.Athlete(),
		Date:        time.Now(),
	})
}

// writeOutput writes data to path. Only called once rendering has
// succeeded, so a failed conversion never leaves a partial file behind.
func writeOutput(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errWriteOutput.Fmt(path).Wrap(err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errWriteOutput.Fmt(path).Wrap(cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return errWriteOutput.Fmt(path).Wrap(err)
	}

	return nil
}

// echo prints the rendered output. Parquet is binary so a summary table is
// shown instead.
func echo(w io.Writer, cfg *config.Config, res *convert.Result) error {
	if cfg.Format == render.FormatParquet {
		return ui.PrintSummary(res.Workout, cfg.Athlete(), w)
	}

	_, err := w.Write(res.Output)

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if ZWOPARSE_NO_COLOR is set
	if _, exists := os.LookupEnv(envZwoparseNoColor); exists {
		disableStyling()
	}

	if ctx.Bool(noColorFlag.Name) {
		disableStyling()
	}

	paths, err := pathutil.New()
	if err != nil {
		return errPaths.Wrap(err)
	}

	_, debug := os.LookupEnv(envDebug)

	log, closer := logger.New(logger.Options{
		Path:  paths.LogFilePath(),
		Level: logger.Level(debug),
	})

	slog.SetDefault(log)

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	ctx.App.Metadata[metaPaths] = paths
	ctx.App.Metadata[metaLogCloser] = closer

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting zwoparse")

	if closer, ok := ctx.App.Metadata[metaLogCloser].(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
