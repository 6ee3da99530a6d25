package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"camroll/internal/app"
	"camroll/internal/config"
	appErrors "camroll/internal/errors"
	"camroll/internal/infra/exif"
	"camroll/internal/infra/exiftool"
	"camroll/internal/infra/fs"
	"camroll/internal/logging"
	"camroll/internal/presentation"
	"camroll/internal/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		exitWithError(err)
	}
}

func newRootCommand() *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "camroll --src <path> --dst <path>",
		Short: "Copy photos into per-year folders with camera-upload style names",
		Long: `Copy all files from a directory tree into another, using names that match how
camera upload folders rename them ("2006-01-02 15.04.05.jpg"), split up by year.

Date and time of files is taken from the EXIF DateTimeOriginal tag if possible,
or the file modification time otherwise.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cfg.BindFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var diagnostics bytes.Buffer
	logWriter := stderr
	if cfg.TUI {
		logWriter = &diagnostics
		defer func() { stderr.Write(diagnostics.Bytes()) }()
	}
	logger := logging.New(logWriter, cfg.Verbose)
	logger.Verbosef("Config: %s", cfg)

	var reader app.ExifReader = exif.Reader{}
	if cfg.UseExiftool {
		et, err := exiftool.New()
		if err != nil {
			return appErrors.Wrap(appErrors.InvalidConfig, "exiftool", "", err)
		}
		defer et.Close()
		reader = et
	}

	filesystem := fs.OSFS{}
	printer := presentation.Printer{Writer: stdout, Verbose: cfg.Verbose}
	driver := &app.Driver{
		FS:        filesystem,
		Extractor: &app.Extractor{Exif: reader, Logger: logger},
		Namer:     &app.Namer{FS: filesystem, DryRun: cfg.DryRun},
		Logger:    logger,
		DryRun:    cfg.DryRun,
		OnMapping: printer.PrintMapping,
	}

	if cfg.TUI {
		return runTUI(ctx, cfg, driver)
	}

	summary, err := driver.Run(ctx, cfg.SourceDir, cfg.TargetDir)
	if err != nil {
		return err
	}
	printer.PrintSummary(summary, cfg.DryRun)
	return nil
}

func runTUI(ctx context.Context, cfg config.Config, driver *app.Driver) error {
	driver.OnMapping = nil
	model := tui.NewModel(tui.Config{
		Context:   ctx,
		SourceDir: cfg.SourceDir,
		TargetDir: cfg.TargetDir,
		DryRun:    cfg.DryRun,
		Runner:    driver,
	})
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err != nil {
		return m.Err
	}
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
