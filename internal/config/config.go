package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

type Config struct {
	SourceDir   string
	TargetDir   string
	DryRun      bool
	Verbose     bool
	UseExiftool bool
	TUI         bool
}

// BindFlags registers the command-line flags on fs.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.SourceDir, "src", "", "Path to copy files from. This tree is walked recursively.")
	fs.StringVar(&c.TargetDir, "dst", "", "Path to copy the files to. A subdirectory under this will be added for each year.")
	fs.BoolVar(&c.DryRun, "dry-run", false, "Don't actually copy, just display what would be copied.")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "Verbose diagnostics and a summary at the end")
	fs.BoolVar(&c.UseExiftool, "exiftool", false, "Read dates with an exiftool process (PNG, HEIC, RAW)")
	fs.BoolVar(&c.TUI, "tui", false, "Show an interactive progress view")
}

func (c Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("--src is required")
	}
	if c.TargetDir == "" {
		return errors.New("--dst is required")
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("src=%q dst=%q dry-run=%t exiftool=%t tui=%t", c.SourceDir, c.TargetDir, c.DryRun, c.UseExiftool, c.TUI)
}
