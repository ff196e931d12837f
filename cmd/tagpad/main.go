package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/tagpad"
	"github.com/iw2rmb/tagpad/internal/config"
	"github.com/iw2rmb/tagpad/internal/logging"
)

// app carries the state shared by every subcommand once the root flags are
// parsed.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	colorMode  string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               tagpad.Name,
		Short:             "Convert, inspect and edit part-of-speech tagged text",
		Long:              `tagpad works with tagged text in its Storage form (word/TAG, ...) and its Display form (word_TAG ...)`,
		Version:           tagpad.VersionTag(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.SetVersionTemplate(tagpad.Banner() + "\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to "+config.FileName+" (default: search upward from the working directory)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug|info|warn|error), overrides the config file")
	pf.StringVar(&a.logFormat, "log-format", "", "log format (text|json), overrides the config file")
	pf.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(
		newConvertCmd(a),
		newDetectCmd(a),
		newLocateCmd(a),
		newRetagCmd(a),
		newCheckCmd(a),
		newAutoTagCmd(a),
		newTagsCmd(a),
		newEditCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch a.colorMode {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", a.colorMode)
	}

	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		var wd string
		if wd, err = os.Getwd(); err != nil {
			return err
		}
		a.cfg, err = config.Discover(wd)
	}
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	level, err := logging.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(a.cfg.Log.Format)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format, cmd.ErrOrStderr())
	if a.cfg.Path != "" {
		logging.Debug("config loaded", "path", a.cfg.Path)
	}
	return nil
}

// useColor reports whether output written to w should be colorized.
func (a *app) useColor(w io.Writer) bool {
	switch a.colorMode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(w)
	}
}

// paint returns a color that honours the --color flag for w.
func (a *app) paint(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if a.useColor(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
