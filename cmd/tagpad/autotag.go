package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad/internal/config"
	"github.com/iw2rmb/tagpad/internal/logging"
	"github.com/iw2rmb/tagpad/tagger"
	"github.com/iw2rmb/tagpad/tagtext"
)

func newAutoTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autotag [flags] [file]",
		Short: "Tag plain text with the configured external tagger",
		Long:  `Autotag sends plain text, one sentence per line, to the tagger command and prints the tagged document.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runAutoTag,
	}
	cmd.Flags().String("command", "", "tagger executable, overrides [tagger] command")
	cmd.Flags().Int("jobs", 0, "concurrent tagger calls, overrides [tagger] jobs")
	cmd.Flags().Int("batch-size", 0, "sentences per tagger call, overrides [tagger] batch_size")
	cmd.Flags().String("to", "storage", "output form (storage|display)")
	cmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) runAutoTag(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("command") {
		a.cfg.Tagger.Command, _ = flags.GetString("command")
		a.cfg.Tagger.Args = nil
	}
	if flags.Changed("jobs") {
		a.cfg.Tagger.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("batch-size") {
		a.cfg.Tagger.BatchSize, _ = flags.GetInt("batch-size")
	}
	toFlag, err := flags.GetString("to")
	if err != nil {
		return err
	}
	to, err := tagtext.ParseForm(toFlag)
	if err != nil {
		return fmt.Errorf("autotag: %w", err)
	}
	output, err := flags.GetString("output")
	if err != nil {
		return err
	}

	p, err := a.pipeline()
	if err != nil {
		return fmt.Errorf("%w, or pass --command", err)
	}
	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	doc, err := p.AutoTag(cmd.Context(), trimNewline(text))
	if err != nil {
		return fmt.Errorf("autotag %s: %w", name, err)
	}
	logging.Info("auto-tagged", "file", name, "bytes", len(doc))
	return writeText(cmd, output, a.cfg.TextCodec().Convert(doc, tagtext.Storage, to))
}

// pipeline builds the tagger pipeline from the [tagger] config section.
func (a *app) pipeline() (tagger.Pipeline, error) {
	tc := a.cfg.Tagger
	if tc.Command == "" {
		return tagger.Pipeline{}, errors.New("no tagger configured: set [tagger] command in " + a.configName())
	}
	c := tagger.Command{
		Path:    tc.Command,
		Args:    tc.Args,
		Timeout: a.cfg.TaggerTimeout(),
	}
	return tagger.Pipeline{
		Splitter:  c,
		Tagger:    c,
		BatchSize: tc.BatchSize,
		Jobs:      tc.Jobs,
	}, nil
}

func (a *app) configName() string {
	if a.cfg.Path != "" {
		return a.cfg.Path
	}
	return config.FileName
}
