package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad/internal/logging"
	"github.com/iw2rmb/tagpad/tagtext"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] [file]",
		Short: "Convert tagged text between Storage and Display form",
		Long:  `Convert reads a tagged document and writes it in the other form. The source form is detected unless --from is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runConvert,
	}
	cmd.Flags().String("from", "", "source form (storage|display), detected when empty")
	cmd.Flags().String("to", "", "target form (storage|display), the opposite of the source when empty")
	cmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	fromFlag, err := cmd.Flags().GetString("from")
	if err != nil {
		return err
	}
	toFlag, err := cmd.Flags().GetString("to")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	text = trimNewline(text)

	from, err := resolveForm(fromFlag, text)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	to := tagtext.Storage
	if from == tagtext.Storage {
		to = tagtext.Display
	}
	if toFlag != "" {
		if to, err = tagtext.ParseForm(toFlag); err != nil {
			return fmt.Errorf("convert: %w", err)
		}
	}

	out := a.cfg.TextCodec().Convert(text, from, to)
	logging.Conversion(from.String(), to.String(), len(text))
	return writeText(cmd, output, out)
}
