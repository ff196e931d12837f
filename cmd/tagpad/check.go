package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad/tagtext"
)

var (
	errorLabelColor = []color.Attribute{color.FgRed, color.Bold}
	warnLabelColor  = []color.Attribute{color.FgYellow, color.Bold}
	tagLabelColor   = []color.Attribute{color.FgCyan}
)

// errCheckFailed is returned after the problems have been printed.
var errCheckFailed = errors.New("check failed")

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [file]",
		Short: "Report malformed tokens and unknown tags",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runCheck,
	}
	cmd.Flags().String("form", "", "document form (storage|display), detected when empty")
	cmd.Flags().Bool("strict-tags", false, "treat tags outside the taxonomy as errors")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	formFlag, err := cmd.Flags().GetString("form")
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool("strict-tags")
	if err != nil {
		return err
	}

	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	text = trimNewline(text)
	form, err := resolveForm(formFlag, text)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	out := cmd.OutOrStdout()
	errLabel := a.paint(out, errorLabelColor...)
	warnLabel := a.paint(out, warnLabelColor...)

	codec := a.cfg.TextCodec()
	var problems int
	for _, fe := range formatErrors(codec.Validate(text, form)) {
		problems++
		fmt.Fprintf(out, "%s:%d:%d: %s %q: %s\n", name, fe.Line, fe.Column, errLabel.Sprint("error:"), fe.Token, fe.Reason)
	}

	for n, line := range strings.Split(text, "\n") {
		for _, tok := range codec.ParseSentence(line, form) {
			if !tok.Tagged() {
				continue
			}
			if _, ok := a.cfg.Taxonomy.GroupOf(tok.Tag); ok {
				continue
			}
			label := warnLabel.Sprint("warning:")
			if strict {
				problems++
				label = errLabel.Sprint("error:")
			}
			fmt.Fprintf(out, "%s:%d: %s unknown tag %q on %q\n", name, n+1, label, tok.Tag, tok.Word)
		}
	}

	if problems > 0 {
		return fmt.Errorf("%w: %d problem(s) in %s", errCheckFailed, problems, name)
	}
	return nil
}

// formatErrors flattens the joined error returned by Validate.
func formatErrors(err error) []*tagtext.FormatError {
	if err == nil {
		return nil
	}
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	out := make([]*tagtext.FormatError, 0, len(errs))
	for _, e := range errs {
		var fe *tagtext.FormatError
		if errors.As(e, &fe) {
			out = append(out, fe)
		}
	}
	return out
}
