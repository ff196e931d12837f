package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad/boundary"
	"github.com/iw2rmb/tagpad/tagtext"
)

type locatePayload struct {
	Form  string `json:"form"`
	Start int    `json:"start"`
	Len   int    `json:"len"`
	Token string `json:"token"`
	Word  string `json:"word"`
	Tag   string `json:"tag,omitempty"`
}

func newLocateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate --caret N [flags] [file]",
		Short: "Print the token around a byte offset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runLocate,
	}
	cmd.Flags().Int("caret", 0, "byte offset into the document")
	cmd.Flags().String("form", "", "document form (storage|display), detected when empty")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	_ = cmd.MarkFlagRequired("caret")
	return cmd
}

func (a *app) runLocate(cmd *cobra.Command, args []string) error {
	caret, err := cmd.Flags().GetInt("caret")
	if err != nil {
		return err
	}
	formFlag, err := cmd.Flags().GetString("form")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	text, _, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	text = trimNewline(text)
	form, err := resolveForm(formFlag, text)
	if err != nil {
		return fmt.Errorf("locate: %w", err)
	}
	if caret < 0 || caret > len(text) {
		return fmt.Errorf("locate: caret %d out of range [0, %d]", caret, len(text))
	}

	span := boundary.Locate(text, caret, form)
	tok := boundary.TagAt(text, span, form)
	p := locatePayload{
		Form:  form.String(),
		Start: span.Start,
		Len:   span.Len,
		Token: span.Slice(text),
		Word:  tok.Word,
		Tag:   tok.Tag,
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
	label := a.paint(out, tagLabelColor...)
	_, err = fmt.Fprintf(out, "%d+%d %s %s\n", p.Start, p.Len, p.Token, label.Sprint(describeToken(tok)))
	return err
}

// describeToken renders tok for humans, e.g. "cat (NN)" or "cat (untagged)".
func describeToken(tok tagtext.Token) string {
	if !tok.Tagged() {
		return tok.Word + " (untagged)"
	}
	return fmt.Sprintf("%s (%s)", tok.Word, tok.Tag)
}
