package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad/boundary"
	"github.com/iw2rmb/tagpad/internal/logging"
)

func newRetagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retag --caret N --tag TAG [flags] [file]",
		Short: "Replace the tag of the token around a byte offset",
		Long:  `Retag rewrites only the token at the caret. An empty --tag clears the tag.`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runRetag,
	}
	cmd.Flags().Int("caret", 0, "byte offset into the document")
	cmd.Flags().String("tag", "", "new tag, empty to clear")
	cmd.Flags().String("form", "", "document form (storage|display), detected when empty")
	cmd.Flags().BoolP("write", "w", false, "write the result back to the file")
	_ = cmd.MarkFlagRequired("caret")
	_ = cmd.MarkFlagRequired("tag")
	return cmd
}

func (a *app) runRetag(cmd *cobra.Command, args []string) error {
	caret, err := cmd.Flags().GetInt("caret")
	if err != nil {
		return err
	}
	newTag, err := cmd.Flags().GetString("tag")
	if err != nil {
		return err
	}
	formFlag, err := cmd.Flags().GetString("form")
	if err != nil {
		return err
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	if write && (len(args) == 0 || args[0] == "-") {
		return errors.New("retag: --write needs a file argument")
	}

	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	text, eol := splitNewline(text)
	form, err := resolveForm(formFlag, text)
	if err != nil {
		return fmt.Errorf("retag: %w", err)
	}
	if caret < 0 || caret > len(text) {
		return fmt.Errorf("retag: caret %d out of range [0, %d]", caret, len(text))
	}

	span := boundary.Locate(text, caret, form)
	if strings.HasSuffix(span.Slice(text), "\r") {
		span.Len--
	}
	if span.IsEmpty() {
		return fmt.Errorf("retag: no token at %s:%d", name, caret)
	}
	old := boundary.TagAt(text, span, form)
	if a.cfg.TextCodec().IsPunctuation(old.Word) {
		return fmt.Errorf("retag: punctuation %q carries no tag", old.Word)
	}

	out := boundary.ReplaceTag(text, span, newTag, form)
	logging.Retag(old.Word, old.Tag, newTag, "file", name)

	path := ""
	if write {
		path = args[0]
	}
	// Only the token changes; the line ending is written back as read.
	return writeRaw(cmd, path, out+eol)
}
