package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad/tagtext"
)

func newDetectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Short: "Print the form of a tagged document",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runDetect,
	}
}

func (a *app) runDetect(cmd *cobra.Command, args []string) error {
	text, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	form, ok := tagtext.Sniff(text)
	if !ok {
		return errors.New("detect: " + name + " has no content")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), form)
	return err
}
