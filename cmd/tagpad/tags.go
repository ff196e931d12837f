package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags [prefix]",
		Short: "List the tags of the configured taxonomy",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTags,
	}
	cmd.Flags().Bool("groups", false, "list groups and their prefixes instead of tags")
	return cmd
}

func (a *app) runTags(cmd *cobra.Command, args []string) error {
	groups, err := cmd.Flags().GetBool("groups")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	label := a.paint(out, tagLabelColor...)
	table := a.cfg.Taxonomy

	if groups {
		for _, g := range table.Groups {
			fmt.Fprintf(out, "%s\t%v\n", label.Sprint(g.Name), g.Prefixes)
		}
		return nil
	}

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}
	tags := table.Filter(prefix)
	if len(tags) == 0 {
		return fmt.Errorf("no tag starts with %q", prefix)
	}
	for _, tag := range tags {
		group := ""
		if g, ok := table.GroupOf(tag); ok {
			group = g.Name
		}
		fmt.Fprintf(out, "%-6s %s\n", tag, label.Sprint(group))
	}
	return nil
}
