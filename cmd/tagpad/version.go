package main

import (
	"fmt"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad"
)

type versionPayload struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
	Semver  bool   `json:"semver"`
	Go      string `json:"go"`
}

func newVersionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the tagpad version",
		Args:  cobra.NoArgs,
		RunE:  a.runVersion,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func (a *app) runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	p := versionPayload{
		Tool:    tagpad.Name,
		Version: tagpad.Version(),
		Semver:  tagpad.VersionIsSemver(),
		Go:      runtime.Version(),
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "pretty":
		ver := a.paint(out, tagLabelColor...)
		// Same text as Banner, with the tag coloured.
		_, err = fmt.Fprintf(out, "%s %s (%s)\n", p.Tool, ver.Sprint(tagpad.VersionTag()), p.Go)
		return err
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
