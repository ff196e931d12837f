package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad/tagtext"
)

const stdinName = "<stdin>"

// readInput reads the single optional file argument, or standard input when
// it is absent or "-".
func readInput(cmd *cobra.Command, args []string) (text, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", stdinName, fmt.Errorf("read stdin: %w", err)
		}
		return string(b), stdinName, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", args[0], err
	}
	return string(b), args[0], nil
}

// resolveForm parses flag when set and sniffs text otherwise.
func resolveForm(flag, text string) (tagtext.Form, error) {
	if flag != "" {
		return tagtext.ParseForm(flag)
	}
	form, _ := tagtext.Sniff(text)
	return form, nil
}

// writeText writes text to path, or to the command output when path is
// empty, always ending with a newline.
func writeText(cmd *cobra.Command, path, text string) error {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return writeRaw(cmd, path, text)
}

// writeRaw writes text byte for byte, to path or to the command output.
func writeRaw(cmd *cobra.Command, path, text string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// trimNewline drops a single trailing line break so that it is not read as
// an empty final sentence.
func trimNewline(text string) string {
	body, _ := splitNewline(text)
	return body
}

// splitNewline separates a single trailing "\n" or "\r\n" from text.
func splitNewline(text string) (body, eol string) {
	for _, e := range []string{"\r\n", "\n"} {
		if strings.HasSuffix(text, e) {
			return strings.TrimSuffix(text, e), e
		}
	}
	return text, ""
}
