package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tagpad/editor"
	"github.com/iw2rmb/tagpad/internal/logging"
	"github.com/iw2rmb/tagpad/tagger"
)

func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [flags] file",
		Short: "Open a tagged document in the terminal editor",
		Long: `Edit opens file in Display form. Ctrl+S saves it back in Storage form,
Ctrl+T replaces every tag with the output of the configured tagger.
A missing file starts an empty document.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runEdit,
	}
	cmd.Flags().String("form", "", "form of the file on disk (storage|display), detected when empty")
	cmd.Flags().Bool("line-numbers", true, "show line numbers")
	return cmd
}

func (a *app) runEdit(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(cmd.OutOrStdout()) {
		return errors.New("edit: needs an interactive terminal")
	}
	formFlag, err := cmd.Flags().GetString("form")
	if err != nil {
		return err
	}
	lineNums, err := cmd.Flags().GetBool("line-numbers")
	if err != nil {
		return err
	}

	// Report tagger problems while stderr still reaches the user.
	pipeline, pipeErr := a.pipeline()
	if pipeErr != nil {
		logging.Warn("auto-tag disabled", "error", pipeErr)
	}

	// The alternate screen owns the terminal; log lines would tear it.
	if isTerminal(cmd.ErrOrStderr()) {
		logging.InitLogger(a.cfg.LogLevel(), a.cfg.LogFormat(), io.Discard)
	}

	path := args[0]
	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	text, eol := splitNewline(string(raw))
	if len(raw) == 0 {
		eol = "\n"
	}
	form, err := resolveForm(formFlag, text)
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	h := newEditHost(cmd.Context(), path, editor.Config{
		Text:         text,
		Form:         form,
		Codec:        a.cfg.TextCodec(),
		Taxonomy:     a.cfg.Taxonomy,
		ShowLineNums: lineNums,
		Style:        editor.DefaultStyle(),
	})
	h.eol = eol
	if pipeErr != nil {
		h.autoTagErr = pipeErr
	} else {
		h.autoTag = pipeline.AutoTag
	}

	prog := tea.NewProgram(h,
		tea.WithContext(cmd.Context()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := prog.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if m, ok := final.(editHost); ok && m.editor.Dirty() {
		logging.Warn("quit with unsaved changes", "file", path)
		fmt.Fprintln(cmd.ErrOrStderr(), "tagpad: unsaved changes to "+path+" were discarded")
	}
	return nil
}

// editHost owns the file I/O and tagger calls the editor delegates.
type editHost struct {
	ctx    context.Context
	path   string
	eol    string
	editor editor.Model

	autoTag func(ctx context.Context, text string) (string, error)
	// autoTagErr explains why autoTag is nil.
	autoTagErr error
}

func newEditHost(ctx context.Context, path string, cfg editor.Config) editHost {
	return editHost{ctx: ctx, path: path, eol: "\n", editor: editor.New(cfg)}
}

func (h editHost) Init() tea.Cmd {
	editorInit := h.editor.Init()
	if h.autoTagErr == nil {
		return editorInit
	}
	status := editor.StatusMsg{Text: "auto-tag unavailable: " + h.autoTagErr.Error()}
	showStatus := func() tea.Msg { return status }
	if editorInit == nil {
		return showStatus
	}
	return tea.Batch(editorInit, showStatus)
}

func (h editHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.editor = h.editor.SetSize(msg.Width, msg.Height)
		return h, nil
	case editor.SaveMsg:
		return h, h.save(msg)
	case editor.AutoTagMsg:
		return h, h.runAutoTag(msg)
	}

	var cmd tea.Cmd
	h.editor, cmd = h.editor.Update(msg)
	return h, cmd
}

func (h editHost) View() string { return h.editor.View() }

func (h editHost) save(msg editor.SaveMsg) tea.Cmd {
	path, eol := h.path, h.eol
	return func() tea.Msg {
		text := msg.Text
		if text != "" {
			text += eol
		}
		err := os.WriteFile(path, []byte(text), 0o644)
		if err != nil {
			logging.Error("save failed", "file", path, "error", err)
		} else {
			logging.Info("saved", "file", path, "bytes", len(text))
		}
		return editor.SavedMsg{TextVersion: msg.TextVersion, Path: path, Err: err}
	}
}

func (h editHost) runAutoTag(msg editor.AutoTagMsg) tea.Cmd {
	if h.autoTag == nil {
		err := h.autoTagErr
		if err == nil {
			err = tagger.ErrNoTagger
		}
		return func() tea.Msg {
			return editor.AutoTagResultMsg{Err: err}
		}
	}
	return tea.Sequence(
		func() tea.Msg { return editor.StatusMsg{Text: "tagging..."} },
		h.autoTagCmd(msg.Text),
	)
}

func (h editHost) autoTagCmd(text string) tea.Cmd {
	ctx, autoTag := h.ctx, h.autoTag
	return func() tea.Msg {
		doc, err := autoTag(ctx, text)
		return editor.AutoTagResultMsg{Text: doc, Err: err}
	}
}
