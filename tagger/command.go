package tagger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/iw2rmb/tagpad/internal/logging"
)

const (
	opSplit = "split"
	opTag   = "tag"
)

// Command runs an external program once per call. The program reads one JSON
// request from stdin:
//
//	{"op":"split","text":"..."}
//	{"op":"tag","sentences":["...", "..."]}
//
// and writes one JSON response to stdout:
//
//	{"sentences":["...", "..."]}
//	{"tagged":["The/DT, cat/NN", "..."]}
//	{"error":"..."}
type Command struct {
	Path string
	Args []string
	// Env is appended to the current environment.
	Env []string
	// Timeout bounds each call. Zero means no limit beyond ctx.
	Timeout time.Duration
}

type request struct {
	Op        string   `json:"op"`
	Text      string   `json:"text,omitempty"`
	Sentences []string `json:"sentences,omitempty"`
}

type response struct {
	Sentences []string `json:"sentences"`
	Tagged    []string `json:"tagged"`
	Error     string   `json:"error"`
}

// CommandError reports a failed call to the external program.
type CommandError struct {
	Op     string
	Err    error
	Stderr string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("tagger: %s: %v", e.Op, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		first, _, _ := strings.Cut(s, "\n")
		msg += ": " + first
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

func (c Command) Split(ctx context.Context, text string) ([]string, error) {
	resp, err := c.call(ctx, request{Op: opSplit, Text: text}, 1)
	if err != nil {
		return nil, err
	}
	return resp.Sentences, nil
}

func (c Command) Tag(ctx context.Context, sentences []string) ([]string, error) {
	resp, err := c.call(ctx, request{Op: opTag, Sentences: sentences}, len(sentences))
	if err != nil {
		return nil, err
	}
	return resp.Tagged, nil
}

func (c Command) call(ctx context.Context, req request, items int) (resp response, err error) {
	if c.Path == "" {
		return response{}, &CommandError{Op: req.Op, Err: errors.New("no command configured")}
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() { logging.TaggerCall(req.Op, items, time.Since(start), err, "command", c.Path) }()

	in, err := json.Marshal(req)
	if err != nil {
		return response{}, &CommandError{Op: req.Op, Err: err}
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Env = append(os.Environ(), c.Env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(in)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return response{}, &CommandError{Op: req.Op, Err: err, Stderr: stderr.String()}
	}
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return response{}, &CommandError{Op: req.Op, Err: fmt.Errorf("invalid response: %w", err), Stderr: stderr.String()}
	}
	if resp.Error != "" {
		return response{}, &CommandError{Op: req.Op, Err: errors.New(resp.Error), Stderr: stderr.String()}
	}
	return resp, nil
}
