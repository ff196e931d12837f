package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/tagpad/internal/logging"
	"github.com/iw2rmb/tagpad/taxonomy"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("path=%q, want %q", got, want)
	}
}

func TestDiscover_NoFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	if _, ok, _ := Find(dir); ok {
		t.Skip("a tagpad.toml exists above the temp dir")
	}
	cfg, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Full(t *testing.T) {
	path := writeFile(t, t.TempDir(), `
[log]
level = "debug"
format = "json"

[tagger]
command = "node"
args = ["tagger.js"]
timeout = "15s"
batch_size = 50
jobs = 4

[codec]
punctuation = ".,!?"

[[taxonomy.group]]
name = "Noun"
prefixes = ["N"]
tags = ["N"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("path=%q, want %q", cfg.Path, path)
	}
	if cfg.LogLevel() != logging.LevelDebug || cfg.LogFormat() != logging.FormatJSON {
		t.Fatalf("log=%+v", cfg.Log)
	}
	want := TaggerConfig{Command: "node", Args: []string{"tagger.js"}, Timeout: "15s", BatchSize: 50, Jobs: 4}
	if diff := cmp.Diff(want, cfg.Tagger); diff != "" {
		t.Fatalf("tagger mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.TaggerTimeout(); got != 15*time.Second {
		t.Fatalf("timeout=%v, want 15s", got)
	}
	if got := cfg.TextCodec().Punctuation; got != ".,!?" {
		t.Fatalf("punctuation=%q", got)
	}
	wantTbl := taxonomy.Table{Groups: []taxonomy.Group{{Name: "Noun", Prefixes: []string{"N"}, Tags: []string{"N"}}}}
	if diff := cmp.Diff(wantTbl, cfg.Taxonomy); diff != "" {
		t.Fatalf("taxonomy mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "[tagger]\ncommand = \"wink\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.Codec.Punctuation != Default().Codec.Punctuation {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if diff := cmp.Diff(taxonomy.Default(), cfg.Taxonomy); diff != "" {
		t.Fatalf("taxonomy mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "syntax", body: "[log\n", want: "failed to parse TOML"},
		{name: "unknown key", body: "[log]\nverbose = true\n", want: "unknown keys: log.verbose"},
		{name: "bad level", body: "[log]\nlevel = \"loud\"\n", want: "log.level"},
		{name: "bad punctuation", body: "[codec]\npunctuation = \"._\"\n", want: "codec.punctuation"},
		{name: "bad timeout", body: "[tagger]\ntimeout = \"soon\"\n", want: "tagger.timeout"},
		{name: "negative jobs", body: "[tagger]\njobs = -1\n", want: "tagger.jobs"},
		{name: "bad taxonomy", body: "[[taxonomy.group]]\nprefixes = [\"N\"]\n", want: "taxonomy:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) || !strings.Contains(err.Error(), path) {
				t.Fatalf("err=%q, want substring %q and path", err, tt.want)
			}
		})
	}
}
