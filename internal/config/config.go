// Package config loads tagpad.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/iw2rmb/tagpad/internal/logging"
	"github.com/iw2rmb/tagpad/tagtext"
	"github.com/iw2rmb/tagpad/taxonomy"
)

// FileName is the name looked up by Find.
const FileName = "tagpad.toml"

type Config struct {
	Log      LogConfig      `toml:"log"`
	Tagger   TaggerConfig   `toml:"tagger"`
	Codec    CodecConfig    `toml:"codec"`
	Taxonomy taxonomy.Table `toml:"taxonomy"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type TaggerConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	// Timeout bounds a single call, for example "30s". Empty means no limit.
	Timeout string `toml:"timeout"`
	// BatchSize is the number of sentences per tag call. Zero sends all
	// sentences at once.
	BatchSize int `toml:"batch_size"`
	// Jobs is the number of tag calls allowed in flight.
	Jobs int `toml:"jobs"`
}

type CodecConfig struct {
	Punctuation string `toml:"punctuation"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Log:      LogConfig{Level: "warn", Format: "text"},
		Codec:    CodecConfig{Punctuation: tagtext.DefaultPunctuation},
		Taxonomy: taxonomy.Default(),
	}
}

// Find walks up from startDir looking for tagpad.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest tagpad.toml above startDir, or the defaults when
// there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load reads path on top of the defaults. Keys not listed in Config are an
// error. A file that defines no taxonomy keeps the default table.
func Load(path string) (Config, error) {
	cfg := Default()
	cfg.Taxonomy = taxonomy.Table{}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("taxonomy", "group") {
		cfg.Taxonomy = taxonomy.Default()
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that TOML decoding cannot.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("log.format: %w", err))
	}
	if i := strings.IndexAny(c.Codec.Punctuation, " \t\n/_"); i >= 0 {
		errs = append(errs, fmt.Errorf("codec.punctuation: %q cannot be punctuation", c.Codec.Punctuation[i]))
	}
	if c.Tagger.Timeout != "" {
		if _, err := time.ParseDuration(c.Tagger.Timeout); err != nil {
			errs = append(errs, fmt.Errorf("tagger.timeout: %w", err))
		}
	}
	if c.Tagger.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("tagger.batch_size: must not be negative"))
	}
	if c.Tagger.Jobs < 0 {
		errs = append(errs, fmt.Errorf("tagger.jobs: must not be negative"))
	}
	if err := c.Taxonomy.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("taxonomy: %w", err))
	}
	return errors.Join(errs...)
}

func (c Config) TextCodec() tagtext.Codec {
	return tagtext.Codec{Punctuation: c.Codec.Punctuation}
}

// LogLevel and LogFormat fall back to warn/text on values Validate rejects.
func (c Config) LogLevel() logging.Level {
	l, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.LevelWarn
	}
	return l
}

func (c Config) LogFormat() logging.Format {
	f, _ := logging.ParseFormat(c.Log.Format)
	return f
}

// TaggerTimeout returns zero when no timeout is configured.
func (c Config) TaggerTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Tagger.Timeout)
	return d
}
