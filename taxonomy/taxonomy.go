// Package taxonomy groups part-of-speech tags into named categories.
//
// A Table is plain configuration: the editor and the CLI receive one instead
// of hard-coding a tag set, so corpora with their own tag inventory only need
// a different TOML file.
package taxonomy

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every error Validate reports.
var ErrInvalid = errors.New("taxonomy: invalid table")

// Group is one category of tags. A tag belongs to the group whose prefix is
// the longest match for it.
type Group struct {
	Name     string   `toml:"name"`
	Prefixes []string `toml:"prefixes"`
	Tags     []string `toml:"tags"`
}

// Table is an ordered list of groups.
type Table struct {
	Groups []Group `toml:"group"`
}

// Default returns the Penn Treebank table.
func Default() Table {
	return Table{Groups: []Group{
		{Name: "Noun", Prefixes: []string{"NN"}, Tags: []string{"NN", "NNS", "NNP", "NNPS"}},
		{Name: "Verb", Prefixes: []string{"VB"}, Tags: []string{"VB", "VBD", "VBG", "VBN", "VBP", "VBZ"}},
		{Name: "Adjective", Prefixes: []string{"JJ"}, Tags: []string{"JJ", "JJR", "JJS"}},
		{Name: "Adverb", Prefixes: []string{"RB"}, Tags: []string{"RB", "RBR", "RBS"}},
		{Name: "Pronoun", Prefixes: []string{"PRP"}, Tags: []string{"PRP", "PRP$"}},
		{Name: "Determiner", Prefixes: []string{"DT", "PDT"}, Tags: []string{"DT", "PDT"}},
		{Name: "Preposition", Prefixes: []string{"IN"}, Tags: []string{"IN"}},
		{Name: "Conjunction", Prefixes: []string{"CC"}, Tags: []string{"CC"}},
		{Name: "Number", Prefixes: []string{"CD"}, Tags: []string{"CD"}},
		{Name: "Particle", Prefixes: []string{"RP"}, Tags: []string{"RP"}},
		{Name: "Wh-word", Prefixes: []string{"W"}, Tags: []string{"WDT", "WP", "WP$", "WRB"}},
		{Name: "Other", Prefixes: []string{"EX", "FW", "LS", "MD", "POS", "SYM", "TO", "UH"},
			Tags: []string{"EX", "FW", "LS", "MD", "POS", "SYM", "TO", "UH"}},
	}}
}

// Load reads a table from a TOML file made of [[group]] entries.
func Load(path string) (Table, error) {
	var t Table
	meta, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Table{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := rejectUndecoded(meta); err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Decode reads a table from r. See Load.
func Decode(r io.Reader) (Table, error) {
	var t Table
	meta, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Table{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := rejectUndecoded(meta); err != nil {
		return Table{}, err
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

func rejectUndecoded(meta toml.MetaData) error {
	keys := meta.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
}

// IsZero reports whether the table has no groups.
func (t Table) IsZero() bool { return len(t.Groups) == 0 }

// GroupOf returns the group owning tag by longest prefix match.
func (t Table) GroupOf(tag string) (Group, bool) {
	best, bestLen := -1, 0
	for i, g := range t.Groups {
		for _, p := range g.Prefixes {
			if len(p) > bestLen && strings.HasPrefix(tag, p) {
				best, bestLen = i, len(p)
			}
		}
	}
	if best < 0 {
		return Group{}, false
	}
	return t.Groups[best], true
}

// Tags lists every tag of every group in table order, without duplicates.
func (t Table) Tags() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range t.Groups {
		for _, tag := range g.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// Filter returns the tags that start with prefix, case-insensitively.
func (t Table) Filter(prefix string) []string {
	all := t.Tags()
	if prefix == "" {
		return all
	}
	prefix = strings.ToUpper(prefix)
	var out []string
	for _, tag := range all {
		if strings.HasPrefix(strings.ToUpper(tag), prefix) {
			out = append(out, tag)
		}
	}
	return out
}

// Validate checks that every group has a name and at least one prefix, that
// no prefix is claimed twice, and that each listed tag resolves back to the
// group listing it.
func (t Table) Validate() error {
	var errs []error
	owner := make(map[string]string)
	names := make(map[string]struct{})
	for i, g := range t.Groups {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("%w: group %d has no name", ErrInvalid, i))
		} else if _, dup := names[g.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate group %q", ErrInvalid, g.Name))
		}
		names[g.Name] = struct{}{}
		if len(g.Prefixes) == 0 {
			errs = append(errs, fmt.Errorf("%w: group %q has no prefixes", ErrInvalid, g.Name))
		}
		for _, p := range g.Prefixes {
			if p == "" {
				errs = append(errs, fmt.Errorf("%w: group %q has an empty prefix", ErrInvalid, g.Name))
				continue
			}
			if prev, dup := owner[p]; dup {
				errs = append(errs, fmt.Errorf("%w: prefix %q claimed by %q and %q", ErrInvalid, p, prev, g.Name))
				continue
			}
			owner[p] = g.Name
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	for _, g := range t.Groups {
		for _, tag := range g.Tags {
			got, ok := t.GroupOf(tag)
			if !ok || got.Name != g.Name {
				errs = append(errs, fmt.Errorf("%w: tag %q listed in %q does not match its prefixes", ErrInvalid, tag, g.Name))
			}
		}
	}
	return errors.Join(errs...)
}
