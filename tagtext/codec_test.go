package tagtext

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToStorage_PunctuationIsolation(t *testing.T) {
	got := ToStorage("The cat sat.")
	if want := "The/The, cat/cat, sat/sat, ./."; got != want {
		t.Fatalf("storage=%q, want %q", got, want)
	}
	if n := len(strings.Split(got, ", ")); n != 4 {
		t.Fatalf("token count=%d, want 4", n)
	}
}

func TestToStorage_UntaggedConvention(t *testing.T) {
	if got, want := ToStorage("cat"), "cat/cat"; got != want {
		t.Fatalf("storage=%q, want %q", got, want)
	}
}

func TestToStorage_Cases(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "tagged", in: "The_DT cat_NN", want: "The/DT, cat/NN"},
		{name: "punct-without-space", in: "Hi,there!", want: "Hi/Hi, ,/,, there/there, !/!"},
		{name: "parens", in: "(a_DT)", want: "(/(, a/DT, )/)"},
		{name: "split-once", in: "a_b_NN", want: "a/b_NN"},
		{name: "extra-spaces", in: "  cat_NN   sat_VB  ", want: "cat/NN, sat/VB"},
		{name: "multi-sentence", in: "A_DT .\nB_NN !", want: "A/DT, ./.\nB/NN, !/!"},
		{name: "blank-line-kept", in: "a_DT\n\nb_NN", want: "a/DT\n\nb/NN"},
		{name: "crlf", in: "a_DT\r\nb_NN", want: "a/DT\nb/NN"},
		{name: "leading-delimiter", in: "_NN", want: "_NN/_NN"},
		{name: "unicode", in: "café_NN ÿ", want: "café/NN, ÿ/ÿ"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToStorage(tc.in); got != tc.want {
				t.Fatalf("storage=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestToDisplay_Cases(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "tagged", in: "The/DT, cat/NN, sat/VB, ./.", want: "The_DT cat_NN sat_VB ."},
		{name: "punct-tag-dropped", in: "Hi/UH, !/PUNCT", want: "Hi_UH !"},
		{name: "comma-token", in: "a/DT, ,/,, b/NN", want: "a_DT , b_NN"},
		{name: "self-tag-is-untagged", in: "cat/cat", want: "cat"},
		{name: "missing-delimiter", in: "cat, sat/VB", want: "cat sat_VB"},
		{name: "blank-dropped", in: "a/DT\n\n  \nb/NN", want: "a_DT\nb_NN"},
		{name: "first-slash-only", in: "and/or/CC", want: "and_or/CC"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToDisplay(tc.in); got != tc.want {
				t.Fatalf("display=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestRoundTrip_Display(t *testing.T) {
	docs := []string{
		"The_DT cat_NN sat_VB .",
		"Hello_UH , world_NN !\nHow_WRB are_VBP you_PRP ?",
		"cat",
		"( aside_NN ) : done_VBN ;",
	}
	for _, d := range docs {
		if got := ToDisplay(ToStorage(d)); got != d {
			t.Fatalf("display round trip:\n got %q\nwant %q", got, d)
		}
	}
}

func TestRoundTrip_Storage(t *testing.T) {
	docs := []string{
		"The/DT, cat/NN, sat/VB, ./.",
		"Hello/UH, ,/,, world/NN, !/!\nHow/WRB, are/VBP, you/PRP, ?/?",
		"cat/cat",
	}
	for _, d := range docs {
		if got := ToStorage(ToDisplay(d)); got != d {
			t.Fatalf("storage round trip:\n got %q\nwant %q", got, d)
		}
	}
}

func TestCodec_CustomPunctuation(t *testing.T) {
	c := Codec{Punctuation: ".-"}
	if got, want := c.ToStorage("a-b."), "a/a, -/-, b/b, ./."; got != want {
		t.Fatalf("storage=%q, want %q", got, want)
	}
	if got, want := c.ToDisplay("-/HYPH, ,/,"), "- ,"; got != want {
		t.Fatalf("display=%q, want %q", got, want)
	}
}

func TestCodec_ParseSentence(t *testing.T) {
	var c Codec

	got := c.ParseSentence("The_DT cat sat_VB.", Display)
	want := []Token{
		{Word: "The", Tag: "DT"},
		{Word: "cat"},
		{Word: "sat", Tag: "VB"},
		{Word: "."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("display tokens (-want +got):\n%s", diff)
	}

	got = c.ParseSentence("The/DT, cat/cat, ./.", Storage)
	want = []Token{
		{Word: "The", Tag: "DT"},
		{Word: "cat"},
		{Word: "."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("storage tokens (-want +got):\n%s", diff)
	}

	if got := c.ParseSentence("   ", Storage); len(got) != 0 {
		t.Fatalf("blank storage sentence tokens=%v, want none", got)
	}
}

func TestCodec_FormatSentence(t *testing.T) {
	var c Codec
	toks := []Token{{Word: "Run", Tag: "VB"}, {Word: "fast"}, {Word: "!", Tag: "."}}

	if got, want := c.FormatSentence(toks, Display), "Run_VB fast !"; got != want {
		t.Fatalf("display=%q, want %q", got, want)
	}
	if got, want := c.FormatSentence(toks, Storage), "Run/VB, fast/fast, !/."; got != want {
		t.Fatalf("storage=%q, want %q", got, want)
	}
}

func TestCodec_Convert(t *testing.T) {
	var c Codec
	if got := c.Convert("a_DT", Display, Display); got != "a_DT" {
		t.Fatalf("same-form convert=%q", got)
	}
	if got, want := c.Convert("a_DT", Display, Storage), "a/DT"; got != want {
		t.Fatalf("convert=%q, want %q", got, want)
	}
	if got, want := c.Convert("a/DT", Storage, Display), "a_DT"; got != want {
		t.Fatalf("convert=%q, want %q", got, want)
	}
}

func TestCodec_IsPunctuation(t *testing.T) {
	var c Codec
	cases := map[string]bool{
		".":  true,
		"(":  true,
		"..": false,
		"a":  false,
		"":   false,
		"—":  false,
	}
	for in, want := range cases {
		if got := c.IsPunctuation(in); got != want {
			t.Fatalf("IsPunctuation(%q)=%v, want %v", in, got, want)
		}
	}
}
