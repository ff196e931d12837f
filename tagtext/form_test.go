package tagtext

import "testing"

func TestForm_Delimiters(t *testing.T) {
	if got, want := Storage.TokenDelimiter(), ", "; got != want {
		t.Fatalf("storage token delimiter=%q, want %q", got, want)
	}
	if got, want := Storage.TagDelimiter(), "/"; got != want {
		t.Fatalf("storage tag delimiter=%q, want %q", got, want)
	}
	if got, want := Display.TokenDelimiter(), " "; got != want {
		t.Fatalf("display token delimiter=%q, want %q", got, want)
	}
	if got, want := Display.TagDelimiter(), "_"; got != want {
		t.Fatalf("display tag delimiter=%q, want %q", got, want)
	}
	seps := Display.Separators()
	if len(seps) != 2 || seps[0] != " " || seps[1] != "\n" {
		t.Fatalf("display separators=%q", seps)
	}
}

func TestParseForm(t *testing.T) {
	cases := []struct {
		in   string
		want Form
		ok   bool
	}{
		{in: "storage", want: Storage, ok: true},
		{in: " Display ", want: Display, ok: true},
		{in: "view", ok: false},
	}
	for _, tc := range cases {
		got, err := ParseForm(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseForm(%q) err=%v, want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseForm(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
	if got := Form(9).String(); got != "Form(9)" {
		t.Fatalf("unknown form string=%q", got)
	}
}

func TestToDisplay_SelfNamedTagReadsAsUntagged(t *testing.T) {
	if got, want := ToDisplay("go/VB, TO/TO, IN/IN"), "go_VB TO IN"; got != want {
		t.Fatalf("display=%q, want %q", got, want)
	}
	if got, want := ToDisplay("go/VB, to/TO"), "go_VB to_TO"; got != want {
		t.Fatalf("display=%q, want %q", got, want)
	}
}

func TestParseToken(t *testing.T) {
	cases := []struct {
		in   string
		form Form
		want Token
	}{
		{in: "cat/NN", form: Storage, want: Token{Word: "cat", Tag: "NN"}},
		{in: "cat/cat", form: Storage, want: Token{Word: "cat"}},
		{in: "cat", form: Storage, want: Token{Word: "cat"}},
		{in: "/NN", form: Storage, want: Token{Word: "/NN"}},
		{in: "TO/TO", form: Storage, want: Token{Word: "TO"}},
		{in: "to/TO", form: Storage, want: Token{Word: "to", Tag: "TO"}},
		{in: "cat_NN", form: Display, want: Token{Word: "cat", Tag: "NN"}},
		{in: "cat_cat", form: Display, want: Token{Word: "cat", Tag: "cat"}},
		{in: "cat", form: Display, want: Token{Word: "cat"}},
	}
	for _, tc := range cases {
		if got := ParseToken(tc.in, tc.form); got != tc.want {
			t.Fatalf("ParseToken(%q, %v)=%+v, want %+v", tc.in, tc.form, got, tc.want)
		}
	}
}

func TestSniff(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Form
		ok   bool
	}{
		{name: "storage", in: "The/DT, cat/NN", want: Storage, ok: true},
		{name: "storage-after-blank", in: "\n  \nThe/DT, cat/NN", want: Storage, ok: true},
		{name: "storage-punct-first", in: "./., a/DT", want: Storage, ok: true},
		{name: "display", in: "The_DT cat_NN", want: Display, ok: true},
		{name: "display-untagged", in: "The cat", want: Display, ok: true},
		{name: "slash-later", in: "The_DT and/or_CC", want: Display, ok: true},
		{name: "blank", in: " \n\t", want: Display, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Sniff(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("form=%v, want %v", got, tc.want)
			}
		})
	}
}
