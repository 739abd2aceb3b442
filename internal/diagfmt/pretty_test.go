package diagfmt

import (
	"strings"
	"testing"

	"keel/internal/diag"
	"keel/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	fs.SetBaseDir(".")
	id := fs.AddVirtual("main.k", []byte("let a = 1\nlet b = \"text\"\n"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.TypMismatch,
		source.Span{File: id, Start: 18, End: 24},
		"expected Int, found String").
		WithNote(source.Span{File: id, Start: 0, End: 9}, "declared here"))
	return bag, fs, id
}

func TestPrettyOutput(t *testing.T) {
	bag, fs, _ := testBag(t)

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{ShowNotes: true})
	got := b.String()

	if !strings.Contains(got, "main.k:2:9: error TYP3001: expected Int, found String") {
		t.Errorf("missing header line:\n%s", got)
	}
	if !strings.Contains(got, "let b = \"text\"") {
		t.Errorf("missing source context:\n%s", got)
	}
	if !strings.Contains(got, "^~~~~") {
		t.Errorf("missing caret underline:\n%s", got)
	}
	if !strings.Contains(got, "main.k:1:1: note: declared here") {
		t.Errorf("missing note:\n%s", got)
	}
}

func TestPrettyWithoutNotes(t *testing.T) {
	bag, fs, _ := testBag(t)

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	if strings.Contains(b.String(), "declared here") {
		t.Fatalf("notes should be suppressed:\n%s", b.String())
	}
}

func TestUnderlineWidth(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		start source.LineCol
		end   source.LineCol
		want  string
	}{
		{
			"plain span",
			"let b = 2",
			source.LineCol{Line: 1, Col: 5},
			source.LineCol{Line: 1, Col: 6},
			"    ^",
		},
		{
			"multi column",
			"let bbb = 2",
			source.LineCol{Line: 1, Col: 5},
			source.LineCol{Line: 1, Col: 8},
			"    ^~~",
		},
		{
			"wide rune before the span pads double",
			"让 x = 1",
			source.LineCol{Line: 1, Col: 5},
			source.LineCol{Line: 1, Col: 6},
			"   ^",
		},
	}
	for _, tc := range cases {
		if got := underline(tc.line, tc.start, tc.end, false); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPrettyUnknownSpan(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.ProjManifestMissing, source.Span{}, "no keel.toml found"))

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	if !strings.Contains(b.String(), "<unknown>: error PRJ5001: no keel.toml found") {
		t.Fatalf("span-less diagnostics should still render:\n%s", b.String())
	}
}
