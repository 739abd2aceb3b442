package diag

import (
	"strings"
	"testing"

	"keel/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(TypMismatch, span(1, 0, 1), "first")) {
		t.Fatalf("first add should succeed")
	}
	if !b.Add(NewError(TypMismatch, span(1, 2, 3), "second")) {
		t.Fatalf("second add should succeed")
	}
	if b.Add(NewError(TypMismatch, span(1, 4, 5), "third")) {
		t.Fatalf("limit reached, third add must fail")
	}
	if b.Len() != 2 || b.Cap() != 2 {
		t.Fatalf("unexpected bag shape: len %d cap %d", b.Len(), b.Cap())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(8)
	if b.HasErrors() || b.HasWarnings() {
		t.Fatalf("empty bag should have nothing")
	}
	b.Add(New(SevInfo, TypInfo, span(1, 0, 1), "info"))
	if b.HasWarnings() {
		t.Fatalf("info alone is not a warning")
	}
	b.Add(New(SevWarning, TypMismatch, span(1, 0, 1), "warn"))
	if !b.HasWarnings() || b.HasErrors() {
		t.Fatalf("warning should register as warning only")
	}
	b.Add(NewError(TypMismatch, span(1, 0, 1), "err"))
	if !b.HasErrors() {
		t.Fatalf("error should register")
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevWarning, TypMismatch, span(2, 5, 6), "late file"))
	b.Add(NewError(TypOwnershipMismatch, span(1, 5, 6), "same span, error"))
	b.Add(New(SevWarning, TypMismatch, span(1, 5, 6), "same span, warning"))
	b.Add(NewError(TypMismatch, span(1, 0, 1), "early"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "early" {
		t.Fatalf("start offset should order first: %q", items[0].Message)
	}
	if items[1].Message != "same span, error" {
		t.Fatalf("errors should sort before warnings at the same span: %q", items[1].Message)
	}
	if items[3].Message != "late file" {
		t.Fatalf("file ID should be the outermost key: %q", items[3].Message)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(8)
	b.Add(NewError(TypMismatch, span(1, 0, 1), "dup"))
	b.Add(NewError(TypMismatch, span(1, 0, 1), "dup"))
	b.Add(NewError(TypMismatch, span(1, 2, 3), "other span"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("expected 2 after dedup, got %d", b.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(TypMismatch, span(1, 0, 1), "a"))
	other := NewBag(2)
	other.Add(NewError(TypMismatch, span(1, 2, 3), "b"))
	other.Add(NewError(TypMismatch, span(1, 4, 5), "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("merge should keep all items, got %d", a.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})

	r.Report(TypMismatch, SevError, span(1, 0, 1), "dup", nil)
	r.Report(TypMismatch, SevError, span(1, 0, 1), "dup", nil)
	r.Report(TypMismatch, SevWarning, span(1, 0, 1), "dup", nil)

	if bag.Len() != 2 {
		t.Fatalf("severity participates in the key: got %d", bag.Len())
	}
}

func TestReportBuilder(t *testing.T) {
	bag := NewBag(8)
	r := BagReporter{Bag: bag}

	ReportError(r, TypTraitNotImplemented, span(1, 0, 4), "Int does not implement ToString").
		WithNote(span(1, 10, 14), "required here").
		Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != TypTraitNotImplemented || len(d.Notes) != 1 {
		t.Fatalf("builder lost details: %+v", d)
	}

	// A builder emits at most once.
	b := ReportWarning(r, TypMismatch, span(1, 0, 1), "warn")
	b.Emit()
	b.Emit()
	if bag.Len() != 2 {
		t.Fatalf("double emit must not duplicate: got %d", bag.Len())
	}
}

func TestCodeIDs(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{TypMismatch, "TYP3001"},
		{IOLoadFileError, "IO4001"},
		{ProjManifestMissing, "PRJ5001"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
	if !strings.Contains(TypMismatch.String(), "Type mismatch") {
		t.Fatalf("String should carry the title: %q", TypMismatch.String())
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir(".")
	id := fs.AddVirtual("main.k", []byte("let x = 1\nlet y = \"s\"\n"))

	diags := []Diagnostic{
		NewError(TypMismatch, source.Span{File: id, Start: 18, End: 21}, "expected Int, found String").
			WithNote(source.Span{File: id, Start: 0, End: 9}, "declared here"),
	}
	got := FormatShortDiagnostics(diags, fs, true)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected diagnostic plus note, got %q", got)
	}
	// Lines come out position-sorted, so the note at 1:1 precedes the
	// error it belongs to.
	if !strings.HasPrefix(lines[0], "note TYP3001 main.k:1:1") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "error TYP3001 main.k:2:") {
		t.Errorf("unexpected error line: %q", lines[1])
	}
}
