package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		line string
		n    int
		want Selection
	}{
		{line: "1\n", n: 2, want: Selection{Index: 0, Outcome: Picked}},
		{line: "  2  \r\n", n: 2, want: Selection{Index: 1, Outcome: Picked}},
		{line: "3\n", n: 2, want: Selection{Outcome: OutOfRange}},
		{line: "0\n", n: 2, want: Selection{Outcome: OutOfRange}},
		{line: "-4\n", n: 2, want: Selection{Outcome: OutOfRange}},
		{line: "abc\n", n: 2, want: Selection{Outcome: InvalidInput}},
		{line: "1.5\n", n: 2, want: Selection{Outcome: InvalidInput}},
		{line: "", n: 2, want: Selection{Outcome: InvalidInput}},
		{line: "99999999999999999999999\n", n: 2, want: Selection{Outcome: InvalidInput}},
		{line: "1\n", n: 0, want: Selection{Outcome: Empty}},
	}
	for _, tt := range tests {
		got := ParseSelection(tt.line, tt.n)
		if got != tt.want {
			t.Errorf("ParseSelection(%q, %d) = %+v, want %+v", tt.line, tt.n, got, tt.want)
		}
		if got.OK() != (tt.want.Outcome == Picked) {
			t.Errorf("ParseSelection(%q, %d).OK() = %v", tt.line, tt.n, got.OK())
		}
	}
}

func TestMenu_ChooseRendersAndReadsOneLine(t *testing.T) {
	in := strings.NewReader("2\n1\n")
	var out bytes.Buffer
	m := NewMenu(in, &out, false)

	sel, err := m.Choose("Pick:", []string{"alpha", "beta"})
	if err != nil {
		t.Fatalf("Choose() error: %v", err)
	}
	if sel != (Selection{Index: 1, Outcome: Picked}) {
		t.Fatalf("Choose() = %+v", sel)
	}
	want := "Pick:\n[1] alpha\n[2] beta\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}

	// The second line is still buffered for the next prompt.
	sel, err = m.Choose("Again:", []string{"gamma"})
	if err != nil {
		t.Fatalf("Choose() error: %v", err)
	}
	if sel != (Selection{Index: 0, Outcome: Picked}) {
		t.Fatalf("second Choose() = %+v", sel)
	}
}

func TestMenu_EmptyListDoesNotRead(t *testing.T) {
	in := strings.NewReader("1\n")
	var out bytes.Buffer
	m := NewMenu(in, &out, false)

	sel, err := m.Choose("Pick:", nil)
	if err != nil {
		t.Fatalf("Choose() error: %v", err)
	}
	if sel.Outcome != Empty {
		t.Fatalf("Choose() = %+v, want Empty", sel)
	}
	if in.Len() != 2 {
		t.Fatalf("input was consumed: %d bytes left", in.Len())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestMenu_ReadErrorIsReturned(t *testing.T) {
	m := NewMenu(failingReader{}, &bytes.Buffer{}, false)
	if _, err := m.Choose("Pick:", []string{"a"}); err == nil {
		t.Fatal("expected read error")
	}
}

func TestMenu_Notify(t *testing.T) {
	var out bytes.Buffer
	NewMenu(strings.NewReader(""), &out, false).Notify("hello")
	if out.String() != "hello\n" {
		t.Fatalf("Notify wrote %q", out.String())
	}
}

func TestOutcomeString(t *testing.T) {
	for o, want := range map[Outcome]string{Picked: "picked", InvalidInput: "invalid input", OutOfRange: "out of range", Empty: "empty", Outcome(42): "unknown"} {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, got, want)
		}
	}
}
