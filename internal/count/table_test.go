package count

import (
	"bytes"
	"strings"
	"testing"

	"pbxplore/internal/pb"
)

func TestWriteHeaderLayout(t *testing.T) {
	m := New(1)
	foldAll(t, m, "a")
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	wantHeader := "    " +
		"     a     b     c     d     e     f     g     h" +
		"     i     j     k     l     m     n     o     p"
	if lines[0] != wantHeader {
		t.Fatalf("header layout changed:\nwant %q\ngot  %q", wantHeader, lines[0])
	}
	if !strings.HasPrefix(lines[1], "1    ") {
		t.Fatalf("row should start with width-5 position, got %q", lines[1])
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	m := NewOffset(3, 2)
	foldAll(t, m, "amp", "aZp", "bmc")
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Len() != m.Len() || got.Offset() != m.Offset() {
		t.Fatalf("shape changed: len %d offset %d", got.Len(), got.Offset())
	}
	for pos := 2; pos <= 4; pos++ {
		for b := 0; b < pb.NumBlocks; b++ {
			if got.Count(pos, pb.Block(b)) != m.Count(pos, pb.Block(b)) {
				t.Fatalf("count changed at position %d block %c", pos, pb.Letters[b])
			}
		}
	}
}

func TestReadRejectsBadHeader(t *testing.T) {
	in := "    a b c\n1 0 0 0\n"
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for short header")
	}
}

func TestReadRejectsNonContiguousPositions(t *testing.T) {
	m := New(2)
	foldAll(t, m, "ab")
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		t.Fatalf("write: %v", err)
	}
	broken := strings.Replace(buf.String(), "\n2    ", "\n7    ", 1)
	if _, err := Read(strings.NewReader(broken)); err == nil {
		t.Fatal("expected error for position jump")
	}
}

func TestReadRejectsEmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty table")
	}
}
