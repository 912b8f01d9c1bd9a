package neq

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"pbxplore/internal/count"
	"pbxplore/internal/pb"
)

func mustSeq(t *testing.T, s string) pb.Sequence {
	t.Helper()
	seq, err := pb.ParseSequence(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return seq
}

func matrixOf(t *testing.T, seqs ...string) *count.Matrix {
	t.Helper()
	m := count.New(len(seqs[0]))
	for _, s := range seqs {
		if err := m.Fold(mustSeq(t, s)); err != nil {
			t.Fatalf("fold %q: %v", s, err)
		}
	}
	return m
}

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNeqSingleLetterIsOne(t *testing.T) {
	// Same letter in every frame, any total count.
	m := matrixOf(t, "a", "a", "a", "a", "a", "a", "a")
	s := Compute(m)
	if !s[0].HasData || !almost(s[0].Neq, 1.0) {
		t.Fatalf("want Neq 1.0, got %+v", s[0])
	}
}

func TestNeqUniformSixteenIsSixteen(t *testing.T) {
	seqs := make([]string, pb.NumBlocks)
	for b := 0; b < pb.NumBlocks; b++ {
		seqs[b] = string(pb.Letters[b])
	}
	s := Compute(matrixOf(t, seqs...))
	if !almost(s[0].Neq, 16.0) {
		t.Fatalf("uniform distribution: want Neq 16.0, got %v", s[0].Neq)
	}
}

func TestNeqThreeDistinctLettersIsThree(t *testing.T) {
	// Three frames, each position dominated by a different letter.
	s := Compute(matrixOf(t, "abc", "bcd", "cde"))
	for i, v := range s {
		if !almost(v.Neq, 3.0) {
			t.Errorf("position %d: want Neq 3.0, got %v", i+1, v.Neq)
		}
	}
}

func TestNeqStaysInRange(t *testing.T) {
	m := matrixOf(t, "aabb", "abab", "ccdd", "mnop", "aaaa", "ppZZ")
	for _, v := range Compute(m) {
		if !v.HasData {
			t.Fatalf("position %d unexpectedly empty", v.Pos)
		}
		if v.Neq < 1.0 || v.Neq > 16.0 {
			t.Errorf("position %d: Neq %v out of [1, 16]", v.Pos, v.Neq)
		}
	}
}

func TestNeqNoDataPosition(t *testing.T) {
	s := Compute(matrixOf(t, "aZ", "aZ"))
	if !s[0].HasData {
		t.Fatal("position 1 should have data")
	}
	if s[1].HasData {
		t.Fatal("position 2 should have no data, not a number")
	}
	if s[1].Neq != 0 {
		t.Fatalf("no-data Neq should be zero-valued internally, got %v", s[1].Neq)
	}
}

func TestRestrictInclusive(t *testing.T) {
	s := Compute(matrixOf(t, "abcde"))
	sub, err := Restrict(s, 2, 4)
	if err != nil {
		t.Fatalf("restrict: %v", err)
	}
	if len(sub) != 3 || sub[0].Pos != 2 || sub[2].Pos != 4 {
		t.Fatalf("want positions 2..4, got %+v", sub)
	}
}

func TestRestrictRejectsBadRanges(t *testing.T) {
	s := Compute(matrixOf(t, "abcde"))
	for _, c := range []struct{ min, max int }{
		{4, 2},
		{0, 3},
		{1, 6},
	} {
		if _, err := Restrict(s, c.min, c.max); !errors.Is(err, ErrBadRange) {
			t.Errorf("range %d..%d: want ErrBadRange, got %v", c.min, c.max, err)
		}
	}
}

func TestCheckRange(t *testing.T) {
	for _, c := range []struct {
		lo, hi, min, max int
		ok               bool
	}{
		{1, 5, 1, 5, true},
		{1, 5, 3, 3, true},
		{5, 7, 2, 7, false},
		{1, 5, 4, 2, false},
		{1, 5, 1, 6, false},
	} {
		err := CheckRange(c.lo, c.hi, c.min, c.max)
		if c.ok && err != nil {
			t.Errorf("window %d..%d in %d..%d: unexpected error %v", c.min, c.max, c.lo, c.hi, err)
		}
		if !c.ok && !errors.Is(err, ErrBadRange) {
			t.Errorf("window %d..%d in %d..%d: want ErrBadRange, got %v", c.min, c.max, c.lo, c.hi, err)
		}
	}
}

func TestWriteLayout(t *testing.T) {
	s := Series{
		{Pos: 1, Neq: 1.0, HasData: true},
		{Pos: 2},
		{Pos: 3, Neq: 2.5, HasData: true},
	}
	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "resid ") || !strings.Contains(lines[0], "Neq") {
		t.Fatalf("bad header %q", lines[0])
	}
	if !strings.Contains(lines[1], "1.00") {
		t.Fatalf("row 1 missing value: %q", lines[1])
	}
	if !strings.Contains(lines[2], "-") {
		t.Fatalf("no-data row should show -, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "2.50") {
		t.Fatalf("row 3 missing value: %q", lines[3])
	}
}
