package countapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFasta(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestRun_CountTable(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFasta(t, dir, "a.fasta", ">f1\nmmmm\n>f2\nmmZm\n")
	f2 := writeFasta(t, dir, "b.fasta", ">f3\nabcd\n")
	var out, errBuf bytes.Buffer
	code := Run([]string{"--pb-fasta", f1, "--pb-fasta", f2}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("want header + 4 rows, got %d lines:\n%s", len(lines), out.String())
	}
	// Position 3: one m, one c, one frame undefined there.
	row3 := strings.Fields(lines[3])
	if row3[0] != "3" {
		t.Fatalf("row 3 starts with %q", row3[0])
	}
	if row3[13] != "1" { // column m
		t.Fatalf("row 3 m count: %s", row3[13])
	}
	if row3[3] != "1" { // column c
		t.Fatalf("row 3 c count: %s", row3[3])
	}
}

func TestRun_MergeLengthMismatch(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFasta(t, dir, "a.fasta", ">f1\nmmmm\n")
	f2 := writeFasta(t, dir, "b.fasta", ">f2\nmm\n")
	var out, errBuf bytes.Buffer
	code := Run([]string{"--pb-fasta", f1, "--pb-fasta", f2}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("want exit 1 for incompatible sources, got %d", code)
	}
	if !strings.Contains(errBuf.String(), "cannot merge") {
		t.Fatalf("missing merge diagnostic: %s", errBuf.String())
	}
}

func TestRun_InvalidLetter(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFasta(t, dir, "a.fasta", ">f1\nmmqx\n")
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--pb-fasta", f1}, &out, &errBuf); code != 2 {
		t.Fatalf("want exit 2 for invalid alphabet, got %d", code)
	}
}

func TestRun_TransfacOutput(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFasta(t, dir, "a.fasta", ">f1\nmm\n")
	var out, errBuf bytes.Buffer
	code := Run([]string{"--pb-fasta", f1, "--output", "transfac", "--id", "chain A"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	if !strings.HasPrefix(out.String(), "ID chain A\nBF unknown\n") {
		t.Fatalf("unexpected transfac output:\n%s", out.String())
	}
}

func TestRun_FirstPosition(t *testing.T) {
	dir := t.TempDir()
	f1 := writeFasta(t, dir, "a.fasta", ">f1\nmm\n")
	var out, errBuf bytes.Buffer
	code := Run([]string{"--pb-fasta", f1, "--first-position", "5"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}
	lines := strings.Split(out.String(), "\n")
	if !strings.HasPrefix(lines[1], "5    ") {
		t.Fatalf("first row should be numbered 5: %q", lines[1])
	}
}
