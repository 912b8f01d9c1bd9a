// internal/statcli/options_test.go
package statcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestCountsFileOK(t *testing.T) {
	o := mustParse(t, "--counts", "PB.count")
	if o.CountFile != "PB.count" || o.Output != "neq" {
		t.Errorf("bad parse %+v", o)
	}
}

func TestResidueWindowOK(t *testing.T) {
	o := mustParse(t, "--counts", "PB.count", "--residue-min", "3", "--residue-max", "10")
	if o.ResidueMin != 3 || o.ResidueMax != 10 {
		t.Errorf("window not honored: %+v", o)
	}
}

func TestErrorMissingCounts(t *testing.T) {
	if _, err := ParseArgs(newFS(), nil); err == nil {
		t.Fatal("expected error with no --counts")
	}
}

func TestErrorInvertedWindow(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--counts", "PB.count", "--residue-min", "10", "--residue-max", "3",
	})
	if err == nil {
		t.Fatal("expected error for min > max")
	}
}

func TestErrorNegativeBound(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--counts", "PB.count", "--residue-min", "-2",
	})
	if err == nil {
		t.Fatal("expected error for negative bound")
	}
}
