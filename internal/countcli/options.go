// internal/countcli/options.go
package countcli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"pbxplore/internal/version"
)

// Options holds all pbcount flags and arguments.
type Options struct {
	FastaFiles    []string
	Output        string // count | transfac | json
	FirstPosition int
	ID            string // identifier for transfac output
	Version       bool
}

type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: aggregate PB sequences into a per-position count matrix

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var fastas stringSlice
	fs.Var(&fastas, "pb-fasta", "PB fasta file(s) (repeatable or '-') [*]")

	fs.StringVar(&opt.Output, "output", "count", "output format: count | transfac | json [count]")
	fs.IntVar(&opt.FirstPosition, "first-position", 1, "position number of the first matrix row [1]")
	fs.StringVar(&opt.ID, "id", "PB", "identifier used in transfac output [PB]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.FastaFiles = fastas

	// Validation
	if len(opt.FastaFiles) == 0 {
		return opt, errors.New("at least one --pb-fasta file is required")
	}
	if opt.FirstPosition < 1 {
		return opt, errors.New("--first-position must be ≥ 1")
	}
	if opt.Output != "count" && opt.Output != "transfac" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
