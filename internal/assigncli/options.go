// internal/assigncli/options.go
package assigncli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"pbxplore/internal/version"
)

// Options holds all pbassign flags and arguments.
type Options struct {
	PhiPsiFiles []string
	Output      string // fasta | flat | json
	Threads     int
	Version     bool
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
			`%s: assign Protein Blocks from backbone dihedral tables

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

	var phipsi stringSlice
	fs.Var(&phipsi, "phipsi", "phi-psi table file(s) (repeatable or '-') [*]")

	fs.StringVar(&opt.Output, "output", "fasta", "output format: fasta | flat | json [fasta]")
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

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
	opt.PhiPsiFiles = phipsi

	// Validation
	if len(opt.PhiPsiFiles) == 0 {
		return opt, errors.New("at least one --phipsi file is required")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "fasta" && opt.Output != "flat" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
