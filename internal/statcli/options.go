// internal/statcli/options.go
package statcli

import (
	"errors"
	"flag"
	"fmt"

	"pbxplore/internal/version"
)

// Options holds all pbstat flags and arguments.
type Options struct {
	CountFile  string
	Output     string // neq | json
	ResidueMin int    // 0 = unset
	ResidueMax int    // 0 = unset
	Version    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: compute the Neq diversity score from a PB count table

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

	fs.StringVar(&opt.CountFile, "counts", "", "count table file, '-' for stdin [*]")
	fs.StringVar(&opt.Output, "output", "neq", "output format: neq | json [neq]")
	fs.IntVar(&opt.ResidueMin, "residue-min", 0, "inclusive lower bound of the position window (0 = first) [0]")
	fs.IntVar(&opt.ResidueMax, "residue-max", 0, "inclusive upper bound of the position window (0 = last) [0]")

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

	// Validation
	if opt.CountFile == "" {
		return opt, errors.New("--counts is required")
	}
	if opt.ResidueMin < 0 || opt.ResidueMax < 0 {
		return opt, errors.New("--residue-min/--residue-max must be ≥ 0")
	}
	if opt.ResidueMin != 0 && opt.ResidueMax != 0 && opt.ResidueMin > opt.ResidueMax {
		return opt, errors.New("--residue-min must be ≤ --residue-max")
	}
	if opt.Output != "neq" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
