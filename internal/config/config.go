// Package config parses the command line (and an optional TOML defaults
// file) into a fully resolved, validated, clamped Options value. Argument
// parsing and usage text are an external collaborator to the core search
// algorithms (spec non-goal), so this package intentionally stays a thin,
// standard-library-based shell around the validation rules.
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

const (
	// MinWordLength is the lower clamp applied to -m.
	MinWordLength = 1
	// MaxWordLength is the upper clamp applied to -M.
	MaxWordLength = 2048

	defaultMinLen      = 1
	defaultMaxLen      = 8
	defaultSelector    = "x"
	defaultMsgInterval = 100000
)

// Usage is the text printed alongside a UsageError.
const Usage = `Usage: pkcs12crack -d <dictionary_file> | -b [-m <min>] [-M <max>] [-c <selector>] [-t <threads>] [-v] [-s <interval>] [-config <file>] [-o <file>] <file_to_crack>

  -d <dictionary_file>   Dictionary attack; wordlist path
  -b                     Brute-force attack
  -m <min>               Minimum password length (implies -b)
  -M <max>               Maximum password length (implies -b)
  -c <selector>          Character-class selector: a, A, n, s, x (requires -b/-m/-M)
  -t <threads>           Worker thread count (default: number of CPUs)
  -v                     Verbose mode
  -s <interval>          Message interval, implies -v (default 100000)
  -config <file>         Optional TOML file of defaults, overridden by flags
  -o <file>              Also write the found password to this file
`

// UsageError indicates a configuration problem that must be reported with
// Usage and process exit code 100.
type UsageError struct{ Msg string }

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Options is the fully resolved configuration for one run.
type Options struct {
	KeystorePath string
	Dictionary   string // "" if dictionary mode was not requested
	Brute        bool
	MinLen       int
	MaxLen       int
	Selector     string
	Threads      int // 0 means "use the default worker count"
	Verbose      bool
	MsgInterval  int
	OutputPath   string // "" disables writing the result to a file
}

// fileConfig models the optional TOML defaults file. Pointer fields
// distinguish "absent" from "explicitly zero/false".
type fileConfig struct {
	Threads     *int    `toml:"threads"`
	Selector    *string `toml:"selector"`
	MinLen      *int    `toml:"min_len"`
	MaxLen      *int    `toml:"max_len"`
	MsgInterval *int    `toml:"msg_interval"`
	Verbose     *bool   `toml:"verbose"`
}

// Parse parses args (excluding the program name) into a resolved Options,
// applying: built-in defaults < -config file values < explicit CLI flags,
// then the length-bound clamping and cross-flag validation rules.
func Parse(args []string) (*Options, error) {
	fs := flag.NewFlagSet("pkcs12crack", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage is rendered by the caller, via Usage

	var (
		dict       string
		brute      bool
		minLen     int
		maxLen     int
		selector   string
		threads    int
		verbose    bool
		msgInt     int
		configPath string
		outPath    string
	)

	fs.StringVar(&dict, "d", "", "dictionary file path")
	fs.BoolVar(&brute, "b", false, "brute-force attack")
	fs.IntVar(&minLen, "m", 0, "minimum password length")
	fs.IntVar(&maxLen, "M", 0, "maximum password length")
	fs.StringVar(&selector, "c", "", "character-class selector")
	fs.IntVar(&threads, "t", 0, "worker thread count")
	fs.BoolVar(&verbose, "v", false, "verbose mode")
	fs.IntVar(&msgInt, "s", 0, "message interval")
	fs.StringVar(&configPath, "config", "", "TOML config file")
	fs.StringVar(&outPath, "o", "", "write found password to this file")

	if err := fs.Parse(args); err != nil {
		return nil, usageErrorf("%v", err)
	}

	minSet := flagWasSet(fs, "m")
	maxSet := flagWasSet(fs, "M")
	cSet := flagWasSet(fs, "c")
	msgIntSet := flagWasSet(fs, "s")

	if msgIntSet {
		verbose = true
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, usageErrorf("exactly one keystore path is required, got %d", len(rest))
	}

	opt := &Options{
		KeystorePath: rest[0],
		Dictionary:   dict,
		Brute:        brute || minSet || maxSet,
		Selector:     defaultSelector,
		MinLen:       defaultMinLen,
		MaxLen:       defaultMaxLen,
		Verbose:      verbose,
		MsgInterval:  defaultMsgInterval,
		OutputPath:   outPath,
	}

	if configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err != nil {
			return nil, usageErrorf("reading config file %s: %v", configPath, err)
		}
		applyFileConfig(opt, &fc, msgIntSet, verbose)
	}

	if dict == "" && !opt.Brute {
		return nil, usageErrorf("at least one of -d or -b is required")
	}
	if cSet && !opt.Brute {
		return nil, usageErrorf("-c requires -b, -m, or -M")
	}

	// -t 0 is indistinguishable from "not supplied" and falls through to the
	// default worker count; degenerate enough in practice not to special-case.
	if threads != 0 {
		opt.Threads = threads
	}
	if cSet {
		opt.Selector = selector
	}
	if opt.Selector == "" {
		opt.Selector = defaultSelector
	}

	switch {
	case minSet && maxSet:
		opt.MinLen, opt.MaxLen = minLen, maxLen
		if opt.MinLen > opt.MaxLen {
			return nil, usageErrorf("-m (%d) must not exceed -M (%d)", opt.MinLen, opt.MaxLen)
		}
	case minSet:
		opt.MinLen, opt.MaxLen = minLen, minLen
	case maxSet:
		opt.MinLen, opt.MaxLen = maxLen, maxLen
	}

	if msgIntSet {
		opt.MsgInterval = msgInt
	}

	opt.MinLen = clampLength(opt.MinLen)
	opt.MaxLen = clampLength(opt.MaxLen)

	return opt, nil
}

func applyFileConfig(opt *Options, fc *fileConfig, msgIntSet, cliVerbose bool) {
	if fc.Threads != nil {
		opt.Threads = *fc.Threads
	}
	if fc.Selector != nil {
		opt.Selector = *fc.Selector
	}
	if fc.MinLen != nil {
		opt.MinLen = *fc.MinLen
	}
	if fc.MaxLen != nil {
		opt.MaxLen = *fc.MaxLen
	}
	if fc.MsgInterval != nil {
		opt.MsgInterval = *fc.MsgInterval
		if !msgIntSet {
			opt.Verbose = true
		}
	}
	if fc.Verbose != nil && !cliVerbose {
		opt.Verbose = *fc.Verbose
	}
}

func clampLength(v int) int {
	if v < MinWordLength {
		return MinWordLength
	}
	if v > MaxWordLength {
		return MaxWordLength
	}
	return v
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
