// Command pkcs12crack recovers the passphrase of a PKCS#12 (PFX) keystore
// by exhaustively testing candidate passwords, from a wordlist and/or a
// brute-force character alphabet, against the keystore's integrity MAC.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeycumines/pkcs12crack/internal/alphabet"
	"github.com/joeycumines/pkcs12crack/internal/config"
	"github.com/joeycumines/pkcs12crack/internal/cracklog"
	"github.com/joeycumines/pkcs12crack/internal/oracle"
	"github.com/joeycumines/pkcs12crack/internal/resultfile"
	"github.com/joeycumines/pkcs12crack/internal/search"
	"github.com/joeycumines/pkcs12crack/internal/sysinfo"
)

const (
	exitOK            = 0
	exitKeystoreIO    = 10
	exitWordlistIO    = 20
	exitKeystoreParse = 30
	exitUsage         = 100
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opt, err := config.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, config.Usage)
		return exitUsage
	}

	log := cracklog.New(stderr, opt.Verbose)

	sysinfo.Tune(func(format string, a ...any) {
		log.Debug().Msgf(format, a...)
	})

	threads := opt.Threads
	if threads <= 0 {
		threads = sysinfo.WorkerCount()
	}

	log.Debug().
		Int("threads", threads).
		Bool("dictionary", opt.Dictionary != "").
		Bool("brute", opt.Brute).
		Uint64("total_memory_bytes", sysinfo.TotalMemory()).
		Msg("starting search")

	var alpha []byte
	if opt.Brute {
		a, err := alphabet.Build(opt.Selector)
		if err != nil {
			fmt.Fprintln(stderr, err)
			fmt.Fprint(stderr, config.Usage)
			return exitUsage
		}
		alpha = a
	}

	o, err := oracle.Open(opt.KeystorePath)
	if err != nil {
		log.Error().Err(err).Msg(err.Error())
		var oe *oracle.Error
		if errors.As(err, &oe) && oe.Kind == oracle.KindUnparseable {
			return exitKeystoreParse
		}
		return exitKeystoreIO
	}

	coordinator := &search.Coordinator{
		Oracle:      o,
		Threads:     threads,
		MsgInterval: msgIntervalFor(opt),
		Out:         stdout,
	}

	ctx := context.Background()
	var result *search.Result

	if opt.Dictionary != "" {
		result, err = coordinator.RunDictionary(ctx, opt.Dictionary)
		if err != nil {
			log.Error().Err(err).Msgf("wordlist file not found: %s", opt.Dictionary)
			return exitWordlistIO
		}
	}

	if result == nil && opt.Brute {
		result, err = coordinator.RunBrute(ctx, alpha, opt.MinLen, opt.MaxLen)
		if err != nil {
			// no recoverable runtime errors are expected once the worker
			// pool is running; surface anything unexpected as a usage-free
			// internal failure via the generic I/O exit code.
			log.Error().Err(err).Msg("brute-force search failed")
			return exitKeystoreIO
		}
	}

	if result == nil {
		fmt.Fprintln(stdout, "No password found")
		return exitOK
	}

	if opt.OutputPath != "" {
		if err := resultfile.Write(opt.OutputPath, result.Password); err != nil {
			log.Error().Err(err).Msgf("failed to write result file: %s", opt.OutputPath)
		}
	}

	return exitOK
}

// msgIntervalFor maps "verbose, but no explicit interval configured" to the
// spec-mandated default, and "not verbose" to 0 (disabled), while always
// honoring an explicit -s 0 (disables messages even though -s implies -v).
func msgIntervalFor(opt *config.Options) int {
	if !opt.Verbose {
		return 0
	}
	return opt.MsgInterval
}
