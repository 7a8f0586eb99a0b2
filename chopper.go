// Command chopper runs a CHIP-8 program headless for a fixed number of
// execution steps and prints the final display as text.
package main

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/mnafees/chopper/internal"
	"github.com/mnafees/chopper/internal/config"
	"github.com/mnafees/chopper/pkg/term"
)

var (
	version = "0.2.0"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	program string
	ticks   int
	on      string
	off     string

	debug bool
	quiet bool
}

func main() {
	options := readArguments()
	logger := config.CreateLogger(options.debug, options.quiet)

	if !options.quiet {
		fmt.Fprintf(os.Stderr, "chopper %s\n", buildinfo.Version(version, commit, date))
	}

	if err := run(options, logger, os.Stdout); err != nil {
		logger.Error("emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.IntVar(&options.ticks, "ticks", 1000, "number of execution steps to run")
	flags.StringVar(&options.on, "on", "#", "character for lit pixels")
	flags.StringVar(&options.off, "off", ".", "character for unlit pixels")
	flags.BoolVar(&options.debug, "v", false, "verbose debug logging")
	flags.BoolVar(&options.quiet, "q", false, "only log errors")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) != 1 || options.ticks < 0 {
		fmt.Printf("usage: chopper [options] <CHIP-8 program>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.program = args[0]
	return options
}

// run executes the program with no keys held and renders the last display.
func run(options optionFlags, logger *log.Logger, out io.Writer) error {
	on, err := pixelRune(options.on)
	if err != nil {
		return err
	}
	off, err := pixelRune(options.off)
	if err != nil {
		return err
	}

	vm, err := internal.NewC8VM(internal.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := vm.LoadProgram(options.program); err != nil {
		return err
	}

	var keys [internal.KeyCount]bool
	var ticks int
	for ; ticks < options.ticks; ticks++ {
		if _, err := vm.Tick(keys); err != nil {
			return errors.Wrapf(err, "tick %d", ticks)
		}
	}
	logger.Debug("finished",
		log.Int("ticks", ticks),
		log.Bool("waiting_for_key", vm.WaitingForKey()))

	pixels := vm.Pixels()
	return term.Render(out, &pixels, on, off)
}

func pixelRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("pixel character %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
