// Package main implements the interactive SDL CHIP-8 emulator
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/mnafees/chopper/internal"
	"github.com/mnafees/chopper/internal/config"
	"github.com/mnafees/chopper/pkg/sdl"
)

var (
	version = "0.2.0"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	program string
	tick    time.Duration
	scale   int
	keymap  string
	mute    bool

	debug bool
	quiet bool
}

func main() {
	options := readArguments()
	logger := config.CreateLogger(options.debug, options.quiet)

	if !options.quiet {
		fmt.Printf("chopper %s\n", buildinfo.Version(version, commit, date))
	}

	if err := runProgram(options, logger); err != nil {
		logger.Error("emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.DurationVar(&options.tick, "tick", 2*time.Millisecond, "time between execution steps")
	flags.IntVar(&options.scale, "scale", 20, "window pixels per CHIP-8 pixel")
	flags.StringVar(&options.keymap, "keymap", "qwerty", "keyboard layout: qwerty or hex")
	flags.BoolVar(&options.mute, "mute", false, "disable the beep")
	flags.BoolVar(&options.debug, "v", false, "verbose debug logging")
	flags.BoolVar(&options.quiet, "q", false, "only log errors")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) != 1 || options.tick <= 0 {
		fmt.Printf("usage: chopper-sdl [options] <CHIP-8 program>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.program = args[0]
	return options
}

func runProgram(options optionFlags, logger *log.Logger) error {
	keymap, err := sdl.KeymapByName(options.keymap)
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

	io := sdl.NewIO(vm, sdl.Config{
		Title:     "Chopper | CHIP-8 Emulator",
		PixelSize: int32(options.scale),
		Keymap:    keymap,
		Mute:      options.mute,
	}, logger)
	defer io.Destroy()

	if err := io.Setup(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running",
		log.String("program", options.program),
		log.Duration("tick", options.tick),
		log.String("keymap", options.keymap))

	err = io.Loop(ctx, options.tick)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}
