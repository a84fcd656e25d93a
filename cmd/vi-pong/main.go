package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/game"
)

var (
	seedFlag  = flag.Uint64("seed", 0, "RNG seed for ball serves (0 = time-based)")
	debugFlag = flag.Bool("debug", false, "Write debug log to logs/vi-pong.log")
	muteFlag  = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil && !errors.Is(err, audio.ErrAudioDisabled) {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	if sound.IsInitialized() {
		defer sound.Cleanup()
	}
	sound.SetMuted(*muteFlag)

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting vi-pong, seed %d", seed)

	driver := game.NewDriver(screen, seed, sound)

	events := make(chan tcell.Event, constant.InputChannelSize)
	go pollEvents(screen, events)

	ticker := time.NewTicker(constant.FrameInterval)
	defer ticker.Stop()

	return driver.Run(events, ticker.C)
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			// Use \r\n for raw mode compatibility
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer close(events)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}
