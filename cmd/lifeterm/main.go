package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/lifeterm/audio"
	"github.com/lixenwraith/lifeterm/core"
	"github.com/lixenwraith/lifeterm/game"
	"github.com/lixenwraith/lifeterm/render"
	"github.com/lixenwraith/lifeterm/status"
	"github.com/lixenwraith/lifeterm/terminal"
)

var (
	backendFlag = flag.String("backend", "ansi", "Screen backend: ansi, tcell")
	soundFlag   = flag.Bool("sound", false, "Play audio cues")
	volumeFlag  = flag.Float64("volume", audio.DefaultVolume, "Master volume for audio cues (0.0-1.0)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := openScreen(*backendFlag)
	if err != nil {
		return fatal(os.Stdout, nil, err)
	}
	defer screen.Close()
	watchSignals(screen)

	g, err := game.NewGame(screen)
	if err != nil {
		return fatal(os.Stdout, screen, err)
	}

	stats := status.NewRegistry()

	var sounder game.Sounder
	if *soundFlag {
		sm := audio.NewSoundManager(*volumeFlag)
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			sounder = sm
		}
	}
	stats.Bools.Get(status.SoundEnabled).Store(sounder != nil)

	loop := game.NewLoop(screen, g, sounder, stats)
	if err := loop.Run(); err != nil {
		return fatal(os.Stdout, screen, err)
	}

	log.Printf("Session: %s", stats.Summary())
	return 0
}

// openScreen starts the selected backend and registers it for crash restore
func openScreen(backend string) (game.Screen, error) {
	switch backend {
	case "ansi":
		t, err := terminal.Open()
		if err != nil {
			return nil, err
		}
		core.RegisterTerminal(t)
		log.Printf("Backend: ansi")
		return render.NewANSIScreen(t), nil
	case "tcell":
		ts, err := render.NewTcellScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell: %w", err)
		}
		core.RegisterTerminal(ts)
		log.Printf("Backend: tcell")
		return ts, nil
	}
	return nil, fmt.Errorf("backend: unknown %q", backend)
}

// fatal restores the terminal, clears it and reports err with a raw-mode safe line ending
func fatal(out io.Writer, screen game.Screen, err error) int {
	log.Printf("Fatal: %v", err)
	if screen != nil {
		screen.Close()
	} else {
		io.WriteString(out, "\x1b[2J\x1b[H")
	}
	fmt.Fprintf(os.Stderr, "%v\r\n", err)
	return 1
}

// watchSignals restores the terminal and exits on termination signals
// Raw mode disables ISIG, so Ctrl-C arrives as a key, not SIGINT
func watchSignals(screen game.Screen) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP, os.Interrupt)
	core.Go(func() {
		sig := <-sigs
		log.Printf("Signal %v, restoring terminal", sig)
		screen.Close()
		os.Exit(1)
	})
}
