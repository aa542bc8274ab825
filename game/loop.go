// @focus: #lifecycle { loop }
package game

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/lifeterm/life"
	"github.com/lixenwraith/lifeterm/render"
	"github.com/lixenwraith/lifeterm/status"
	"github.com/lixenwraith/lifeterm/terminal"
)

// Screen is a presentation backend: the raw ANSI terminal or tcell
type Screen interface {
	Size() (cols, rows int, err error)
	ReadKey() (terminal.Event, error)
	Present(render.View) error
	Close() error
}

// Sounder receives audible feedback triggers; nil disables sound
type Sounder interface {
	Cue(life.Outcome)
	Stepped()
}

// NewGame sizes an engine to the screen geometry
func NewGame(s Screen) (*life.Game, error) {
	cols, rows, err := s.Size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	gr, gc, err := life.DimensionsFor(cols, rows)
	if err != nil {
		return nil, err
	}
	log.Printf("Terminal %dx%d, grid %d rows x %d cols", cols, rows, gr, gc)
	return life.New(gr, gc), nil
}

// Loop drives one engine from one screen on a single goroutine
type Loop struct {
	screen Screen
	game   *life.Game
	sound  Sounder
	stats  *status.Registry

	// Cached counters
	frames      *atomic.Int64
	keys        *atomic.Int64
	generations *atomic.Int64
}

// NewLoop wires a loop; sound may be nil
func NewLoop(s Screen, g *life.Game, sound Sounder, stats *status.Registry) *Loop {
	if stats == nil {
		stats = status.NewRegistry()
	}
	return &Loop{
		screen:      s,
		game:        g,
		sound:       sound,
		stats:       stats,
		frames:      stats.Ints.Get(status.Frames),
		keys:        stats.Ints.Get(status.Keys),
		generations: stats.Ints.Get(status.Generations),
	}
}

// Game returns the driven engine
func (l *Loop) Game() *life.Game { return l.game }

// Stats returns the session counters
func (l *Loop) Stats() *status.Registry { return l.stats }

// Run renders, reads one key, applies it and advances until quit or an I/O error
// Quit returns nil; the caller closes the screen
func (l *Loop) Run() error {
	for {
		if err := l.screen.Present(render.Snapshot(l.game)); err != nil {
			return fmt.Errorf("present: %w", err)
		}
		l.frames.Add(1)

		ev, err := l.screen.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		if l.handle(ev) {
			log.Printf("Quit after %d generations", l.game.StepCount())
			return nil
		}

		if l.game.Advance() {
			l.generations.Add(1)
			l.stats.Max(status.PeakPopulation, int64(l.game.Population()))
			if l.sound != nil {
				l.sound.Stepped()
			}
		}
	}
}

// handle applies one event and reports whether the loop should stop
func (l *Loop) handle(ev terminal.Event) bool {
	if ev.Key == terminal.KeyNone {
		return false
	}
	l.keys.Add(1)

	out := l.game.Apply(ev)
	if out == life.OutcomeNone {
		return false
	}
	log.Printf("Key %v: %v (mode %v, step %d)", ev, out, l.game.Mode(), l.game.StepCount())

	switch out {
	case life.OutcomeQuit:
		return true
	case life.OutcomeSaved:
		l.stats.Inc(status.Saves)
	case life.OutcomeLoaded:
		l.stats.Inc(status.Loads)
	case life.OutcomeReset:
		l.stats.Inc(status.Resets)
	}

	if l.sound != nil {
		l.sound.Cue(out)
	}
	return false
}
