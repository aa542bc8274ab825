package game

import (
	"errors"
	"testing"

	"github.com/lixenwraith/lifeterm/life"
	"github.com/lixenwraith/lifeterm/render"
	"github.com/lixenwraith/lifeterm/status"
	"github.com/lixenwraith/lifeterm/terminal"
)

// scriptScreen replays a fixed key script, then reports KeyNone forever
type scriptScreen struct {
	cols, rows int
	sizeErr    error
	keys       []terminal.Event
	readErr    error
	presentErr error

	presented []render.View
	reads     int
}

func (s *scriptScreen) Size() (int, int, error) { return s.cols, s.rows, s.sizeErr }

func (s *scriptScreen) ReadKey() (terminal.Event, error) {
	s.reads++
	if len(s.keys) == 0 {
		if s.readErr != nil {
			return terminal.Event{}, s.readErr
		}
		return terminal.Event{Key: terminal.KeyNone}, nil
	}
	ev := s.keys[0]
	s.keys = s.keys[1:]
	return ev, nil
}

func (s *scriptScreen) Present(v render.View) error {
	s.presented = append(s.presented, v)
	return s.presentErr
}

func (s *scriptScreen) Close() error { return nil }

type recordSounder struct {
	cues  []life.Outcome
	steps int
}

func (r *recordSounder) Cue(o life.Outcome) { r.cues = append(r.cues, o) }
func (r *recordSounder) Stepped()           { r.steps++ }

func key(k terminal.Key) terminal.Event { return terminal.Event{Key: k} }

func TestNewGameSizesGrid(t *testing.T) {
	g, err := NewGame(&scriptScreen{cols: 80, rows: 24})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	if g.Rows() != 21 || g.Cols() != 39 {
		t.Errorf("Expected 21x39 grid, got %dx%d", g.Rows(), g.Cols())
	}
}

func TestNewGameErrors(t *testing.T) {
	if _, err := NewGame(&scriptScreen{cols: 2, rows: 2}); !errors.Is(err, life.ErrTooSmall) {
		t.Errorf("Expected ErrTooSmall, got %v", err)
	}
	if _, err := NewGame(&scriptScreen{sizeErr: terminal.ErrGeometry}); !errors.Is(err, terminal.ErrGeometry) {
		t.Errorf("Expected ErrGeometry, got %v", err)
	}
}

func TestLoopQuit(t *testing.T) {
	s := &scriptScreen{keys: []terminal.Event{key(terminal.KeyCtrlQ)}}
	l := NewLoop(s, life.New(5, 5), nil, nil)

	if err := l.Run(); err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if len(s.presented) != 1 {
		t.Errorf("Expected 1 frame before quit, got %d", len(s.presented))
	}
	if l.Stats().Value(status.Frames) != 1 || l.Stats().Value(status.Keys) != 1 {
		t.Errorf("Unexpected counters: %s", l.Stats().Summary())
	}
}

func TestLoopStepOnceAdvancesOnce(t *testing.T) {
	s := &scriptScreen{keys: []terminal.Event{
		key(terminal.KeyF6),
		key(terminal.KeyNone),
		key(terminal.KeyNone),
		key(terminal.KeyCtrlQ),
	}}
	snd := &recordSounder{}
	l := NewLoop(s, life.New(5, 5), snd, status.NewRegistry())

	if err := l.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if l.Game().StepCount() != 1 {
		t.Errorf("Expected 1 generation, got %d", l.Game().StepCount())
	}
	if snd.steps != 1 {
		t.Errorf("Expected 1 step cue, got %d", snd.steps)
	}
	if s.presented[1].Mode != life.Paused || s.presented[1].Steps != 1 {
		t.Errorf("Expected second frame paused at step 1, got %v at %d", s.presented[1].Mode, s.presented[1].Steps)
	}
}

func TestLoopContinuousRunsEveryIteration(t *testing.T) {
	s := &scriptScreen{keys: []terminal.Event{
		key(terminal.KeyF5),
		key(terminal.KeyNone),
		key(terminal.KeyNone),
		key(terminal.KeyF5),
		key(terminal.KeyNone),
		key(terminal.KeyCtrlQ),
	}}
	l := NewLoop(s, life.New(5, 5), nil, nil)

	if err := l.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// F5 turn plus two idle turns advance; the second F5 pauses before its turn advances
	if got := l.Game().StepCount(); got != 3 {
		t.Errorf("Expected 3 generations, got %d", got)
	}
	if got := l.Stats().Value(status.Generations); got != 3 {
		t.Errorf("Expected generation counter 3, got %d", got)
	}
}

func TestLoopCuesAndCounters(t *testing.T) {
	s := &scriptScreen{keys: []terminal.Event{
		{Key: terminal.KeyRune, Rune: ' '},
		key(terminal.KeyRight),
		key(terminal.KeyCtrlS),
		key(terminal.KeyCtrlR),
		key(terminal.KeyCtrlL),
		{Key: terminal.KeyRune, Rune: 'z'},
		key(terminal.KeyCtrlQ),
	}}
	snd := &recordSounder{}
	l := NewLoop(s, life.New(5, 5), snd, nil)

	if err := l.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []life.Outcome{life.OutcomeToggled, life.OutcomeMoved, life.OutcomeSaved, life.OutcomeReset, life.OutcomeLoaded}
	if len(snd.cues) != len(want) {
		t.Fatalf("Expected %d cues, got %v", len(want), snd.cues)
	}
	for i := range want {
		if snd.cues[i] != want[i] {
			t.Errorf("Cue %d: expected %v, got %v", i, want[i], snd.cues[i])
		}
	}

	st := l.Stats()
	if st.Value(status.Saves) != 1 || st.Value(status.Loads) != 1 || st.Value(status.Resets) != 1 {
		t.Errorf("Unexpected counters: %s", st.Summary())
	}
	if st.Value(status.Keys) != 7 {
		t.Errorf("Expected 7 keys, got %d", st.Value(status.Keys))
	}
	if l.Game().Population() != 1 {
		t.Errorf("Expected loaded snapshot with 1 live cell, got %d", l.Game().Population())
	}
}

func TestLoopPeakPopulation(t *testing.T) {
	g := life.New(5, 5)
	// Blinker keeps population at 3
	g.Current().Set(1, 2, life.Alive)
	g.Current().Set(2, 2, life.Alive)
	g.Current().Set(3, 2, life.Alive)

	s := &scriptScreen{keys: []terminal.Event{key(terminal.KeyF5), key(terminal.KeyCtrlQ)}}
	l := NewLoop(s, g, nil, nil)
	if err := l.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := l.Stats().Value(status.PeakPopulation); got != 3 {
		t.Errorf("Expected peak population 3, got %d", got)
	}
}

func TestLoopReadErrorIsFatal(t *testing.T) {
	boom := errors.New("boom")
	s := &scriptScreen{readErr: boom}
	l := NewLoop(s, life.New(3, 3), nil, nil)

	if err := l.Run(); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped read error, got %v", err)
	}
}

func TestLoopPresentErrorIsFatal(t *testing.T) {
	boom := errors.New("write failed")
	s := &scriptScreen{presentErr: boom}
	l := NewLoop(s, life.New(3, 3), nil, nil)

	if err := l.Run(); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped present error, got %v", err)
	}
	if s.reads != 0 {
		t.Errorf("Expected no reads after failed present, got %d", s.reads)
	}
}
