package playback

import (
	"testing"
	"time"

	"workout_tui/internal/audio"
	"workout_tui/internal/input"
	"workout_tui/internal/screen"
)

func sec(n int) time.Duration { return time.Duration(n) * time.Second }

func testScreens() []screen.Screen {
	return []screen.Screen{
		{Body: "warm", Kind: screen.WarmUp, Duration: sec(3)},
		{Body: "ex", Kind: screen.Exercise, Slot: 1, Duration: sec(20)},
		{Body: "rest", Kind: screen.Rest, Duration: sec(60)},
		{Body: "cool", Kind: screen.Cooldown, Duration: sec(600)},
	}
}

func newTestSession() *Session {
	return NewSession(testScreens(), screen.Screen{Body: "fallback", Kind: screen.Cooldown, Duration: sec(600)})
}

func TestAutoAdvanceAfterDuration(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 2; i++ {
		s.Tick()
	}
	if s.Index() != 0 || s.Elapsed() != sec(2) {
		t.Fatalf("after 2 ticks: index %d elapsed %v", s.Index(), s.Elapsed())
	}
	s.Tick()
	if s.Index() != 1 || s.Elapsed() != 0 {
		t.Errorf("after 3 ticks: index %d elapsed %v, want 1 0s", s.Index(), s.Elapsed())
	}
}

func TestTickCueOncePerScreen(t *testing.T) {
	s := newTestSession()
	ticks := map[int]int{}
	for i := 0; i < 3+20+60+600+30; i++ {
		for _, c := range s.Cues() {
			if c == audio.Tick {
				ticks[s.Index()]++
			}
		}
		s.Tick()
	}
	// The warm-up is shorter than the forewarning and never reaches it.
	want := map[int]int{1: 1, 2: 1}
	for i := 0; i < 4; i++ {
		if ticks[i] != want[i] {
			t.Errorf("screen %d: %d tick cues, want %d", i, ticks[i], want[i])
		}
	}
}

func TestStartCues(t *testing.T) {
	s := newTestSession()
	if got := s.Cues(); len(got) != 0 {
		t.Errorf("warm-up start cues = %v, want none", got)
	}
	s.Handle(input.Key{Code: input.Down})
	if got := s.Cues(); len(got) != 1 || got[0] != audio.Bell {
		t.Errorf("exercise start cues = %v, want [bell]", got)
	}
	s.Handle(input.Key{Code: input.Right})
	if got := s.Cues(); len(got) != 1 || got[0] != audio.Whistle {
		t.Errorf("rest start cues = %v, want [whistle]", got)
	}
	s.Tick()
	if got := s.Cues(); len(got) != 0 {
		t.Errorf("cues one second in = %v, want none", got)
	}
}

func TestNavigation(t *testing.T) {
	s := newTestSession()
	s.Tick()

	if a := s.Handle(input.Key{Code: input.Up}); a != Navigated || s.Index() != 0 || s.Elapsed() != 0 {
		t.Errorf("Up at 0: action %v index %d elapsed %v", a, s.Index(), s.Elapsed())
	}
	if a := s.Handle(input.Key{Code: input.End}); a != Navigated || s.Index() != 3 {
		t.Errorf("End: action %v index %d", a, s.Index())
	}
	s.Tick()
	if a := s.Handle(input.Key{Code: input.Down}); a != Ignored || s.Index() != 3 || s.Elapsed() != sec(1) {
		t.Errorf("Down at max: action %v index %d elapsed %v", a, s.Index(), s.Elapsed())
	}
	if a := s.Handle(input.Key{Code: input.Left}); a != Navigated || s.Index() != 2 {
		t.Errorf("Left: action %v index %d", a, s.Index())
	}
	if a := s.Handle(input.Key{Code: input.Home}); a != Navigated || s.Index() != 0 {
		t.Errorf("Home: action %v index %d", a, s.Index())
	}
	if a := s.Handle(input.RuneKey('x')); a != Ignored {
		t.Errorf("x: action %v, want Ignored", a)
	}
	if a := s.Handle(input.Key{Code: input.Other}); a != Ignored {
		t.Errorf("other: action %v, want Ignored", a)
	}
	if a := s.Handle(input.RuneKey('q')); a != Quit {
		t.Errorf("q: action %v, want Quit", a)
	}
}

func TestLastScreenDwells(t *testing.T) {
	s := newTestSession()
	s.Handle(input.Key{Code: input.End})
	for i := 0; i < 605; i++ {
		s.Tick()
	}
	f := s.Frame()
	if f.Index != 3 {
		t.Fatalf("index = %d, want 3", f.Index)
	}
	if !f.Overtime || f.Remaining != 0 || f.Elapsed != sec(605) {
		t.Errorf("frame = %+v, want overtime with 605s elapsed", f)
	}
	if !f.TotalOvertime {
		t.Error("session should be in overtime")
	}
}

func TestFrameTotals(t *testing.T) {
	s := newTestSession()
	s.Handle(input.Key{Code: input.Down})
	s.Handle(input.Key{Code: input.Down})
	s.Tick()
	s.Tick()

	f := s.Frame()
	if f.TotalElapsed != sec(3+20+2) {
		t.Errorf("TotalElapsed = %v", f.TotalElapsed)
	}
	if f.TotalRemaining != sec(683-25) || f.TotalOvertime {
		t.Errorf("TotalRemaining = %v overtime %v", f.TotalRemaining, f.TotalOvertime)
	}
	if f.Remaining != sec(58) || f.Overtime {
		t.Errorf("Remaining = %v overtime %v", f.Remaining, f.Overtime)
	}
	if f.Screen.Kind != screen.Rest {
		t.Errorf("Screen.Kind = %v", f.Screen.Kind)
	}
}

func TestEmptySessionFallsBack(t *testing.T) {
	s := NewSession(nil, screen.Screen{Body: "fallback", Kind: screen.Cooldown, Duration: sec(600)})
	f := s.Frame()
	if f.Screen.Body != "fallback" || f.Index != 0 {
		t.Errorf("frame = %+v", f)
	}
	s.Tick()
	if s.Handle(input.Key{Code: input.Down}) != Ignored {
		t.Error("Down on empty session should be ignored")
	}
}

func TestResult(t *testing.T) {
	s := newTestSession()
	s.Handle(input.Key{Code: input.Down})
	s.Handle(input.Key{Code: input.Down})
	s.Handle(input.Key{Code: input.Home})
	s.Tick()

	r := s.Result()
	if r.Furthest != 2 || r.Screens != 4 || r.Spent != sec(1) || r.Completed {
		t.Errorf("Result = %+v", r)
	}

	s.Handle(input.Key{Code: input.End})
	if !s.Result().Completed {
		t.Error("reaching the last screen should complete the session")
	}
}
