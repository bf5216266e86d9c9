package playback

import (
	"time"

	"workout_tui/internal/audio"
	"workout_tui/internal/cursor"
	"workout_tui/internal/input"
	"workout_tui/internal/screen"
	"workout_tui/internal/timer"
)

// Action is what handling a key did to the session.
type Action int

const (
	Ignored Action = iota
	Navigated
	Quit
)

// Session is the playback state: which screen is current and how long it
// has been shown. It has no clock of its own; Tick advances it by a second.
type Session struct {
	screens  []screen.Screen
	fallback screen.Screen
	starts   []time.Duration
	total    time.Duration

	cur      cursor.Cursor
	elapsed  time.Duration
	spent    time.Duration
	furthest int
}

func NewSession(screens []screen.Screen, fallback screen.Screen) *Session {
	starts, total := screen.Offsets(screens)
	return &Session{
		screens:  screens,
		fallback: fallback,
		starts:   starts,
		total:    total,
		cur:      cursor.New(len(screens) - 1),
	}
}

// Frame is everything one render needs.
type Frame struct {
	Index  int
	Count  int
	Screen screen.Screen

	Elapsed   time.Duration
	Remaining time.Duration
	Overtime  bool

	TotalElapsed   time.Duration
	TotalRemaining time.Duration
	TotalOvertime  bool
}

func (s *Session) Index() int { return s.cur.Value() }

func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Total is the summed length of every screen.
func (s *Session) Total() time.Duration { return s.total }

func (s *Session) Last() bool { return s.cur.AtEnd() }

func (s *Session) Current() screen.Screen { return s.screenAt(s.cur.Value()) }

func (s *Session) offset(i int) time.Duration {
	if i < len(s.starts) {
		return s.starts[i]
	}
	return s.total
}

func (s *Session) screenAt(i int) screen.Screen {
	if i < 0 || i >= len(s.screens) {
		return s.fallback
	}
	return s.screens[i]
}

func (s *Session) Frame() Frame {
	i := s.cur.Value()
	cur := s.screenAt(i)
	f := Frame{
		Index:        i,
		Count:        len(s.screens),
		Screen:       cur,
		Elapsed:      s.elapsed,
		TotalElapsed: s.offset(i) + s.elapsed,
	}
	f.Remaining, f.Overtime = timer.Remaining(f.Elapsed, cur.Duration)
	f.TotalRemaining, f.TotalOvertime = timer.Remaining(f.TotalElapsed, s.total)
	return f
}

// Cues returns the sounds due at the current state.
func (s *Session) Cues() []audio.Cue {
	cur := s.Current()
	remaining, _ := timer.Remaining(s.elapsed, cur.Duration)
	return audio.Cues(cur.Kind, remaining, s.elapsed, s.cur.AtEnd())
}

// Handle applies one key. Moving forward from the last screen is ignored so
// the caller keeps ticking.
func (s *Session) Handle(k input.Key) Action {
	switch k.Code {
	case input.Rune:
		if k.Rune == 'q' {
			return Quit
		}
		return Ignored
	case input.Up, input.Left:
		s.cur.Retreat(1)
	case input.Home:
		s.cur.Home()
	case input.Down, input.Right:
		if s.cur.AtEnd() {
			return Ignored
		}
		s.cur.Advance(1)
	case input.End:
		s.cur.End()
	default:
		return Ignored
	}
	s.moved()
	return Navigated
}

// Tick records one second on the current screen and moves on when the
// screen's time is up, unless it is the last one.
func (s *Session) Tick() {
	s.elapsed += time.Second
	s.spent += time.Second
	if s.elapsed >= s.Current().Duration && !s.cur.AtEnd() {
		s.cur.Advance(1)
		s.moved()
	}
}

func (s *Session) moved() {
	s.elapsed = 0
	if v := s.cur.Value(); v > s.furthest {
		s.furthest = v
	}
}

// Result summarises a finished session.
type Result struct {
	Furthest  int
	Screens   int
	Spent     time.Duration
	Completed bool
}

func (s *Session) Result() Result {
	return Result{
		Furthest:  s.furthest,
		Screens:   len(s.screens),
		Spent:     s.spent,
		Completed: len(s.screens) > 0 && s.furthest == s.cur.Max(),
	}
}
