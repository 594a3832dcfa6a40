package terminal

import "io"

// ScriptSource replays a fixed list of events, then returns Err
// (io.EOF when Err is nil).
type ScriptSource struct {
	events []Event
	pos    int
	Err    error
}

// NewScriptSource creates a source replaying events in order.
func NewScriptSource(events ...Event) *ScriptSource {
	return &ScriptSource{events: events}
}

// Type appends one Char event per rune of s.
func (s *ScriptSource) Type(text string) *ScriptSource {
	for _, r := range text {
		s.events = append(s.events, Char(r))
	}
	return s
}

// Press appends the given events.
func (s *ScriptSource) Press(events ...Event) *ScriptSource {
	s.events = append(s.events, events...)
	return s
}

// Line types text followed by Enter.
func (s *ScriptSource) Line(text string) *ScriptSource {
	return s.Type(text).Press(Enter)
}

func (s *ScriptSource) Next() (Event, error) {
	if s.pos >= len(s.events) {
		if s.Err != nil {
			return Event{}, s.Err
		}
		return Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// Remaining reports how many events have not been consumed yet.
func (s *ScriptSource) Remaining() int {
	return len(s.events) - s.pos
}
