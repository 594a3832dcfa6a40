// Package terminal turns keyboard input into logical line-editing events.
//
// The shell never sees raw bytes: a Source yields Char, Backspace, Enter,
// Tab and Interrupt events, and io.EOF once input is exhausted.
package terminal

import "fmt"

// EventKind identifies a logical editing event.
type EventKind int

const (
	KindChar EventKind = iota
	KindBackspace
	KindEnter
	KindTab
	KindInterrupt
)

func (k EventKind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindBackspace:
		return "backspace"
	case KindEnter:
		return "enter"
	case KindTab:
		return "tab"
	case KindInterrupt:
		return "interrupt"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one logical key press. Char is only set for KindChar.
type Event struct {
	Kind EventKind
	Char rune
}

func Char(r rune) Event { return Event{Kind: KindChar, Char: r} }

var (
	Backspace = Event{Kind: KindBackspace}
	Enter     = Event{Kind: KindEnter}
	Tab       = Event{Kind: KindTab}
	Interrupt = Event{Kind: KindInterrupt}
)

// Source produces events one at a time. Next blocks until an event is
// available and returns io.EOF when input is exhausted.
type Source interface {
	Next() (Event, error)
}
