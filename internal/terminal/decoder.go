package terminal

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"
)

const (
	keyCtrlC      = 0x03
	keyCtrlD      = 0x04
	keyCtrlH      = 0x08
	keyTab        = '\t'
	keyLF         = '\n'
	keyCR         = '\r'
	keyEscape     = 0x1b
	keyDelete     = 0x7f
	csiIntroducer = '['
	ss3Introducer = 'O'
)

// Decoder reads a byte stream, typically a terminal in raw mode or a pipe,
// and decodes it into events.
//
// CR, LF and CRLF all produce a single Enter. Escape sequences for cursor
// and function keys are consumed and dropped; a lone Escape is an
// Interrupt. Ctrl-D ends input.
type Decoder struct {
	r      *bufio.Reader
	lastCR bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

func (d *Decoder) Next() (Event, error) {
	for {
		r, size, err := d.r.ReadRune()
		if err != nil {
			return Event{}, err
		}
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 byte.
			d.lastCR = false
			continue
		}

		wasCR := d.lastCR
		d.lastCR = r == keyCR

		switch {
		case r == keyLF && wasCR:
			continue
		case r == keyCR || r == keyLF:
			return Enter, nil
		case r == keyTab:
			return Tab, nil
		case r == keyDelete || r == keyCtrlH:
			return Backspace, nil
		case r == keyCtrlC:
			return Interrupt, nil
		case r == keyCtrlD:
			return Event{}, io.EOF
		case r == keyEscape:
			if d.skipEscapeSequence() {
				continue
			}
			return Interrupt, nil
		case unicode.IsPrint(r) || r == ' ':
			return Char(r), nil
		}
		// Other control characters are ignored.
	}
}

// skipEscapeSequence consumes a CSI or SS3 sequence following ESC when one
// is already buffered. It reports whether a sequence was consumed.
func (d *Decoder) skipEscapeSequence() bool {
	if d.r.Buffered() == 0 {
		return false
	}

	next, err := d.r.Peek(1)
	if err != nil {
		return false
	}

	switch next[0] {
	case csiIntroducer:
		_, _ = d.r.ReadByte()
		for d.r.Buffered() > 0 {
			b, err := d.r.ReadByte()
			if err != nil || (b >= 0x40 && b <= 0x7e) {
				break
			}
		}
		return true
	case ss3Introducer:
		_, _ = d.r.ReadByte()
		if d.r.Buffered() > 0 {
			_, _ = d.r.ReadByte()
		}
		return true
	}

	return false
}
