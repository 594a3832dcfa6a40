// Package shell runs the interactive line editor over a command tree.
//
// The loop owns its input buffer and reads the tree without locking: the
// tree is built before the loop starts and never modified afterwards.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/log"
	"github.com/footprint-tools/treesh/internal/terminal"
	"github.com/footprint-tools/treesh/internal/ui/style"
	"github.com/footprint-tools/treesh/internal/usage"
)

const (
	DefaultPrompt = "> "

	banner  = "Type commands. Press Tab to see suggestions. Type 'exit' to quit."
	goodbye = "Goodbye!"
)

// Options configures a Shell. Zero values select the default prompt, no
// styling and no logging.
type Options struct {
	Prompt string
	Styler domain.Styler
	Logger domain.Logger

	// Quiet suppresses the start-up banner.
	Quiet bool
}

type Shell struct {
	root   *dispatchers.CommandNode
	source terminal.Source
	out    io.Writer
	prompt string
	styler domain.Styler
	logger domain.Logger
	quiet  bool

	buffer []rune
}

// New creates a shell reading events from source and echoing to out.
func New(root *dispatchers.CommandNode, source terminal.Source, out io.Writer, opts Options) *Shell {
	s := &Shell{
		root:   root,
		source: source,
		out:    out,
		prompt: opts.Prompt,
		styler: opts.Styler,
		logger: opts.Logger,
		quiet:  opts.Quiet,
	}
	if s.prompt == "" {
		s.prompt = DefaultPrompt
	}
	if s.styler == nil {
		s.styler = style.NopStyler{}
	}
	if s.logger == nil {
		s.logger = log.NopLogger{}
	}
	return s
}

// Run processes events until the user types exit or quit, or the source
// is exhausted; both return nil. Any other source error ends the loop with
// an ErrInputSource usage error.
func (s *Shell) Run() error {
	s.logger.Info("shell: started")

	if !s.quiet {
		s.println(s.styler.Muted(banner))
	}
	s.printPrompt()

	for {
		ev, err := s.source.Next()
		if errors.Is(err, io.EOF) {
			s.println("")
			s.logger.Info("shell: input closed")
			return nil
		}
		if err != nil {
			s.println("")
			s.logger.Error("shell: input failed: %v", err)
			return usage.InputSourceFailure(err)
		}

		if done := s.handle(ev); done {
			s.logger.Info("shell: exit requested")
			return nil
		}
	}
}

// handle applies one event and reports whether the loop must stop.
func (s *Shell) handle(ev terminal.Event) bool {
	switch ev.Kind {
	case terminal.KindChar:
		s.buffer = append(s.buffer, ev.Char)
		s.write(string(ev.Char))

	case terminal.KindBackspace:
		if len(s.buffer) > 0 {
			last := s.buffer[len(s.buffer)-1]
			s.buffer = s.buffer[:len(s.buffer)-1]
			s.write(eraseRune(last))
		}

	case terminal.KindTab:
		s.suggest()

	case terminal.KindEnter:
		return s.submit()

	case terminal.KindInterrupt:
		s.buffer = s.buffer[:0]
		s.println("^C")
		s.printPrompt()

	default:
		s.logger.Debug("shell: ignoring event %s", ev.Kind)
	}

	return false
}

func (s *Shell) suggest() {
	line := string(s.buffer)
	tokens := strings.Fields(line)

	s.println("")

	suggestions, err := dispatchers.SuggestWithSummaries(s.root, tokens)
	switch {
	case err != nil:
		s.logger.Debug("shell: no suggestions for %q: %v", line, err)
		s.println(s.styler.Muted(fmt.Sprintf("No suggestions for '%s'.", strings.Join(tokens, " "))))
	case len(suggestions) == 0:
		s.println(s.styler.Muted(fmt.Sprintf("'%s' takes no further words.", strings.Join(tokens, " "))))
	default:
		s.write(formatSuggestions(suggestions, s.styler))
	}

	s.printPrompt()
	s.write(line)
}

// formatSuggestions lays out one suggestion per line with aligned
// descriptions.
func formatSuggestions(suggestions []dispatchers.Suggestion, styler domain.Styler) string {
	width := 0
	for _, sg := range suggestions {
		width = max(width, len(sg.Name))
	}

	var b strings.Builder
	for _, sg := range suggestions {
		name := sg.Name
		if sg.HasAction {
			name = styler.Info(name)
		}
		fmt.Fprintf(&b, "  %s%s", name, strings.Repeat(" ", width-len(sg.Name)))
		if sg.Description != "" {
			fmt.Fprintf(&b, "  %s", styler.Muted(sg.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Shell) submit() bool {
	line := string(s.buffer)
	s.buffer = s.buffer[:0]
	s.println("")

	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "":
		s.printPrompt()
		return false
	case "exit", "quit":
		s.println(goodbye)
		return true
	}

	s.execute(line)
	s.printPrompt()
	return false
}

// execute resolves line and dispatches the node with the full line as
// argument. Failures are reported and the loop continues.
func (s *Shell) execute(line string) {
	tokens := strings.Fields(line)

	node, err := dispatchers.Resolve(s.root, tokens)
	if err != nil {
		s.logger.Warn("shell: %v", err)
		s.println(s.styler.Warning(err.Error()))
		return
	}

	outcome := dispatchers.Dispatch(node, line)
	s.logger.Info("shell: %q %s", node.FullName(), outcome)

	if outcome == dispatchers.OutcomeNoAction {
		s.println(s.styler.Muted(usage.NoActionBound(node.FullName()).Error()))
	}
}

// eraseRune moves back over the cells r occupies, blanks them and moves
// back again.
func eraseRune(r rune) string {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return ""
	}
	back := strings.Repeat("\b", w)
	return back + strings.Repeat(" ", w) + back
}

func (s *Shell) printPrompt() {
	s.write(s.styler.Info(s.prompt))
}

func (s *Shell) write(text string) {
	_, _ = io.WriteString(s.out, text)
}

func (s *Shell) println(text string) {
	s.write(text + "\n")
}
