package cli

import (
	"errors"
	"io"

	"github.com/spf13/pflag"

	"github.com/footprint-tools/treesh/internal/usage"
)

// Options holds the parsed command-line flags.
type Options struct {
	NoColor      bool
	LogLevel     string
	CommandsFile string
	DBPath       string
	Browse       bool
	Version      bool
	Help         bool
}

// NewFlagSet declares the treesh flags bound to opts.
func NewFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("treesh", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides log_level)")
	fs.StringVar(&opts.CommandsFile, "commands", "", "YAML `file` of extra commands (overrides commands_file)")
	fs.StringVar(&opts.DBPath, "db", "", "binding cache database `path` (overrides bindings_db)")
	fs.BoolVar(&opts.Browse, "browse", false, "open the full-screen command browser")
	fs.BoolVarP(&opts.Version, "version", "v", false, "print version and exit")
	fs.BoolVarP(&opts.Help, "help", "h", false, "show help")

	return fs
}

// ParseFlags parses args (without the program name). treesh takes no
// positional arguments.
func ParseFlags(args []string) (Options, *pflag.FlagSet, error) {
	var opts Options
	fs := NewFlagSet(&opts)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.Help = true
			return opts, fs, nil
		}
		return opts, fs, usage.InvalidFlag(err.Error())
	}

	if rest := fs.Args(); len(rest) > 0 {
		return opts, fs, usage.InvalidFlag("unexpected argument '" + rest[0] + "'")
	}

	return opts, fs, nil
}

// HelpText renders the usage message.
func HelpText(fs *pflag.FlagSet) string {
	return `treesh - interactive hierarchical command shell

Usage:
  treesh [flags]

Type a command path such as 'send mobile binding update' and press Enter.
Press Tab to list what may follow the words typed so far. Type 'exit' or
'quit', or press Ctrl-D, to leave.

Flags:
` + fs.FlagUsages()
}
