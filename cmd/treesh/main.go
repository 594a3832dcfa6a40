package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/treesh/internal/actions"
	"github.com/footprint-tools/treesh/internal/app"
	"github.com/footprint-tools/treesh/internal/browse"
	"github.com/footprint-tools/treesh/internal/cli"
	"github.com/footprint-tools/treesh/internal/config"
	"github.com/footprint-tools/treesh/internal/dispatchers"
	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/log"
	"github.com/footprint-tools/treesh/internal/shell"
	"github.com/footprint-tools/treesh/internal/terminal"
	"github.com/footprint-tools/treesh/internal/ui/style"
	"github.com/footprint-tools/treesh/internal/usage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run starts treesh and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, fs, err := cli.ParseFlags(args)
	if err != nil {
		return report(stderr, err)
	}
	if opts.Help {
		fmt.Fprint(stdout, cli.HelpText(fs))
		return 0
	}
	if opts.Version {
		fmt.Fprintf(stdout, "treesh %s\n", app.Version)
		return 0
	}

	if err := config.Validate(); err != nil {
		return report(stderr, usage.InvalidConfig(err))
	}

	appOpts := app.DefaultOptions()
	if opts.LogLevel != "" {
		appOpts.LogLevel = log.ParseLevel(opts.LogLevel)
	}
	if opts.DBPath != "" {
		appOpts.DBPath = opts.DBPath
	}

	// Enable styling if stdout is a terminal and --no-color is not set
	appOpts.StyleEnabled = isTerminal(stdout) && !opts.NoColor

	stdinTTY := isTerminal(stdin) && !opts.Browse
	appOpts.RawTerminal = stdinTTY
	appOpts.Out = stdout

	application, err := app.New(appOpts)
	if err != nil {
		return report(stderr, err)
	}
	defer func() { _ = app.Close(application) }()

	var root *dispatchers.CommandNode
	reg := actions.NewRegistry(actions.DefaultDeps(application, func() *dispatchers.CommandNode { return root }))

	commandsFile := opts.CommandsFile
	if commandsFile == "" {
		commandsFile, _ = config.Get("commands_file")
	}
	var extra []dispatchers.CommandSpec
	if commandsFile != "" {
		extra, err = cli.LoadCommandFile(commandsFile, reg, application.Logger)
		if err != nil {
			return report(stderr, err)
		}
	}

	tree := cli.BuildTree(reg, extra, application.Logger)
	root = tree.Root
	for _, problem := range tree.Problems() {
		fmt.Fprintln(stderr, style.Warning("warning: "+problem.Error()))
	}

	if opts.Browse {
		return browseAndDispatch(root, application.Logger, stdout, stderr)
	}

	var source terminal.Source = terminal.NewDecoder(stdin)
	restore := func() error { return nil }
	if stdinTTY {
		restore, err = terminal.MakeRaw(int(stdin.(*os.File).Fd()))
		if err != nil {
			return report(stderr, usage.InputSourceFailure(err))
		}
	}

	prompt, _ := config.Get("prompt")
	if prompt == "" {
		prompt = shell.DefaultPrompt
	}

	sh := shell.New(root, source, application.Output, shell.Options{
		Prompt: prompt,
		Styler: application.Styler,
		Logger: application.Logger,
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	err = waitShell(shell.Start(sh), signals, application.Logger)
	_ = restore()
	if err != nil {
		// A *shell.PanicError was logged with its stack by the worker.
		return report(stderr, err)
	}
	return 0
}

// waitShell waits for the shell loop to end or for a termination signal.
// On a signal it returns at once; the process exits with the loop still
// blocked on input.
func waitShell(w *shell.Worker, signals <-chan os.Signal, logger domain.Logger) error {
	select {
	case <-w.Done():
		return w.Wait()
	case sig := <-signals:
		logger.Warn("main: received %s, leaving the shell", sig)
		return fmt.Errorf("interrupted by signal: %s", sig)
	}
}

// browseAndDispatch runs the full-screen browser and executes the command
// picked there.
func browseAndDispatch(root *dispatchers.CommandNode, logger domain.Logger, stdout, stderr io.Writer) int {
	selected, err := browse.Run(root, tea.WithOutput(stdout))
	if err != nil {
		return report(stderr, err)
	}
	if selected == nil {
		return 0
	}

	line := strings.Join(selected.Path, " ")
	logger.Info("main: browser selected %q", line)
	if dispatchers.Dispatch(selected, line) == dispatchers.OutcomeNoAction {
		fmt.Fprintln(stdout, usage.NoActionBound(line).Error())
	}
	return 0
}

// report prints err and returns its exit code.
func report(w io.Writer, err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		fmt.Fprintln(w, style.Error(ue.Error()))
		return ue.GetExitCode()
	}
	fmt.Fprintln(w, style.Error("treesh: "+err.Error()))
	return 1
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && terminal.IsTerminal(int(f.Fd()))
}
