package app

import (
	"errors"
	"io"

	"github.com/footprint-tools/treesh/internal/config"
	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/log"
	"github.com/footprint-tools/treesh/internal/paths"
	"github.com/footprint-tools/treesh/internal/store"
	"github.com/footprint-tools/treesh/internal/ui"
	"github.com/footprint-tools/treesh/internal/ui/style"
)

// Version is set at build time with -ldflags "-X ...app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Store options
	DBPath string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// Output options
	RawTerminal bool
	Out         io.Writer
}

// DefaultOptions returns the options described by ~/.treeshrc.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	return Options{
		LogEnabled:   cfg["enable_log"] == "true",
		LogLevel:     log.ParseLevel(cfg["log_level"]),
		LogPath:      paths.LogFilePath(),
		DBPath:       cfg["bindings_db"],
		StyleEnabled: true,
		StyleConfig:  cfg,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		// A log file that cannot be opened disables logging.
		if err := log.Init(logPath, opts.LogLevel); err == nil {
			logger = log.Default()
		}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.BindingsDBPath()
	}
	bindings, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.RawTerminal {
		writerOpts = append(writerOpts, ui.WithRawTerminal())
	}
	output := ui.NewWriter(writerOpts...)
	if opts.Out != nil {
		output = ui.NewWriterTo(opts.Out, writerOpts...)
	}

	logger.Debug("application ready: db=%s raw=%t style=%t", dbPath, opts.RawTerminal, opts.StyleEnabled)

	return &domain.Application{
		Store:  bindings,
		Config: config.NewProvider(),
		Logger: logger,
		Output: output,
		Styler: style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses an in-memory store, NopLogger, and no styling.
func NewForTesting(out io.Writer) (*domain.Application, error) {
	bindings, err := store.New(":memory:")
	if err != nil {
		return nil, err
	}
	return &domain.Application{
		Store:  bindings,
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(out),
		Styler: style.NopStyler{},
	}, nil
}

// Close releases the logger and the store.
func Close(app *domain.Application) error {
	if app == nil {
		return nil
	}
	var errs []error
	if app.Store != nil {
		errs = append(errs, app.Store.Close())
	}
	if app.Logger != nil {
		errs = append(errs, app.Logger.Close())
	}
	return errors.Join(errs...)
}
