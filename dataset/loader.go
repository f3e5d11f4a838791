package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gharkhoj/gharkhoj/core"
)

// Loader reads the four listing sources and produces the denormalized
// table the search engine runs on.
type Loader struct {
	cfg    *Config
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new loader for the configured source files.
func NewLoader(cfg *Config, opts ...Option) (*Loader, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Loader{
		cfg:    cfg,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Load reads all four sources and joins them into one table. Any
// unreadable source aborts the load; no partial dataset is returned.
func (l *Loader) Load() (*core.Table, error) {
	project, err := l.ReadTable(l.cfg.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	address, err := l.ReadTable(l.cfg.AddressPath)
	if err != nil {
		return nil, fmt.Errorf("loading addresses: %w", err)
	}
	configuration, err := l.ReadTable(l.cfg.ConfigurationPath)
	if err != nil {
		return nil, fmt.Errorf("loading configurations: %w", err)
	}
	variant, err := l.ReadTable(l.cfg.VariantPath)
	if err != nil {
		return nil, fmt.Errorf("loading variants: %w", err)
	}

	merged := Join(project, address, configuration, variant)
	l.logger.Info("property records loaded",
		"projects", project.Len(),
		"addresses", address.Len(),
		"configurations", configuration.Len(),
		"variants", variant.Len(),
		"records", merged.Len())
	return merged, nil
}

// ReadTable reads one CSV source. Header names are trimmed of
// surrounding whitespace. Rows shorter than the header keep the
// trailing columns null, and rows the reader cannot parse at all are
// skipped with a warning instead of failing the load.
func (l *Loader) ReadTable(path string) (*core.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingSource, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	table := &core.Table{Columns: columns}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			l.logger.Warn("skipping unparseable row", "path", path, "err", err)
			continue
		}

		row := make(core.Row, len(columns))
		for i, col := range columns {
			if i < len(record) && record[i] != "" {
				row[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	l.logger.Debug("source loaded", "path", path, "rows", table.Len())
	return table, nil
}
