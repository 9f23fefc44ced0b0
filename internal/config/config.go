package config

import (
	"errors"
	"fmt"

	"github.com/faizmokh/laporan/internal/worklog"
)

// Config is everything a report run needs, independent of how the command
// line was spelled.
type Config struct {
	Path        string
	Filter      worklog.Filter
	EagerDecode bool
	Verbose     bool
}

// Flags carries the flag values as parsed by the CLI. DateSet and AuthorSet
// distinguish an explicit empty value from an absent flag.
type Flags struct {
	Date        string
	DateSet     bool
	Author      string
	AuthorSet   bool
	EagerDecode bool
	Verbose     bool
}

// FromArgs builds a Config from positional arguments and flags. It accepts
// both `<file> [--date D] [--author A]` and the legacy `<file> <date>` form.
func FromArgs(args []string, flags Flags) (Config, error) {
	switch len(args) {
	case 0:
		return Config{}, errors.New("input CSV path is required")
	case 1, 2:
	default:
		return Config{}, fmt.Errorf("expected at most 2 arguments, got %d", len(args))
	}

	cfg := Config{
		Path:        args[0],
		EagerDecode: flags.EagerDecode,
		Verbose:     flags.Verbose,
	}

	if flags.DateSet {
		date := flags.Date
		cfg.Filter.Date = &date
	}
	if len(args) == 2 {
		if flags.DateSet {
			return Config{}, errors.New("date given both as argument and --date")
		}
		date := args[1]
		cfg.Filter.Date = &date
	}
	if flags.AuthorSet {
		author := flags.Author
		cfg.Filter.Author = &author
	}

	return cfg, nil
}
