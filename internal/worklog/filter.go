package worklog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Filter holds the optional exact-match filters. A nil field lets every
// row through on that axis.
type Filter struct {
	Date   *string
	Author *string
}

// Match reports whether the raw row passes every active filter.
func (f Filter) Match(row Row) bool {
	if f.Date != nil && row.Field(ColDate) != *f.Date {
		return false
	}
	if f.Author != nil && row.Field(ColAuthor) != *f.Author {
		return false
	}
	return true
}

// DecodeReport percent-decodes s. A '%' not followed by two hex digits is
// kept as-is, and so is '+'. The only failure is a result that is not UTF-8.
func DecodeReport(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w %q: result is not valid UTF-8", ErrDecode, s)
	}
	return string(buf), nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// CollectOptions controls how Collect turns rows into groups.
type CollectOptions struct {
	Filter Filter
	// EagerDecode decodes every report before filtering, so an undecodable
	// row fails the run even when the filters would have dropped it.
	EagerDecode bool
	Logger      *zap.Logger
}

// Collect filters and decodes rows and groups the survivors by project.
// Any decode error aborts the whole collection.
func Collect(rows []Row, opts CollectOptions) (*Groups, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	groups := NewGroups()
	dropped := 0
	for i, row := range rows {
		var (
			report  string
			decoded bool
		)
		if opts.EagerDecode {
			var err error
			report, err = DecodeReport(row.Field(ColReport))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			decoded = true
		}

		if !opts.Filter.Match(row) {
			dropped++
			continue
		}

		if !decoded {
			var err error
			report, err = DecodeReport(row.Field(ColReport))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		groups.Add(Record{
			Project: row.Field(ColProject),
			Author:  row.Field(ColAuthor),
			Date:    row.Field(ColDate),
			Report:  report,
		})
	}

	logger.Debug("collected work log",
		zap.Int("rows", len(rows)),
		zap.Int("dropped", dropped),
		zap.Int("projects", groups.Len()),
	)
	return groups, nil
}
