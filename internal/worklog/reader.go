package worklog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadRows parses every CSV row from r. The first row is data like any
// other; rows may carry any number of columns. Parsing runs to completion
// before returning, so a structural error yields no rows at all.
func ReadRows(ctx context.Context, r io.Reader) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.New("read csv: nil reader")
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var rows []Row
	for {
		record, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return rows, nil
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCSV, parseErr.Line, parseErr.Err)
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, Row(record))
	}
}
