package worklog

import "errors"

// ErrMalformedCSV is returned when the input cannot be parsed as CSV.
var ErrMalformedCSV = errors.New("malformed csv")

// ErrDecode indicates a report column that is not valid percent-encoded UTF-8.
var ErrDecode = errors.New("invalid percent-encoded report")
