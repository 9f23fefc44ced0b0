package worklog

// Record is one work-log row that passed the active filters and had its
// report decoded.
type Record struct {
	Project string
	Author  string
	Date    string
	Report  string
}

// Column positions inside a CSV row.
const (
	ColProject = iota
	ColAuthor
	ColDate
	ColReport
)

// Row is a raw CSV row as read from the input.
type Row []string

// Field returns the column at i, or "" when the row is shorter than that.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}
