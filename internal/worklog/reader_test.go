package worklog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestReadRowsKeepsFirstRowAsData(t *testing.T) {
	input := "Project,Author,Date,Report\nRust,alice,2024-01-01,Hello%20World\n"

	rows, err := ReadRows(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	want := []Row{
		{"Project", "Author", "Date", "Report"},
		{"Rust", "alice", "2024-01-01", "Hello%20World"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("ReadRows mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRowsAllowsRaggedRows(t *testing.T) {
	input := "Rust,alice\nGo,bob,2024-01-02,done,extra\nSolo\n"

	rows, err := ReadRows(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "alice", rows[0].Field(ColAuthor))
	require.Equal(t, "", rows[0].Field(ColDate))
	require.Equal(t, "", rows[0].Field(ColReport))
	require.Equal(t, "done", rows[1].Field(ColReport))
	require.Equal(t, "Solo", rows[2].Field(ColProject))
	require.Equal(t, "", rows[2].Field(ColAuthor))
}

func TestReadRowsQuotedFields(t *testing.T) {
	input := `"Rust, core",alice,2024-01-01,"said ""hi"""` + "\n"

	rows, err := ReadRows(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Rust, core", rows[0].Field(ColProject))
	require.Equal(t, `said "hi"`, rows[0].Field(ColReport))
}

func TestReadRowsMalformedReturnsNoRows(t *testing.T) {
	input := "Rust,alice,2024-01-01,ok\nGo,bob,\"unterminated,x\n"

	rows, err := ReadRows(context.Background(), strings.NewReader(input))
	if !errors.Is(err, ErrMalformedCSV) {
		t.Fatalf("ReadRows error = %v, want ErrMalformedCSV", err)
	}
	if rows != nil {
		t.Fatalf("ReadRows rows = %#v, want nil", rows)
	}
}

func TestReadRowsBareQuoteIsMalformed(t *testing.T) {
	_, err := ReadRows(context.Background(), strings.NewReader("Rust,al\"ice,2024-01-01,x\n"))
	require.ErrorIs(t, err, ErrMalformedCSV)
	require.Contains(t, err.Error(), "line 1")
}

func TestReadRowsHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadRows(ctx, strings.NewReader("Rust,alice,2024-01-01,x\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadRowsRejectsNilReader(t *testing.T) {
	rows, err := ReadRows(context.Background(), nil)
	require.Error(t, err)
	require.Nil(t, rows)
}

func TestRowFieldOutOfRange(t *testing.T) {
	var row Row
	if got := row.Field(ColReport); got != "" {
		t.Fatalf("Field on empty row = %q, want empty", got)
	}
	if got := (Row{"a"}).Field(-1); got != "" {
		t.Fatalf("Field(-1) = %q, want empty", got)
	}
}
