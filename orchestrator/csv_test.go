package orchestrator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/resource"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReadCSVRows_DefaultExtractorMapsColumnsByPosition(t *testing.T) {
	path := writeCSV(t, "name,size\nBUBBLE,10\nMERGE,20\n")

	rows, err := readCSVRows(path, nil)
	require.NoError(t, err)
	require.Equal(t, []resource.Row{
		{"name": "BUBBLE", "size": "10"},
		{"name": "MERGE", "size": "20"},
	}, rows)
}

func TestReadCSVRows_ExtractorSkipSignalDropsRow(t *testing.T) {
	path := writeCSV(t, "name,size\nBUBBLE,10\nMERGE,20\nQUICK,30\n")

	extract := func(header, rec []string) (Yield[resource.Row], error) {
		if rec[0] == "MERGE" {
			return Skip[resource.Row](), nil
		}
		row, _ := defaultRowExtractor(header, rec)
		return row, nil
	}

	rows, err := readCSVRows(path, extract)
	require.NoError(t, err)
	require.Equal(t, []resource.Row{
		{"name": "BUBBLE", "size": "10"},
		{"name": "QUICK", "size": "30"},
	}, rows)
}

func TestReadCSVRows_ExtractorStopSignalEndsExtractionEarly(t *testing.T) {
	path := writeCSV(t, "name,size\nBUBBLE,10\nEOF,\nMERGE,20\n")

	extract := func(header, rec []string) (Yield[resource.Row], error) {
		if rec[0] == "EOF" {
			return Stop[resource.Row](), nil
		}
		row, _ := defaultRowExtractor(header, rec)
		return row, nil
	}

	rows, err := readCSVRows(path, extract)
	require.NoError(t, err)
	require.Equal(t, []resource.Row{{"name": "BUBBLE", "size": "10"}}, rows)
}

func TestReadCSVRows_ExtractorErrIgnoreRowIsTreatedAsSkip(t *testing.T) {
	path := writeCSV(t, "name,size\nBUBBLE,10\nMERGE,bogus\n")

	extract := func(header, rec []string) (Yield[resource.Row], error) {
		if rec[0] == "MERGE" {
			return Yield[resource.Row]{}, ErrIgnoreRow
		}
		row, _ := defaultRowExtractor(header, rec)
		return row, nil
	}

	rows, err := readCSVRows(path, extract)
	require.NoError(t, err)
	require.Equal(t, []resource.Row{{"name": "BUBBLE", "size": "10"}}, rows)
}

func TestReadCSVRows_ExtractorOtherErrorsAbortTheWholeRead(t *testing.T) {
	path := writeCSV(t, "name,size\nBUBBLE,10\n")

	boom := errors.New("boom")
	extract := func(header, rec []string) (Yield[resource.Row], error) {
		return Yield[resource.Row]{}, boom
	}

	_, err := readCSVRows(path, extract)
	require.ErrorIs(t, err, boom)
}
