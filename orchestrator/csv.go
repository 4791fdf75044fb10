package orchestrator

import (
	"encoding/csv"
	"errors"
	"os"

	"github.com/koldar/phdtester-go/resource"
)

// readCSVRows reads a header-plus-records CSV file the same way
// resource/fsstore does, so a tabular artifact an external program writes
// relocates into any resource.Manager backend identically. extract turns
// each record into a row; a nil extract falls back to the plain
// column-by-position mapping. extract may drop a record (Skip), end
// extraction early (Stop), or signal either by returning an error wrapping
// ErrIgnoreRow/ErrValueToIgnore instead of a Yield value — both are treated
// as Skip, so a caller-supplied extractor never has to construct a Yield
// value just to reject a record.
func readCSVRows(path string, extract RowExtractor) ([]resource.Row, error) {
	if extract == nil {
		extract = defaultRowExtractor
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	rows := make([]resource.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		y, err := extract(header, rec)
		if err != nil {
			if errors.Is(err, ErrIgnoreRow) || errors.Is(err, ErrValueToIgnore) {
				continue
			}
			return nil, err
		}
		switch y.Signal {
		case RowSkip:
			continue
		case RowStop:
			return rows, nil
		default:
			rows = append(rows, y.Value)
		}
	}
	return rows, nil
}
