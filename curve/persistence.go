package curve

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/koldar/phdtester-go/funcdict"
)

// SaveOnCsv serializes the current dictionary to Path as CSV (one column
// per function, one row per shared abscissa value, the first column being
// x). Never changes fd.
type SaveOnCsv struct{ Path string }

func (SaveOnCsv) RequireSameXAxis() bool { return false }
func (SaveOnCsv) Name() string           { return "SaveOnCsv" }

func (c SaveOnCsv) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	f, err := os.Create(c.Path)
	if err != nil {
		return Unaltered, nil, fmt.Errorf("curve: SaveOnCsv: %w", err)
	}
	defer f.Close()

	if err := writeCsv(f, fd); err != nil {
		return Unaltered, nil, err
	}
	return Unaltered, fd, nil
}

func writeCsv(w io.Writer, fd *funcdict.FunctionsDict) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	names := fd.FunctionNames()
	header := append([]string{"x"}, names...)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, x := range fd.XAxisOrdered() {
		row := make([]string, 0, len(names)+1)
		row = append(row, strconv.FormatFloat(x, 'g', -1, 64))
		for _, name := range names {
			row = append(row, strconv.FormatFloat(fd.Get(name, x), 'g', -1, 64))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Identity is a no-op changer, useful as a pipeline placeholder.
type Identity struct{}

func (Identity) RequireSameXAxis() bool { return false }
func (Identity) Name() string           { return "Identity" }

func (Identity) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	return Unaltered, fd, nil
}

// Print dumps fd to Sink in a human-readable form. Never mutates fd.
type Print struct{ Sink io.Writer }

func (Print) RequireSameXAxis() bool { return false }
func (Print) Name() string           { return "Print" }

func (c Print) AlterCurves(fd *funcdict.FunctionsDict) (AbscissaStatus, *funcdict.FunctionsDict, error) {
	if err := writeCsv(c.Sink, fd); err != nil {
		return Unaltered, nil, err
	}
	return Unaltered, fd, nil
}
