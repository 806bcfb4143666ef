package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the sheet holding the distance matrix.
const SheetName = "Mesafeler"

// ErrMatrixShape is returned when the matrix is not square or does not match the names.
var ErrMatrixShape = errors.New("distance matrix does not match place names")

// WriteMatrix writes the distance matrix as an XLSX workbook to w.
// The first row and column hold the place names; cell (i+2, j+2) holds km[i][j].
func WriteMatrix(w io.Writer, names []string, km [][]int) error {
	if len(km) != len(names) {
		return ErrMatrixShape
	}
	for _, row := range km {
		if len(row) != len(names) {
			return ErrMatrixShape
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	header := make([]any, 0, len(names)+1)
	header = append(header, "")
	for _, name := range names {
		header = append(header, name)
	}
	if err = sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, name := range names {
		row := make([]any, 0, len(names)+1)
		row = append(row, name)
		for _, value := range km[i] {
			row = append(row, value)
		}

		cell, errCell := excelize.CoordinatesToCellName(1, i+2)
		if errCell != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, errCell)
		}
		if err = sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %q: %w", name, err)
		}
	}

	if err = sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
