package places

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/xuri/excelize/v2"
)

// minSheetColumns is the number of columns a data row needs: name, latitude, longitude.
const minSheetColumns = 3

var errEmptyCell = errors.New("empty cell")

// SheetSource reads a table from an XLSX workbook. The first row is a header;
// columns A, B and C hold the name, latitude and longitude. Rows that cannot be
// parsed are skipped.
type SheetSource struct {
	path  string
	sheet string
}

// NewSheetSource returns a SheetSource. An empty sheet selects the first sheet of the workbook.
func NewSheetSource(path, sheet string) *SheetSource {
	return &SheetSource{path: path, sheet: sheet}
}

// Load opens the workbook and builds the table.
func (ss *SheetSource) Load(_ context.Context) (*Table, error) {
	file, err := excelize.OpenFile(ss.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	sheet := ss.sheet
	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return NewTable(parseSheetRows(rows))
}

func parseSheetRows(rows [][]string) []models.PlaceCoordinate {
	var entries []models.PlaceCoordinate
	for idx, row := range rows {
		if idx == 0 || len(row) < minSheetColumns {
			continue
		}

		name := strings.TrimSpace(row[0])
		lat, errLat := parseCoord(row[1])
		lon, errLon := parseCoord(row[2])
		if name == "" || errLat != nil || errLon != nil {
			continue
		}

		entries = append(entries, models.PlaceCoordinate{Name: name, Latitude: lat, Longitude: lon})
	}

	return entries
}

// parseCoord accepts both "39.93" and the Turkish locale "39,93".
func parseCoord(val string) (float64, error) {
	val = strings.TrimSpace(strings.ReplaceAll(val, ",", "."))
	if val == "" {
		return 0, errEmptyCell
	}

	return strconv.ParseFloat(val, 64)
}
