package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

func init() {
	Register(xlsxFormat())
}

func xlsxFormat() Format {
	return Format{
		Name:  "Excel",
		Exts:  []string{".xlsx", ".xlsm"},
		Read:  readXLSX,
		Write: writeXLSX,
	}
}

// readXLSX loads the first sheet of a workbook into a Table.
func readXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty", sheets[0], path)
	}

	header := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		header[i] = SanitizeUTF8(c)
	}

	return &Table{Header: header, Rows: rows[1:]}, nil
}

// writeXLSX writes a Table as a single-sheet workbook.
func writeXLSX(path string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := setSheetRow(f, sheet, 1, t.Header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setSheetRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// setSheetRow writes one row of string cells at the given 1-based row number.
// Values are written as strings so NDC codes keep their leading zeros.
func setSheetRow(f *excelize.File, sheet string, rowNum int, row []string) error {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}

	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}
