package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

func init() {
	Register(csvFormat())
}

func csvFormat() Format {
	return Format{
		Name:  "CSV",
		Exts:  []string{".csv"},
		Read:  readCSV,
		Write: writeCSV,
	}
}

// readCSV loads a CSV file into a Table. The whole file is sanitized up
// front: BOM stripped, invalid UTF-8 replaced. Rows are allowed to have
// varying field counts; exports from spreadsheet tools frequently do.
func readCSV(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	content := SanitizeUTF8(TrimBOM(string(raw)))

	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// writeCSV writes a Table as a CSV file, header first.
func writeCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return f.Close()
}
