package run

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// Direction Tests
// ----------------------------------------------------------------------------

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Direction
		wantErr bool
	}{
		{name: "10to11", input: "10to11", want: TenToEleven},
		{name: "11to10", input: "11to10", want: ElevenToTen},
		{name: "uppercase accepted", input: "10TO11", want: TenToEleven},
		{name: "whitespace trimmed", input: " 11to10 ", want: ElevenToTen},
		{name: "unknown rejected", input: "12to13", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDirection(%q) accepted, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDirectionConverter(t *testing.T) {
	if got := TenToEleven.Converter()("1234567890"); got != "01234567890" {
		t.Errorf("TenToEleven converter = %q, want %q", got, "01234567890")
	}
	if got := ElevenToTen.Converter()("01234567890"); got != "1234567890" {
		t.Errorf("ElevenToTen converter = %q, want %q", got, "1234567890")
	}
}

// ----------------------------------------------------------------------------
// Run Tests
// ----------------------------------------------------------------------------

func writeInputCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meds.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	return path
}

func TestRun_TenToEleven(t *testing.T) {
	input := writeInputCSV(t,
		"NDC_Code,Drug\n"+
			"1234567890,Aspirin\n"+
			"0123456789,Ibuprofen\n"+
			"99999,Short\n")

	res, err := Run(context.Background(), Request{
		InputPath: input,
		Column:    "NDC_Code",
		Direction: TenToEleven,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if res.TotalRows != 3 {
		t.Errorf("TotalRows = %d, want 3", res.TotalRows)
	}
	if res.Converted != 2 || res.Unchanged != 1 {
		t.Errorf("Converted/Unchanged = %d/%d, want 2/1", res.Converted, res.Unchanged)
	}
	if res.NewColumn != "NDC_Code_11digit" {
		t.Errorf("NewColumn = %q, want NDC_Code_11digit", res.NewColumn)
	}

	wantOut := filepath.Join(filepath.Dir(input), "meds_converted.csv")
	if res.OutputPath != wantOut {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, wantOut)
	}

	out, err := os.ReadFile(res.OutputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(out)

	if !strings.Contains(content, "NDC_Code,Drug,NDC_Code_11digit") {
		t.Errorf("output header missing derived column:\n%s", content)
	}
	if !strings.Contains(content, "1234567890,Aspirin,01234567890") {
		t.Errorf("output missing converted row:\n%s", content)
	}
	if !strings.Contains(content, "99999,Short,99999") {
		t.Errorf("short NDC did not pass through unchanged:\n%s", content)
	}
}

func TestRun_ElevenToTen(t *testing.T) {
	input := writeInputCSV(t,
		"ndc,qty\n"+
			"01234567890,1\n"+
			"11111111111,2\n")

	res, err := Run(context.Background(), Request{
		InputPath: input,
		Column:    "ndc",
		Direction: ElevenToTen,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if res.NewColumn != "ndc_10digit" {
		t.Errorf("NewColumn = %q, want ndc_10digit", res.NewColumn)
	}
	if res.UnknownLayout != 1 {
		t.Errorf("UnknownLayout = %d, want 1", res.UnknownLayout)
	}

	out, err := os.ReadFile(res.OutputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(out)

	if !strings.Contains(content, "01234567890,1,1234567890") {
		t.Errorf("output missing converted row:\n%s", content)
	}
	// Unknown layout passes through with no digit removed.
	if !strings.Contains(content, "11111111111,2,11111111111") {
		t.Errorf("unknown-layout NDC did not pass through unchanged:\n%s", content)
	}
}

func TestRun_ColumnMatchIsCaseInsensitive(t *testing.T) {
	input := writeInputCSV(t, "NDC_Code\n1234567890\n")

	res, err := Run(context.Background(), Request{
		InputPath: input,
		Column:    "ndc_code",
		Direction: TenToEleven,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	// Derived column keeps the file's own header casing.
	if res.NewColumn != "NDC_Code_11digit" {
		t.Errorf("NewColumn = %q, want NDC_Code_11digit", res.NewColumn)
	}
}

func TestRun_MissingColumnListsAvailable(t *testing.T) {
	input := writeInputCSV(t, "a,b\n1,2\n")

	_, err := Run(context.Background(), Request{
		InputPath: input,
		Column:    "ndc",
		Direction: TenToEleven,
	})
	if err == nil {
		t.Fatal("Run accepted a missing column, want error")
	}
	if !strings.Contains(err.Error(), "a, b") {
		t.Errorf("error does not list available columns: %v", err)
	}
}

func TestRun_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meds.xls")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Run(context.Background(), Request{
		InputPath: path,
		Column:    "ndc",
		Direction: TenToEleven,
	})
	if err == nil {
		t.Fatal("Run accepted an unsupported file type, want error")
	}
}

func TestRun_ExplicitOutputPath(t *testing.T) {
	input := writeInputCSV(t, "ndc\n1234567890\n")
	output := filepath.Join(t.TempDir(), "custom.csv")

	res, err := Run(context.Background(), Request{
		InputPath:  input,
		Column:     "ndc",
		Direction:  TenToEleven,
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.OutputPath != output {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, output)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestRun_SampleSize(t *testing.T) {
	input := writeInputCSV(t,
		"ndc\n1234567890\n2234567890\n3234567890\n0123456789\n1111111111\n2222222222\n3333333333\n")

	res, err := Run(context.Background(), Request{
		InputPath:  input,
		Column:     "ndc",
		Direction:  TenToEleven,
		SampleSize: 3,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(res.Samples) != 3 {
		t.Errorf("Samples = %d, want 3", len(res.Samples))
	}
	if res.Samples[0].Before != "1234567890" || res.Samples[0].After != "01234567890" {
		t.Errorf("Samples[0] = %+v", res.Samples[0])
	}
}

// ----------------------------------------------------------------------------
// Columns Tests
// ----------------------------------------------------------------------------

func TestColumns(t *testing.T) {
	input := writeInputCSV(t, "NDC_Code,Drug,Qty\n1,2,3\n")

	cols, err := Columns(input)
	if err != nil {
		t.Fatalf("Columns returned error: %v", err)
	}
	if len(cols) != 3 || cols[0] != "NDC_Code" || cols[2] != "Qty" {
		t.Errorf("Columns = %v", cols)
	}
}

func TestColumns_MissingFile(t *testing.T) {
	if _, err := Columns(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Columns accepted a missing file, want error")
	}
}

// ----------------------------------------------------------------------------
// Summary Tests
// ----------------------------------------------------------------------------

func TestResultSummary(t *testing.T) {
	input := writeInputCSV(t, "ndc\n1234567890\n")

	res, err := Run(context.Background(), Request{
		InputPath: input,
		Column:    "ndc",
		Direction: TenToEleven,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	summary := res.Summary()
	for _, want := range []string{
		"Total rows processed: 1",
		"Conversion type: 10to11",
		"Original NDC column: ndc",
		"Converted NDC column: ndc_11digit",
		"1234567890 -> 01234567890",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
