// Package run executes a single conversion over one column of a tabular
// file: load, convert, append the derived column, write the derived file.
// It is the collaborator layer around the pure codec in internal/ndc.
package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/ndcconv/internal/logging"
	"github.com/JonMunkholm/ndcconv/internal/ndc"
	"github.com/JonMunkholm/ndcconv/internal/tabular"
)

// Direction selects which way NDC codes are converted.
type Direction string

const (
	TenToEleven Direction = "10to11"
	ElevenToTen Direction = "11to10"
)

// ParseDirection validates a user-supplied direction string.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case TenToEleven:
		return TenToEleven, nil
	case ElevenToTen:
		return ElevenToTen, nil
	default:
		return "", fmt.Errorf("direction must be %q or %q, got %q", TenToEleven, ElevenToTen, s)
	}
}

// Converter returns the codec function for the direction.
func (d Direction) Converter() func(string) string {
	if d == ElevenToTen {
		return ndc.ToTen
	}
	return ndc.ToEleven
}

// columnSuffix names the derived column the way the original tool does.
func (d Direction) columnSuffix() string {
	if d == ElevenToTen {
		return "_10digit"
	}
	return "_11digit"
}

// Label returns a human-readable description of the direction.
func (d Direction) Label() string {
	if d == ElevenToTen {
		return "11-digit to 10-digit"
	}
	return "10-digit to 11-digit"
}

// Request describes one conversion run.
type Request struct {
	// InputPath is the CSV or Excel file to read.
	InputPath string

	// Column is the header name of the column holding NDC codes.
	Column string

	// Direction selects 10to11 or 11to10.
	Direction Direction

	// OutputPath overrides the derived file location. When empty the
	// output lands next to the input as <stem><suffix><ext>.
	OutputPath string

	// OutputSuffix is appended to the input stem for the default output
	// name. Defaults to "_converted".
	OutputSuffix string

	// SampleSize caps the sample conversions captured in the Result.
	// Defaults to 5.
	SampleSize int

	// MaxFileSize rejects inputs larger than this many bytes.
	// Zero means no limit.
	MaxFileSize int64
}

// Columns returns the header of the given tabular file, for column
// selection prompts and the columns subcommand.
func Columns(path string) ([]string, error) {
	format, err := tabular.ForPath(path)
	if err != nil {
		return nil, err
	}

	tbl, err := format.Read(path)
	if err != nil {
		return nil, err
	}
	return tbl.Header, nil
}

// Run executes the conversion and writes the derived file.
//
// The transform itself is a pure, order-preserving map over the column's
// values; everything stateful here is file I/O on either side of it.
func Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if req.SampleSize <= 0 {
		req.SampleSize = 5
	}
	if req.OutputSuffix == "" {
		req.OutputSuffix = "_converted"
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithFields(ctx,
		"input", req.InputPath,
		"column", req.Column,
		"direction", string(req.Direction),
	)
	logger.Info("conversion started")

	format, err := tabular.ForPath(req.InputPath)
	if err != nil {
		return nil, err
	}

	if req.MaxFileSize > 0 {
		info, err := os.Stat(req.InputPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", req.InputPath, err)
		}
		if info.Size() > req.MaxFileSize {
			return nil, fmt.Errorf("file %s is %d bytes, limit is %d",
				filepath.Base(req.InputPath), info.Size(), req.MaxFileSize)
		}
	}

	tbl, err := format.Read(req.InputPath)
	if err != nil {
		return nil, err
	}

	colIdx, ok := tbl.ColumnIndex(req.Column)
	if !ok {
		return nil, fmt.Errorf("column %q not found in %s (available: %s)",
			req.Column, filepath.Base(req.InputPath), strings.Join(tbl.Header, ", "))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	original := tbl.Column(colIdx)
	converted := ndc.Apply(original, req.Direction.Converter())

	newColumn := tbl.Header[colIdx] + req.Direction.columnSuffix()
	if err := tbl.AppendColumn(newColumn, converted); err != nil {
		return nil, err
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = defaultOutputPath(req.InputPath, req.OutputSuffix)
	}

	outFormat, err := tabular.ForPath(outputPath)
	if err != nil {
		return nil, err
	}
	if err := outFormat.Write(outputPath, tbl); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      runID,
		InputPath:  req.InputPath,
		OutputPath: outputPath,
		Direction:  req.Direction,
		Column:     tbl.Header[colIdx],
		NewColumn:  newColumn,
		TotalRows:  len(original),
		Duration:   time.Since(start),
	}
	result.tally(original, converted, req.SampleSize)

	logger.Info("conversion finished",
		"output", outputPath,
		"rows", result.TotalRows,
		"converted", result.Converted,
		"unchanged", result.Unchanged,
		"unknown_layout", result.UnknownLayout,
		"duration", result.Duration,
	)

	return result, nil
}

// defaultOutputPath builds <dir>/<stem><suffix><ext> from the input path.
func defaultOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return stem + suffix + ext
}
