// Package dataset reads point sets from delimited text files.
//
// The expected layout is one point per record: an optional label field
// followed by D numeric coordinates, with an optional header row. Files ending
// in ".zst" are decompressed on the fly.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/TrevorS/meanshift"
)

// ErrNoRecords is returned when the input holds no data records.
var ErrNoRecords = errors.New("dataset: no data records")

// Options controls how records are parsed.
type Options struct {
	// Comma is the field delimiter. Default: ','.
	Comma rune

	// Header skips the first record. Default: true.
	Header bool

	// LabelColumn treats the first field of each record as the point label.
	// When false every field is a coordinate and labels are synthesized as
	// LabelPrefix followed by the zero-based record number. Default: true.
	LabelColumn bool

	// LabelPrefix is used for synthesized labels. Default: "test".
	LabelPrefix string
}

// DefaultOptions returns Options for a comma separated file with a header row
// and a leading label column.
func DefaultOptions() Options {
	return Options{
		Comma:       ',',
		Header:      true,
		LabelColumn: true,
		LabelPrefix: "test",
	}
}

// ReadFile opens path and parses it with Read. A ".zst" suffix selects zstd
// decompression.
func ReadFile(path string, opts Options) ([]meanshift.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".zst") {
		return Read(f, opts)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening zstd stream: %w", err)
	}
	defer dec.Close()
	return Read(dec, opts)
}

// Read parses points from r. Every record must have the same number of
// fields; a ragged or non-numeric record is reported with its line number.
func Read(r io.Reader, opts Options) ([]meanshift.Point, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	if opts.LabelPrefix == "" {
		opts.LabelPrefix = "test"
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if opts.Header {
		// The header may have any shape; the first data record fixes the width.
		cr.FieldsPerRecord = -1
		if _, err := cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoRecords
			}
			return nil, fmt.Errorf("dataset: reading header: %w", err)
		}
		cr.FieldsPerRecord = 0
	}

	var points []meanshift.Point
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		line, _ := cr.FieldPos(0)

		p, err := parseRecord(record, len(points), opts)
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		points = append(points, p)
	}

	if len(points) == 0 {
		return nil, ErrNoRecords
	}
	return points, nil
}

func parseRecord(record []string, row int, opts Options) (meanshift.Point, error) {
	fields := record
	label := opts.LabelPrefix + strconv.Itoa(row)
	if opts.LabelColumn {
		label = strings.TrimSpace(fields[0])
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return meanshift.Point{}, errors.New("record has no coordinates")
	}

	coords := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return meanshift.Point{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		coords[i] = v
	}
	return meanshift.Point{Label: label, Coords: coords}, nil
}
