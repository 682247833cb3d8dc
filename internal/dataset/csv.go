package dataset

import (
	"bytes"
	"encoding/csv"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV reads the projection and win probability files. Both must be
// comma-separated, UTF-8, with a header row naming every required column.
func LoadCSV(projectionsPath, winProbabilityPath string) (*Dataset, error) {
	var projections []ProjectionRecord
	if err := readCSV(projectionsPath, ProjectionColumns, projectionNumeric, &projections); err != nil {
		return nil, err
	}

	var winProbability []WinProbabilityRecord
	if err := readCSV(winProbabilityPath, WinProbabilityColumns, winProbabilityNumeric, &winProbability); err != nil {
		return nil, err
	}

	return New(projectionsPath, projections, winProbability)
}

func readCSV(path string, columns, numeric []string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(ErrFileNotFound, path)
		}
		return errors.Wrapf(err, "read %s", path)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return errors.Wrapf(ErrParse, "%s: not valid UTF-8", path)
	}
	if err := checkTable(data, columns, numeric); err != nil {
		return errors.Wrapf(ErrParse, "%s: %v", path, err)
	}
	if err := gocsv.UnmarshalBytes(data, out); err != nil {
		return errors.Wrapf(ErrParse, "%s: %v", path, err)
	}
	return nil
}

// checkTable validates the header against the required columns and makes
// sure every row has as many fields as the header and no empty numeric cell.
func checkTable(data []byte, columns, numeric []string) error {
	r := csv.NewReader(bytes.NewReader(data))

	header, err := r.Read()
	if err == io.EOF {
		return errors.New("empty file, expected a header row")
	}
	if err != nil {
		return err
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("missing columns %s", strings.Join(missing, ", "))
	}

	// FieldsPerRecord is fixed by the header, so a short or long row errors here.
	for row := 1; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		for _, c := range numeric {
			if strings.TrimSpace(record[index[c]]) == "" {
				return errors.Errorf("row %d: empty value in column %s", row, c)
			}
		}
	}
}
