package tabular

import (
	"encoding/csv"
	"os"
)

// delimitedSource reads delimiter-separated text with encoding/csv.
type delimitedSource struct {
	file   *os.File
	reader *csv.Reader
}

func openDelimited(path string, comma rune) (*delimitedSource, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line by design
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(f)
	r.Comma = comma
	// 0: every row must have as many fields as the header.
	r.FieldsPerRecord = 0
	return &delimitedSource{file: f, reader: r}, nil
}

func (s *delimitedSource) Read() ([]string, int, error) {
	record, err := s.reader.Read()
	if err != nil {
		return nil, 0, err
	}
	line, _ := s.reader.FieldPos(0)
	return record, line, nil
}

func (s *delimitedSource) Close() error {
	return s.file.Close()
}
