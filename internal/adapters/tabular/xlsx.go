package tabular

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxSource streams the rows of the first sheet of a workbook.
type xlsxSource struct {
	file  *excelize.File
	rows  *excelize.Rows
	line  int
	width int // header width; shorter rows are padded, since trailing empty cells are omitted
}

func openXLSX(path string) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedHeader)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return &xlsxSource{file: f, rows: rows}, nil
}

func (s *xlsxSource) Read() ([]string, int, error) {
	for s.rows.Next() {
		s.line++
		// Raw values: formatted numbers lose precision beyond 15 digits.
		cols, err := s.rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, s.line, err
		}
		if isBlank(cols) {
			continue
		}
		if s.width == 0 {
			s.width = len(cols)
		} else if len(cols) < s.width {
			padded := make([]string, s.width)
			copy(padded, cols)
			cols = padded
		} else if len(cols) > s.width {
			return nil, s.line, fmt.Errorf("%w: line %d: wrong number of fields: expected %d, got %d",
				ErrMalformedRow, s.line, s.width, len(cols))
		}
		return cols, s.line, nil
	}
	if err := s.rows.Error(); err != nil {
		return nil, s.line, err
	}
	return nil, s.line, io.EOF
}

func (s *xlsxSource) Close() error {
	rowsErr := s.rows.Close()
	if err := s.file.Close(); err != nil {
		return err
	}
	return rowsErr
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
