package tabular

import (
	"fmt"
	"path/filepath"
	"strings"
)

// rowSource yields the rows of a tabular file, header first.
type rowSource interface {
	// Read returns the next row and its 1-based line number, or io.EOF.
	Read() ([]string, int, error)
	Close() error
}

// Format identifies a tabular file encoding.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// FormatFor picks the format from the file extension. Unknown or missing
// extensions are read as CSV.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return FormatTSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return "", fmt.Errorf("%w: legacy .xls workbooks are not supported", ErrUnsupportedFormat)
	default:
		return FormatCSV, nil
	}
}

// openSource opens path with the decoder for its format.
func openSource(path string) (rowSource, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLSX:
		return openXLSX(path)
	case FormatTSV:
		return openDelimited(path, '\t')
	default:
		return openDelimited(path, ',')
	}
}
