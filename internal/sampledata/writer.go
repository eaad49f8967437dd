package sampledata

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/okian/playrank/internal/adapters/tabular"
	"github.com/okian/playrank/internal/domain/model"
)

const sheetName = "Sheet1"

// WriteRoster writes entries to path with the roster header. The encoding
// follows the file extension, as it does for reading.
func WriteRoster(path string, entries []model.RosterEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.PlayerID, e.HandleName})
	}
	return writeTable(path, tabular.RosterHeader, rows)
}

// WritePlays writes records to path with the play log header.
func WritePlays(path string, records []model.PlayRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.CreatedAt, r.PlayerID, strconv.FormatUint(r.Score, 10)})
	}
	return writeTable(path, tabular.PlayLogHeader, rows)
}

// Write writes both files of ds.
func (ds *Dataset) Write(rosterPath, playPath string) error {
	if err := WriteRoster(rosterPath, ds.Roster); err != nil {
		return err
	}
	return WritePlays(playPath, ds.Plays)
}

func writeTable(path string, header []string, rows [][]string) error {
	format, err := tabular.FormatFor(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	switch format {
	case tabular.FormatXLSX:
		err = writeXLSX(path, header, rows)
	case tabular.FormatTSV:
		err = writeDelimited(path, '\t', header, rows)
	default:
		err = writeDelimited(path, ',', header, rows)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

func writeDelimited(path string, comma rune, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = comma
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

// writeXLSX streams rows into the first sheet. Every cell is written as a
// string so large scores survive without float formatting.
func writeXLSX(path string, header []string, rows [][]string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}
	write := func(i int, row []string) error {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		return sw.SetRow(cell, values)
	}

	if err := write(0, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := write(i+1, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}
