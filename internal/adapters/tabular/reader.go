// Package tabular reads the roster and play log inputs from delimited text or
// spreadsheet files.
package tabular

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/playrank/internal/domain/model"
)

// Expected headers, in column order.
var (
	RosterHeader  = []string{"player_id", "handle_name"}
	PlayLogHeader = []string{"create_timestamp", "player_id", "score"}
)

const utf8BOM = "\ufeff"

// ReadRosterEntries reads every roster row in file order.
func ReadRosterEntries(ctx context.Context, path string) (entries []model.RosterEntry, err error) {
	defer func() { err = inputError(path, err) }()

	err = scan(ctx, path, RosterHeader, func(row []string, _ int) error {
		entries = append(entries, model.RosterEntry{PlayerID: row[0], HandleName: row[1]})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadRoster reads the roster file at path. When a player_id repeats, the
// last row wins.
func ReadRoster(ctx context.Context, path string) (model.Roster, error) {
	entries, err := ReadRosterEntries(ctx, path)
	if err != nil {
		return nil, err
	}
	return model.NewRoster(entries), nil
}

// ReadPlays reads the play log at path and returns its records in file order.
// Any row that does not parse fails the whole read.
func ReadPlays(ctx context.Context, path string) (records []model.PlayRecord, err error) {
	defer func() { err = inputError(path, err) }()

	err = scan(ctx, path, PlayLogHeader, func(row []string, line int) error {
		score, perr := strconv.ParseUint(row[2], 10, 64)
		if perr != nil {
			return fmt.Errorf("%w: line %d: %q: %w", ErrInvalidScore, line, row[2], perr)
		}
		records = append(records, model.PlayRecord{CreatedAt: row[0], PlayerID: row[1], Score: score})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// scan opens path, checks the header against want and calls fn for every data
// row. The file is closed before scan returns.
func scan(ctx context.Context, path string, want []string, fn func(row []string, line int) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := openSource(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	header, _, err := src.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: missing header row, expected %s", ErrMalformedHeader, strings.Join(want, ","))
	}
	if err != nil {
		return err
	}
	if err := checkHeader(header, want); err != nil {
		return err
	}

	for {
		row, line, err := src.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedRow, err)
		}
		if len(row) != len(want) {
			return fmt.Errorf("%w: line %d: expected %d fields, got %d", ErrMalformedRow, line, len(want), len(row))
		}
		if err := fn(row, line); err != nil {
			return err
		}
	}
}

func checkHeader(got, want []string) error {
	if len(got) > 0 {
		got[0] = strings.TrimPrefix(got[0], utf8BOM)
	}
	if len(got) != len(want) {
		return fmt.Errorf("%w: got %q, expected %s", ErrMalformedHeader, strings.Join(got, ","), strings.Join(want, ","))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: column %d is %q, expected %q", ErrMalformedHeader, i+1, got[i], want[i])
		}
	}
	return nil
}
