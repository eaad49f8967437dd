// Package report renders ranked rows as the leaderboard text report.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/okian/playrank/internal/domain/model"
)

// Header is the first line of every report.
const Header = "rank,player_id,handle_name,score"

// Write writes the header and one line per row to w.
// Fields are written verbatim; no quoting is applied.
func Write(w io.Writer, rows []model.RankedRow) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if _, err := bw.WriteString(row.String() + "\n"); err != nil {
			return fmt.Errorf("write row %s: %w", row.PlayerID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
