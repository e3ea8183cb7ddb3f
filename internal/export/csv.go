// Package export writes sampled simulation runs to formats teachers can
// drop into spreadsheets and worksheets.
package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/k-sandesh/edusim/internal/sim"
)

// WriteCSV writes a sampled series with a header row of "time" followed by
// the model's output labels.
func WriteCSV(w io.Writer, s *sim.Series) error {
	if s == nil || len(s.Times) == 0 {
		return errors.New("export: empty series")
	}
	cw := csv.NewWriter(w)

	header := append([]string{"time"}, s.Labels...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, t := range s.Times {
		row[0] = strconv.FormatFloat(t, 'f', 6, 64)
		for j, v := range s.States[i] {
			row[j+1] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
