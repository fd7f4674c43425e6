// Package export writes solution series (x, y sample pairs with a legend
// label) in formats a plotting tool can ingest.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrLengthMismatch indicates a Series whose X and Y differ in length.
	ErrLengthMismatch = errors.New("export: x and y lengths differ")

	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("export: unknown format")
)

// Supported format names.
const (
	FormatCSV     = "csv"
	FormatMsgpack = "msgpack"
)

// Series is one curve: a legend label and equally long X and Y samples.
type Series struct {
	Label string    `msgpack:"label"`
	X     []float64 `msgpack:"x"`
	Y     []float64 `msgpack:"y"`
}

// Validate checks len(X) == len(Y).
func (s Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series %q: len(x)=%d len(y)=%d: %w", s.Label, len(s.X), len(s.Y), ErrLengthMismatch)
	}

	return nil
}

// Write dispatches to the writer for format.
func Write(w io.Writer, format string, series []Series) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, series)
	case FormatMsgpack:
		return WriteMsgpack(w, series)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// WriteCSV writes a long-format table with header label,x,y and one row per
// sample. Nothing is written when any series is invalid.
func WriteCSV(w io.Writer, series []Series) error {
	for _, s := range series {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"label", "x", "y"}); err != nil {
		return err
	}
	for _, s := range series {
		for i := range s.X {
			rec := []string{
				s.Label,
				strconv.FormatFloat(s.X[i], 'g', -1, 64),
				strconv.FormatFloat(s.Y[i], 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteMsgpack encodes series as a msgpack array of {label, x, y} maps.
func WriteMsgpack(w io.Writer, series []Series) error {
	for _, s := range series {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	return msgpack.NewEncoder(w).Encode(series)
}

// ReadMsgpack decodes what WriteMsgpack produced.
func ReadMsgpack(r io.Reader) ([]Series, error) {
	var series []Series
	if err := msgpack.NewDecoder(r).Decode(&series); err != nil {
		return nil, err
	}

	return series, nil
}
