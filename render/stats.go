package render

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// WriteStats writes one CSV row per walk.
func WriteStats(w io.Writer, stats []Stat) error {
	return gocsv.Marshal(stats, w)
}

// SaveStats writes stats to fname.
func SaveStats(fname string, stats []Stat) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := WriteStats(f, stats); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return f.Close()
}
