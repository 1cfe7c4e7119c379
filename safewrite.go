package flowart

import (
	"fmt"
	"os"
	"path"
)

// Saver is anything that can write itself to a file, picking the format from
// the extension. Context and Raster both are.
type Saver interface {
	Save(fname string) error
}

// SafeWrite noisily saves to tmp file and then moves it into place.
// It returns the final filename.
func (s Seed) SafeWrite(ctx Saver, prefix, ext string) (string, error) {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(ctx, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return "", err
	}
	fmt.Printf("Saved to %s\n", fname)
	return fname, nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(ctx Saver, fname string) error {
	dir := path.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	ext := path.Ext(fname)
	// The temp file lives next to the target so the rename stays on one drive.
	tmpfile, err := os.CreateTemp(dir, "flowart.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close()
	if err := ctx.Save(tmpfile.Name()); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}

	return os.Chmod(fname, 0664)
}
