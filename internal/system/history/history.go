// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive loop's line history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const filename = ".diy_history"

// Path returns the location of the history file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, filename), nil
}

// Load passes the history file to read. A missing file is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.Open(p)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	defer f.Close()

	if err = lock(f, false); err != nil {
		return err
	}
	defer unlock(f) //nolint:errcheck

	_, err = read(f)

	return err
}

// Save passes the truncated history file to write. Concurrent sessions
// serialize on an advisory lock so that one save does not interleave
// with another.
func Save(write func(w io.Writer) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if err = lock(f, true); err != nil {
		f.Close()

		return err
	}

	if err = f.Truncate(0); err == nil {
		_, err = write(f)
	}

	uerr := unlock(f)
	cerr := f.Close()

	switch {
	case err != nil:
		return err
	case uerr != nil:
		return uerr
	}

	return cerr
}
