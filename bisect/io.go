package bisect

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load opens a file and decodes it with f.
func Load[T any](path string, f func(io.Reader) (T, error)) (T, error) {
	r, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer r.Close()
	res, err := f(r)
	if err != nil {
		return res, errors.Wrap(err, path)
	}
	return res, nil
}

// Save creates a file and encodes obj into it with f.
func Save[T any](path string, obj T, f func(io.Writer, T) error) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f(w, obj); err != nil {
		w.Close()
		return errors.Wrap(err, path)
	}
	return w.Close()
}
