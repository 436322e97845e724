package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BerylCAtieno/ocr-service/internal/utils"
)

// TempPrefix is prepended to every staged file name.
const TempPrefix = "temp_"

type Storage interface {
	Stage(ctx context.Context, r io.Reader) (*TempFile, error)
}

// TempFile is an upload materialized on local disk. The caller owns it
// and must call Release once done, on every exit path.
type TempFile struct {
	Path string
	Size int64

	once sync.Once
	err  error
}

// Release removes the file. It is safe to call more than once; a file
// that is already gone is not an error.
func (f *TempFile) Release() error {
	f.once.Do(func() {
		if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			f.err = fmt.Errorf("failed to remove temp file: %w", err)
		}
	})
	return f.err
}

type localStorage struct {
	dir string
}

func NewLocalStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &localStorage{dir: dir}, nil
}

// Stage copies r into <dir>/temp_<uuid>. The name never derives from
// client input, so concurrent uploads of the same filename cannot collide.
func (s *localStorage) Stage(ctx context.Context, r io.Reader) (*TempFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, TempPrefix+utils.GenerateID())

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	tmp := &TempFile{Path: path}

	n, err := io.Copy(out, contextReader{ctx: ctx, r: r})
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = tmp.Release()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	tmp.Size = n
	return tmp, nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
