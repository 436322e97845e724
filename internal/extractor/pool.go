package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

var ErrPoolClosed = errors.New("OCR engine pool is closed")

// Pool shares a fixed set of engine instances between concurrent requests.
// Each instance serves one call at a time; callers queue until one is idle.
type Pool struct {
	idle chan Reader
	all  []Reader
	done chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// NewPool creates size readers using factory. Readers that implement
// io.Closer are closed by Close.
func NewPool(size int, factory func() (Reader, error)) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("pool size must be at least 1, got %d", size)
	}

	p := &Pool{
		idle: make(chan Reader, size),
		all:  make([]Reader, 0, size),
		done: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		r, err := factory()
		if err != nil {
			_ = p.Close()
			return nil, fmt.Errorf("failed to create OCR reader %d: %w", i, err)
		}
		p.all = append(p.all, r)
		p.idle <- r
	}

	return p, nil
}

func (p *Pool) Size() int {
	return len(p.all)
}

// ReadText runs the call on the next idle reader. It returns ctx.Err() if
// the context ends while waiting.
func (p *Pool) ReadText(ctx context.Context, path string) ([]string, error) {
	select {
	case <-p.done:
		return nil, ErrPoolClosed
	default:
	}

	var r Reader
	select {
	case r = <-p.idle:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.done:
		return nil, ErrPoolClosed
	}
	defer func() { p.idle <- r }()

	return r.ReadText(ctx, path)
}

// Close releases every reader. Calls after the first return the same result.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)

		var errs []error
		for _, r := range p.all {
			if c, ok := r.(io.Closer); ok {
				if err := c.Close(); err != nil {
					errs = append(errs, err)
				}
			}
		}
		p.closeErr = errors.Join(errs...)
	})
	return p.closeErr
}
