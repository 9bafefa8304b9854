package utils

import (
	"io"
	"sync"
)

type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

// NewLockedReader serializes reads on r so it can be shared by goroutines.
// Deterministic test sources are usually not safe for concurrent use.
func NewLockedReader(r io.Reader) io.Reader {
	if lr, ok := r.(*lockedReader); ok {
		return lr
	}
	return &lockedReader{r: r}
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
