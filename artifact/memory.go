package artifact

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// MemoryFactory allocates in-memory artifacts. Suitable for small uploads
// and tests; everything lives on the heap until Discard.
type MemoryFactory struct{}

func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{}
}

func (f *MemoryFactory) Create(name string) (Artifact, error) {
	return &memoryArtifact{
		id:   uuid.New().String(),
		name: name,
	}, nil
}

// memoryArtifact is a growable buffer with full Seek semantics, matching
// what *os.File offers for the read/write/seek subset.
type memoryArtifact struct {
	id   string
	name string
	buf  []byte
	pos  int64
}

func (a *memoryArtifact) Read(p []byte) (int, error) {
	if a.pos >= int64(len(a.buf)) {
		return 0, io.EOF
	}
	n := copy(p, a.buf[a.pos:])
	a.pos += int64(n)
	return n, nil
}

func (a *memoryArtifact) Write(p []byte) (int, error) {
	// Zero-fill the gap when a seek moved past the end
	if gap := a.pos - int64(len(a.buf)); gap > 0 {
		a.buf = append(a.buf, make([]byte, gap)...)
	}
	n := copy(a.buf[a.pos:], p)
	if n < len(p) {
		a.buf = append(a.buf, p[n:]...)
	}
	a.pos += int64(len(p))
	return len(p), nil
}

func (a *memoryArtifact) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = a.pos + offset
	case io.SeekEnd:
		next = int64(len(a.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative seek position: %d", next)
	}
	a.pos = next
	return next, nil
}

func (a *memoryArtifact) Name() string {
	return a.name
}

func (a *memoryArtifact) ID() string {
	return a.id
}

func (a *memoryArtifact) Discard() error {
	a.buf = nil
	a.pos = 0
	return nil
}

var _ Artifact = (*memoryArtifact)(nil)
