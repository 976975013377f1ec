package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileFactory allocates temp-file backed artifacts under dir. Filenames are
// uuid-derived so concurrent uploads never collide; the logical name only
// contributes its extension.
type FileFactory struct {
	dir string
}

// NewFileFactory creates a factory writing under dir. An empty dir falls
// back to the system temp directory.
func NewFileFactory(dir string) (*FileFactory, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &FileFactory{dir: dir}, nil
}

func (f *FileFactory) Create(name string) (Artifact, error) {
	id := uuid.New().String()
	path := filepath.Join(f.dir, id+filepath.Ext(name))

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact file: %w", err)
	}

	return &fileArtifact{
		file: file,
		id:   id,
		name: name,
		path: path,
	}, nil
}

type fileArtifact struct {
	file *os.File
	id   string
	name string
	path string
}

func (a *fileArtifact) Read(p []byte) (int, error) {
	return a.file.Read(p)
}

func (a *fileArtifact) Write(p []byte) (int, error) {
	return a.file.Write(p)
}

func (a *fileArtifact) Seek(offset int64, whence int) (int64, error) {
	return a.file.Seek(offset, whence)
}

func (a *fileArtifact) Name() string {
	return a.name
}

func (a *fileArtifact) ID() string {
	return a.id
}

// Path returns the location of the backing file.
func (a *fileArtifact) Path() string {
	return a.path
}

func (a *fileArtifact) Discard() error {
	_ = a.file.Close()
	err := os.Remove(a.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove artifact file: %w", err)
	}
	return nil
}

var _ Artifact = (*fileArtifact)(nil)
