package workspace

import (
	"context"
	"os"
	"path/filepath"
)

// Dir exposes an OS directory tree as workspace items. Used by the CLI
// harness and by tests that import real folders.
type Dir struct {
	path string
	info os.FileInfo
}

// OpenDir stats the path and wraps it as a workspace item.
func OpenDir(path string) (*Dir, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &Dir{path: path, info: info}, nil
}

func (d *Dir) Title() string { return filepath.Base(d.path) }

func (d *Dir) MimeType() string {
	if d.info.IsDir() {
		return MimeFolder
	}
	return MimeBinary
}

func (d *Dir) Content(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(d.path)
}

func (d *Dir) Children(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		items = append(items, &Dir{path: filepath.Join(d.path, entry.Name()), info: info})
	}
	return items, nil
}
