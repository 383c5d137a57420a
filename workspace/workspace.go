// Package workspace models the host workspace as a tree of named binary
// items. The importer only ever reads from it.
package workspace

import "context"

// MIME markers the importer understands. Anything else is rejected.
const (
	MimeFolder = "inode/directory"
	MimeBinary = "application/octet-stream"
)

// Item is a named blob or folder owned by the host workspace. Content and
// Children may block on I/O, so both take a context.
type Item interface {
	Title() string
	MimeType() string

	// Content fetches the raw bytes of a binary item.
	Content(ctx context.Context) ([]byte, error)

	// Children lists a folder's entries in the order the workspace
	// reports them.
	Children(ctx context.Context) ([]Item, error)
}

// MemFile is an in-memory binary item.
type MemFile struct {
	Name string
	Data []byte
}

func (f *MemFile) Title() string    { return f.Name }
func (f *MemFile) MimeType() string { return MimeBinary }

func (f *MemFile) Content(context.Context) ([]byte, error) { return f.Data, nil }

func (f *MemFile) Children(context.Context) ([]Item, error) { return nil, nil }

// MemFolder is an in-memory folder item.
type MemFolder struct {
	Name  string
	Items []Item
}

func (d *MemFolder) Title() string    { return d.Name }
func (d *MemFolder) MimeType() string { return MimeFolder }

func (d *MemFolder) Content(context.Context) ([]byte, error) { return nil, nil }

func (d *MemFolder) Children(context.Context) ([]Item, error) { return d.Items, nil }
