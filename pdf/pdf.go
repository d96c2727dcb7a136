// Package pdf provides the page geometry of documents used as notebook
// backgrounds. The heavy lifting is delegated to pdfcpu; geometry is read
// once at load time so later lookups never touch the file again.
package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// File is a pdf opened for background use.
type File struct {
	path string
	dims []types.Dim
}

// Load reads the page geometry of the pdf at path.
func Load(path string) (*File, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf page sizes of %s: %w", path, err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("pdf %s has no pages", path)
	}
	return &File{path: path, dims: dims}, nil
}

// PageCount returns the number of pages.
func (f *File) PageCount() int { return len(f.dims) }

// PageSize returns the natural size of the 0-based page in points.
func (f *File) PageSize(i int) (float64, float64, error) {
	if i < 0 || i >= len(f.dims) {
		return 0, 0, fmt.Errorf("pdf page %d out of range [0, %d)", i, len(f.dims))
	}
	return f.dims[i].Width, f.dims[i].Height, nil
}

// Filepath returns the location the pdf was loaded from.
func (f *File) Filepath() string { return f.path }

// Memory is an in-memory page-geometry table. It serves tests and headless
// hosts that want a pdf-backed page layout without a file on disk.
type Memory struct {
	Path  string
	Sizes [][2]float64
}

// PageCount returns the number of pages.
func (m *Memory) PageCount() int { return len(m.Sizes) }

// PageSize returns the natural size of the 0-based page in points.
func (m *Memory) PageSize(i int) (float64, float64, error) {
	if i < 0 || i >= len(m.Sizes) {
		return 0, 0, fmt.Errorf("pdf page %d out of range [0, %d)", i, len(m.Sizes))
	}
	return m.Sizes[i][0], m.Sizes[i][1], nil
}

// Filepath returns the notional location of the table.
func (m *Memory) Filepath() string { return m.Path }
