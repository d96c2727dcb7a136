package model

import "sync"

// PdfBackground provides the page geometry of a pdf backing the document.
// Implementations live outside the model; see the pdf package.
type PdfBackground interface {
	// PageCount returns the number of pages in the backing pdf.
	PageCount() int
	// PageSize returns the natural size of the 0-based pdf page in points.
	PageSize(i int) (width, height float64, err error)
	// Filepath returns the location the pdf was loaded from.
	Filepath() string
}

// Document is an ordered sequence of pages with an optional pdf background.
// Mutations of page geometry happen under the document lock; notification of
// listeners is the caller's job and happens after the lock is released.
type Document struct {
	mu         sync.Mutex
	pages      []*Page
	background PdfBackground
	filepath   string
}

// NewDocument returns an empty document.
func NewDocument() *Document { return &Document{} }

func (d *Document) Lock()   { d.mu.Lock() }
func (d *Document) Unlock() { d.mu.Unlock() }

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.pages) }

// Page returns the 0-based page, or nil when out of range.
func (d *Document) Page(i int) *Page {
	if i < 0 || i >= len(d.pages) {
		return nil
	}
	return d.pages[i]
}

// Pages returns the page sequence in document order.
func (d *Document) Pages() []*Page { return d.pages }

// IndexOf returns the 0-based position of p, or -1 when p is not part of
// the document.
func (d *Document) IndexOf(p *Page) int {
	for i, q := range d.pages {
		if q == p {
			return i
		}
	}
	return -1
}

// AddPage appends p.
func (d *Document) AddPage(p *Page) { d.pages = append(d.pages, p) }

// InsertPage places p at the 0-based position, clamped into range.
func (d *Document) InsertPage(p *Page, at int) {
	if at < 0 {
		at = 0
	}
	if at > len(d.pages) {
		at = len(d.pages)
	}
	d.pages = append(d.pages, nil)
	copy(d.pages[at+1:], d.pages[at:])
	d.pages[at] = p
}

// DeletePage removes the 0-based page. Out-of-range positions are ignored.
func (d *Document) DeletePage(at int) {
	if at < 0 || at >= len(d.pages) {
		return
	}
	d.pages = append(d.pages[:at], d.pages[at+1:]...)
}

// SwapPages exchanges the pages at the two 0-based positions.
func (d *Document) SwapPages(i, j int) {
	if i < 0 || i >= len(d.pages) || j < 0 || j >= len(d.pages) {
		return
	}
	d.pages[i], d.pages[j] = d.pages[j], d.pages[i]
}

// SetPageSize updates the size of p. The caller holds the document lock.
func (d *Document) SetPageSize(p *Page, width, height float64) {
	p.Width = width
	p.Height = height
}

// Background returns the backing pdf, or nil when the document has none.
func (d *Document) Background() PdfBackground { return d.background }

// SetBackground installs the backing pdf.
func (d *Document) SetBackground(b PdfBackground) { d.background = b }

// PdfFilepath returns the backing pdf's location, or "" when there is none.
func (d *Document) PdfFilepath() string {
	if d.background == nil {
		return ""
	}
	return d.background.Filepath()
}

// Filepath returns the document's own save location.
func (d *Document) Filepath() string { return d.filepath }

// SetFilepath records the document's save location.
func (d *Document) SetFilepath(path string) { d.filepath = path }
