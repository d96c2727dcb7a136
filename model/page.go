package model

// NoPdfPage marks a page whose background is not tied to a pdf page.
const NoPdfPage = -1

// Page is a single document page. Layer numbering as seen by callers is
// 1-based for content layers; id 0 addresses the background.
type Page struct {
	Width             float64
	Height            float64
	Background        PageType
	BackgroundName    string
	BackgroundVisible bool
	PdfPageNr         int
	Layers            []*Layer

	// SelectedLayerID is 0 for the background, 1..len(Layers) for content
	// layers.
	SelectedLayerID int
}

// NewPage returns an empty page with the given size and a plain background.
func NewPage(width, height float64) *Page {
	return &Page{
		Width:             width,
		Height:            height,
		Background:        PageType{Format: FormatPlain},
		BackgroundVisible: true,
		PdfPageNr:         NoPdfPage,
	}
}

// LayerCount returns the number of content layers.
func (p *Page) LayerCount() int { return len(p.Layers) }

// Layer returns the content layer with 1-based id, or nil when out of range.
func (p *Page) Layer(id int) *Layer {
	if id < 1 || id > len(p.Layers) {
		return nil
	}
	return p.Layers[id-1]
}

// AddLayer appends a content layer and returns its 1-based id.
func (p *Page) AddLayer(l *Layer) int {
	p.Layers = append(p.Layers, l)
	return len(p.Layers)
}

// InsertLayer places l at the 0-based position among content layers and
// selects the inserted layer.
func (p *Page) InsertLayer(l *Layer, at int) {
	if at < 0 {
		at = 0
	}
	if at > len(p.Layers) {
		at = len(p.Layers)
	}
	p.Layers = append(p.Layers, nil)
	copy(p.Layers[at+1:], p.Layers[at:])
	p.Layers[at] = l
	p.SelectedLayerID = at + 1
}

// RemoveLayer deletes the content layer with 1-based id.
func (p *Page) RemoveLayer(id int) {
	if id < 1 || id > len(p.Layers) {
		return
	}
	p.Layers = append(p.Layers[:id-1], p.Layers[id:]...)
}

// SelectedLayer returns the layer the selection id points at, creating a
// first layer when the page has none. A background selection maps to the
// first content layer, matching how drawing on a fresh page behaves.
func (p *Page) SelectedLayer() *Layer {
	if len(p.Layers) == 0 {
		p.AddLayer(NewLayer())
	}
	id := p.SelectedLayerID
	if id > 0 {
		id--
	}
	return p.Layers[id]
}

// Annotated reports whether any content layer holds elements.
func (p *Page) Annotated() bool {
	for _, l := range p.Layers {
		if l.Annotated() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() *Page {
	c := *p
	c.Layers = make([]*Layer, len(p.Layers))
	for i, l := range p.Layers {
		cl := &Layer{Name: l.Name, Visible: l.Visible}
		cl.Elements = make([]Element, len(l.Elements))
		for j, e := range l.Elements {
			cl.Elements[j] = cloneElement(e)
		}
		c.Layers[i] = cl
	}
	return &c
}

func cloneElement(e Element) Element {
	switch v := e.(type) {
	case *Stroke:
		c := *v
		c.Points = append([]Point(nil), v.Points...)
		c.Style = LineStyle{Dashes: append([]float64(nil), v.Style.Dashes...)}
		return &c
	case *Text:
		c := *v
		return &c
	}
	return e
}
