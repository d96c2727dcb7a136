package model

// Layer is an ordered collection of elements on a page.
type Layer struct {
	Name     string
	Visible  bool
	Elements []Element
}

// NewLayer returns an empty, visible layer.
func NewLayer() *Layer { return &Layer{Visible: true} }

// AddElement appends e to the layer.
func (l *Layer) AddElement(e Element) { l.Elements = append(l.Elements, e) }

// Annotated reports whether the layer holds any elements.
func (l *Layer) Annotated() bool { return len(l.Elements) > 0 }
