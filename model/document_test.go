package model

import "testing"

func TestSelectedLayerCreatesFirstLayer(t *testing.T) {
	p := NewPage(100, 100)
	if p.LayerCount() != 0 {
		t.Fatalf("fresh page should have no layers, got %d", p.LayerCount())
	}
	l := p.SelectedLayer()
	if l == nil {
		t.Fatalf("SelectedLayer returned nil")
	}
	if p.LayerCount() != 1 {
		t.Fatalf("expected a lazily created layer, got %d layers", p.LayerCount())
	}
	// Background selection and layer 1 resolve to the same layer.
	p.SelectedLayerID = 0
	if p.SelectedLayer() != l {
		t.Errorf("background selection should map to the first content layer")
	}
	p.SelectedLayerID = 1
	if p.SelectedLayer() != l {
		t.Errorf("layer id 1 should map to the first content layer")
	}
}

func TestPageLayerLookup(t *testing.T) {
	p := NewPage(100, 100)
	first := NewLayer()
	second := NewLayer()
	if id := p.AddLayer(first); id != 1 {
		t.Fatalf("first layer id = %d, want 1", id)
	}
	if id := p.AddLayer(second); id != 2 {
		t.Fatalf("second layer id = %d, want 2", id)
	}
	if p.Layer(2) != second {
		t.Errorf("Layer(2) did not return the second layer")
	}
	if p.Layer(0) != nil || p.Layer(3) != nil {
		t.Errorf("out-of-range layer lookup should return nil")
	}
}

func TestPageAnnotated(t *testing.T) {
	p := NewPage(100, 100)
	p.AddLayer(NewLayer())
	if p.Annotated() {
		t.Fatalf("page with empty layers should not be annotated")
	}
	p.Layers[0].AddElement(&Stroke{Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 2}}})
	if !p.Annotated() {
		t.Fatalf("page with a stroke should be annotated")
	}
}

func TestPageCloneIsDeep(t *testing.T) {
	p := NewPage(100, 200)
	l := NewLayer()
	l.Name = "notes"
	l.AddElement(&Stroke{Width: 1, Points: []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}})
	l.AddElement(&Text{Content: "hello", Font: Font{Name: "Sans", Size: 12}})
	p.AddLayer(l)

	c := p.Clone()
	if c.LayerCount() != 1 || len(c.Layers[0].Elements) != 2 {
		t.Fatalf("clone lost content")
	}

	orig := p.Layers[0].Elements[0].(*Stroke)
	copied := c.Layers[0].Elements[0].(*Stroke)
	copied.Points[0].X = 99
	if orig.Points[0].X == 99 {
		t.Errorf("clone shares point storage with the original")
	}
}

func TestDocumentPageOperations(t *testing.T) {
	d := NewDocument()
	a := NewPage(100, 100)
	b := NewPage(100, 100)
	c := NewPage(100, 100)
	d.AddPage(a)
	d.AddPage(b)

	d.InsertPage(c, 1)
	if d.PageCount() != 3 || d.Page(1) != c {
		t.Fatalf("InsertPage misplaced the page")
	}
	if d.IndexOf(b) != 2 {
		t.Fatalf("IndexOf(b) = %d, want 2", d.IndexOf(b))
	}

	d.SwapPages(0, 2)
	if d.Page(0) != b || d.Page(2) != a {
		t.Fatalf("SwapPages did not exchange pages")
	}

	d.DeletePage(1)
	if d.PageCount() != 2 || d.IndexOf(c) != -1 {
		t.Fatalf("DeletePage did not remove the page")
	}

	if d.Page(-1) != nil || d.Page(2) != nil {
		t.Errorf("out-of-range page lookup should return nil")
	}
}

func TestDocumentSetPageSize(t *testing.T) {
	d := NewDocument()
	p := NewPage(100, 100)
	d.AddPage(p)

	d.Lock()
	d.SetPageSize(p, 595.28, 841.89)
	d.Unlock()

	if p.Width != 595.28 || p.Height != 841.89 {
		t.Fatalf("page size = (%v, %v), want (595.28, 841.89)", p.Width, p.Height)
	}
}

func TestTextScaleAboutOwnAnchor(t *testing.T) {
	txt := &Text{X: 10, Y: 20, Font: Font{Name: "Sans", Size: 12}}
	txt.Scale(txt.X, txt.Y, 2, 2)
	if txt.X != 10 || txt.Y != 20 {
		t.Errorf("scaling about the anchor moved the text to (%v, %v)", txt.X, txt.Y)
	}
	if txt.Font.Size != 24 {
		t.Errorf("font size = %v, want 24", txt.Font.Size)
	}
}
