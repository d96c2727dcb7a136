package control

// ScrollHandler moves the viewport between pages. The GUI shell provides
// the real implementation; headless hosts use the recording one.
type ScrollHandler interface {
	ScrollToPage(page int)
}

// Layout scrolls within the continuous page layout, in points.
type Layout interface {
	ScrollRelative(dx, dy float64)
	ScrollAbs(x, y float64)
}

type nopScrollHandler struct{}

func (nopScrollHandler) ScrollToPage(int) {}

type nopLayout struct{}

func (nopLayout) ScrollRelative(float64, float64) {}
func (nopLayout) ScrollAbs(float64, float64)      {}

// RecordingScrollHandler remembers every page scroll request.
type RecordingScrollHandler struct {
	Pages []int
}

func (r *RecordingScrollHandler) ScrollToPage(page int) {
	r.Pages = append(r.Pages, page)
}

// LastPage returns the most recent scroll target, or -1 when none happened.
func (r *RecordingScrollHandler) LastPage() int {
	if len(r.Pages) == 0 {
		return -1
	}
	return r.Pages[len(r.Pages)-1]
}

// RecordingLayout accumulates scroll movements into a viewport position.
type RecordingLayout struct {
	X float64
	Y float64
}

func (r *RecordingLayout) ScrollRelative(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

func (r *RecordingLayout) ScrollAbs(x, y float64) {
	r.X = x
	r.Y = y
}
