// Package control is the host's control facade: the document, the tool
// registry, layer and background controllers, settings, and the seams the
// GUI shell plugs into. The scripting bridge talks to the host exclusively
// through this package.
package control

import (
	"xournalpp/model"
	"xournalpp/observability"
	"xournalpp/tool"
)

// Hooks receives change notifications from the control facade. Nil fields
// are skipped. Register with AddHooks.
type Hooks struct {
	PageSelected     func(page int)
	PageSizeChanged  func(page int)
	PageChanged      func(page int)
	ActionSelected   func(group ActionGroup, action ActionType)
	ToolColorChanged func()
}

// Config assembles a Control. Zero fields fall back to sensible defaults:
// an empty document, stock tools and settings, no-op scrolling.
type Config struct {
	Document *model.Document
	Tools    *tool.Handler
	Settings *Settings
	Scroll   ScrollHandler
	Layout   Layout
	Logger   observability.Logger
}

// Control owns the live host state and mediates every mutation of it.
type Control struct {
	doc      *model.Document
	tools    *tool.Handler
	layers   *LayerController
	bgCtrl   *PageBackgroundChangeController
	settings *Settings
	scroll   ScrollHandler
	layout   Layout
	log      observability.Logger

	selection *EditSelection
	hooks     []*Hooks

	lastAction ActionType
	lastGroup  ActionGroup
}

// New builds a Control from cfg.
func New(cfg Config) *Control {
	c := &Control{
		doc:      cfg.Document,
		tools:    cfg.Tools,
		settings: cfg.Settings,
		scroll:   cfg.Scroll,
		layout:   cfg.Layout,
		log:      cfg.Logger,
	}
	if c.doc == nil {
		c.doc = model.NewDocument()
	}
	if c.tools == nil {
		c.tools = tool.NewHandler()
	}
	if c.settings == nil {
		c.settings = NewSettings()
	}
	if c.scroll == nil {
		c.scroll = nopScrollHandler{}
	}
	if c.layout == nil {
		c.layout = nopLayout{}
	}
	if c.log == nil {
		c.log = observability.NopLogger{}
	}
	c.layers = &LayerController{ctrl: c}
	c.bgCtrl = &PageBackgroundChangeController{ctrl: c}
	return c
}

func (c *Control) Document() *model.Document         { return c.doc }
func (c *Control) ToolHandler() *tool.Handler        { return c.tools }
func (c *Control) LayerController() *LayerController { return c.layers }
func (c *Control) Settings() *Settings               { return c.settings }
func (c *Control) ScrollHandler() ScrollHandler      { return c.scroll }
func (c *Control) Layout() Layout                    { return c.layout }
func (c *Control) Logger() observability.Logger      { return c.log }

// PageBackgroundChangeController returns the background controller.
func (c *Control) PageBackgroundChangeController() *PageBackgroundChangeController {
	return c.bgCtrl
}

// CurrentPageNo returns the 0-based current page index.
func (c *Control) CurrentPageNo() int { return c.layers.CurrentPageID() }

// CurrentPage returns the current page, or nil for an empty document.
func (c *Control) CurrentPage() *model.Page { return c.layers.CurrentPage() }

// AddHooks registers h for change notifications.
func (c *Control) AddHooks(h *Hooks) { c.hooks = append(c.hooks, h) }

// FirePageSelected makes page the current page and notifies listeners.
func (c *Control) FirePageSelected(page int) {
	c.layers.currentPage = page
	for _, h := range c.hooks {
		if h.PageSelected != nil {
			h.PageSelected(page)
		}
	}
}

// FirePageSizeChanged notifies listeners that a page's size changed.
func (c *Control) FirePageSizeChanged(page int) {
	for _, h := range c.hooks {
		if h.PageSizeChanged != nil {
			h.PageSizeChanged(page)
		}
	}
}

// FirePageChanged notifies listeners that a page's content changed.
func (c *Control) FirePageChanged(page int) {
	for _, h := range c.hooks {
		if h.PageChanged != nil {
			h.PageChanged(page)
		}
	}
}

// FireActionSelected notifies action listeners without persisting any
// state. uiActionSelected exposes this directly to scripts.
func (c *Control) FireActionSelected(group ActionGroup, action ActionType) {
	c.lastAction, c.lastGroup = action, group
	for _, h := range c.hooks {
		if h.ActionSelected != nil {
			h.ActionSelected(group, action)
		}
	}
}

// ToolColorChanged notifies listeners that a tool color changed.
func (c *Control) ToolColorChanged() {
	for _, h := range c.hooks {
		if h.ToolColorChanged != nil {
			h.ToolColorChanged()
		}
	}
}

// LastAction returns the most recently performed or selected action.
func (c *Control) LastAction() (ActionType, ActionGroup) {
	return c.lastAction, c.lastGroup
}

// ActionPerformed applies a UI action to the host state. Actions without a
// headless effect are recorded and left to the GUI shell.
func (c *Control) ActionPerformed(action ActionType, group ActionGroup, enabled bool) {
	c.lastAction, c.lastGroup = action, group
	c.log.Debug("action performed",
		observability.String("action", string(action)),
		observability.String("group", string(group)),
		observability.Bool("enabled", enabled))

	if t, ok := toolForAction(action); ok {
		if enabled {
			c.tools.SelectTool(t)
		}
		return
	}
	if s, ok := sizeForAction(action); ok {
		if enabled {
			c.tools.ActiveTool().Size = s
		}
		return
	}
	if e, ok := eraserModeForAction(action); ok {
		if enabled {
			c.tools.SetEraserType(e)
		}
		return
	}
	if d, ok := drawingTypeForAction(action); ok {
		t := c.tools.ActiveTool()
		if enabled {
			t.DrawingType = d
		} else if t.DrawingType == d {
			t.DrawingType = tool.DrawingDefault
		}
		return
	}

	switch action {
	case ActionNewLayer, ActionDeleteLayer, ActionMergeLayerDown,
		ActionGotoNextLayer, ActionGotoPreviousLayer, ActionGotoTopLayer:
		// Validated upstream, cannot fail here.
		_ = c.layers.ActionPerformed(action)
	case ActionGotoFirst:
		c.FirePageSelected(0)
	case ActionGotoBack:
		c.FirePageSelected(clampPage(c.CurrentPageNo()-1, c.doc.PageCount()))
	case ActionGotoNext:
		c.FirePageSelected(clampPage(c.CurrentPageNo()+1, c.doc.PageCount()))
	case ActionGotoLast:
		c.FirePageSelected(clampPage(c.doc.PageCount()-1, c.doc.PageCount()))
	case ActionNewPageBefore:
		c.insertNewPage(c.CurrentPageNo())
	case ActionNewPageAfter:
		c.insertNewPage(c.CurrentPageNo() + 1)
	case ActionDeletePage:
		c.deleteCurrentPage()
	}
}

// RunSidebarAction executes one of the page sidebar operations on the
// current page.
func (c *Control) RunSidebarAction(action SidebarAction) {
	cur := c.CurrentPageNo()
	page := c.CurrentPage()
	if page == nil {
		c.log.Warn("sidebar action without a current page",
			observability.String("action", string(action)))
		return
	}
	switch action {
	case SidebarCopy:
		c.doc.InsertPage(page.Clone(), cur+1)
		c.FirePageSelected(cur + 1)
	case SidebarDelete:
		c.deleteCurrentPage()
	case SidebarMoveUp:
		if cur > 0 {
			c.doc.SwapPages(cur, cur-1)
			c.FirePageSelected(cur - 1)
		}
	case SidebarMoveDown:
		if cur < c.doc.PageCount()-1 {
			c.doc.SwapPages(cur, cur+1)
			c.FirePageSelected(cur + 1)
		}
	case SidebarNewBefore:
		c.insertNewPage(cur)
	case SidebarNewAfter:
		c.insertNewPage(cur + 1)
	}
}

// insertNewPage adds a blank page at the 0-based position, sized like the
// current page, and selects it.
func (c *Control) insertNewPage(at int) {
	width, height := 595.28, 841.89
	if page := c.CurrentPage(); page != nil {
		width, height = page.Width, page.Height
	}
	c.doc.InsertPage(model.NewPage(width, height), at)
	c.FirePageSelected(clampPage(at, c.doc.PageCount()))
}

func (c *Control) deleteCurrentPage() {
	cur := c.CurrentPageNo()
	if c.doc.Page(cur) == nil {
		return
	}
	c.doc.DeletePage(cur)
	c.FirePageSelected(clampPage(cur, c.doc.PageCount()))
}

func clampPage(page, count int) int {
	if count == 0 {
		return 0
	}
	if page < 0 {
		return 0
	}
	if page > count-1 {
		return count - 1
	}
	return page
}

func toolForAction(a ActionType) (tool.Type, bool) {
	switch a {
	case ActionToolPen:
		return tool.TypePen, true
	case ActionToolEraser:
		return tool.TypeEraser, true
	case ActionToolHighlighter:
		return tool.TypeHighlighter, true
	case ActionToolText:
		return tool.TypeText, true
	case ActionToolImage:
		return tool.TypeImage, true
	case ActionToolSelectRect:
		return tool.TypeSelectRect, true
	case ActionToolSelectRegion:
		return tool.TypeSelectRegion, true
	case ActionToolSelectObject:
		return tool.TypeSelectObject, true
	case ActionToolVerticalSpace:
		return tool.TypeVerticalSpace, true
	case ActionToolHand:
		return tool.TypeHand, true
	case ActionToolPlayObject:
		return tool.TypePlayObject, true
	case ActionToolFloatingToolbox:
		return tool.TypeFloatingToolbox, true
	}
	return tool.TypeNone, false
}

func sizeForAction(a ActionType) (tool.Size, bool) {
	switch a {
	case ActionSizeVeryFine:
		return tool.SizeVeryFine, true
	case ActionSizeFine:
		return tool.SizeFine, true
	case ActionSizeMedium:
		return tool.SizeMedium, true
	case ActionSizeThick:
		return tool.SizeThick, true
	case ActionSizeVeryThick:
		return tool.SizeVeryThick, true
	}
	return 0, false
}

func eraserModeForAction(a ActionType) (tool.EraserType, bool) {
	switch a {
	case ActionToolEraserStandard:
		return tool.EraserStandard, true
	case ActionToolEraserWhiteout:
		return tool.EraserWhiteout, true
	case ActionToolEraserDeleteStroke:
		return tool.EraserDeleteStroke, true
	}
	return 0, false
}

func drawingTypeForAction(a ActionType) (tool.DrawingType, bool) {
	switch a {
	case ActionRuler:
		return tool.DrawingLine, true
	case ActionToolDrawRect:
		return tool.DrawingRectangle, true
	case ActionToolDrawEllipse:
		return tool.DrawingEllipse, true
	case ActionToolDrawArrow:
		return tool.DrawingArrow, true
	case ActionToolDrawCoordinateSystem:
		return tool.DrawingCoordinateSystem, true
	case ActionToolDrawSpline:
		return tool.DrawingSpline, true
	case ActionShapeRecognizer:
		return tool.DrawingShapeRecognizer, true
	}
	return 0, false
}
