package control

// ActionType names one UI action. The tokens are the ones scripts pass to
// uiAction and uiActionSelected.
type ActionType string

// ActionGroup names a group of mutually exclusive actions.
type ActionGroup string

const (
	ActionNone ActionType = "ACTION_NONE"

	// File and edit.
	ActionNew         ActionType = "ACTION_NEW"
	ActionOpen        ActionType = "ACTION_OPEN"
	ActionSave        ActionType = "ACTION_SAVE"
	ActionSaveAs      ActionType = "ACTION_SAVE_AS"
	ActionExportAsPdf ActionType = "ACTION_EXPORT_AS_PDF"
	ActionPrint       ActionType = "ACTION_PRINT"
	ActionQuit        ActionType = "ACTION_QUIT"
	ActionUndo        ActionType = "ACTION_UNDO"
	ActionRedo        ActionType = "ACTION_REDO"
	ActionCut         ActionType = "ACTION_CUT"
	ActionCopy        ActionType = "ACTION_COPY"
	ActionPaste       ActionType = "ACTION_PASTE"
	ActionDelete      ActionType = "ACTION_DELETE"
	ActionSelectAll   ActionType = "ACTION_SELECT_ALL"

	// Navigation and page management.
	ActionGotoFirst     ActionType = "ACTION_GOTO_FIRST"
	ActionGotoBack      ActionType = "ACTION_GOTO_BACK"
	ActionGotoNext      ActionType = "ACTION_GOTO_NEXT"
	ActionGotoLast      ActionType = "ACTION_GOTO_LAST"
	ActionGotoPage      ActionType = "ACTION_GOTO_PAGE"
	ActionNewPageBefore ActionType = "ACTION_NEW_PAGE_BEFORE"
	ActionNewPageAfter  ActionType = "ACTION_NEW_PAGE_AFTER"
	ActionDeletePage    ActionType = "ACTION_DELETE_PAGE"

	// Tool selection.
	ActionToolPen                  ActionType = "ACTION_TOOL_PEN"
	ActionToolEraser               ActionType = "ACTION_TOOL_ERASER"
	ActionToolHighlighter          ActionType = "ACTION_TOOL_HIGHLIGHTER"
	ActionToolText                 ActionType = "ACTION_TOOL_TEXT"
	ActionToolImage                ActionType = "ACTION_TOOL_IMAGE"
	ActionToolSelectRect           ActionType = "ACTION_TOOL_SELECT_RECT"
	ActionToolSelectRegion         ActionType = "ACTION_TOOL_SELECT_REGION"
	ActionToolSelectObject         ActionType = "ACTION_TOOL_SELECT_OBJECT"
	ActionToolVerticalSpace        ActionType = "ACTION_TOOL_VERTICAL_SPACE"
	ActionToolHand                 ActionType = "ACTION_TOOL_HAND"
	ActionToolPlayObject           ActionType = "ACTION_TOOL_PLAY_OBJECT"
	ActionToolFloatingToolbox      ActionType = "ACTION_TOOL_FLOATING_TOOLBOX"
	ActionToolDrawRect             ActionType = "ACTION_TOOL_DRAW_RECT"
	ActionToolDrawEllipse          ActionType = "ACTION_TOOL_DRAW_ELLIPSE"
	ActionToolDrawArrow            ActionType = "ACTION_TOOL_DRAW_ARROW"
	ActionToolDrawCoordinateSystem ActionType = "ACTION_TOOL_DRAW_COORDINATE_SYSTEM"
	ActionToolDrawSpline           ActionType = "ACTION_TOOL_DRAW_SPLINE"
	ActionRuler                    ActionType = "ACTION_RULER"
	ActionShapeRecognizer          ActionType = "ACTION_SHAPE_RECOGNIZER"

	// Tool size and eraser mode.
	ActionSizeVeryFine           ActionType = "ACTION_SIZE_VERY_FINE"
	ActionSizeFine               ActionType = "ACTION_SIZE_FINE"
	ActionSizeMedium             ActionType = "ACTION_SIZE_MEDIUM"
	ActionSizeThick              ActionType = "ACTION_SIZE_THICK"
	ActionSizeVeryThick          ActionType = "ACTION_SIZE_VERY_THICK"
	ActionToolEraserStandard     ActionType = "ACTION_TOOL_ERASER_STANDARD"
	ActionToolEraserWhiteout     ActionType = "ACTION_TOOL_ERASER_WHITEOUT"
	ActionToolEraserDeleteStroke ActionType = "ACTION_TOOL_ERASER_DELETE_STROKE"

	// Layers.
	ActionNewLayer          ActionType = "ACTION_NEW_LAYER"
	ActionDeleteLayer       ActionType = "ACTION_DELETE_LAYER"
	ActionMergeLayerDown    ActionType = "ACTION_MERGE_LAYER_DOWN"
	ActionGotoNextLayer     ActionType = "ACTION_GOTO_NEXT_LAYER"
	ActionGotoPreviousLayer ActionType = "ACTION_GOTO_PREVIOUS_LAYER"
	ActionGotoTopLayer      ActionType = "ACTION_GOTO_TOP_LAYER"

	// View toggles and zoom.
	ActionZoomIn           ActionType = "ACTION_ZOOM_IN"
	ActionZoomOut          ActionType = "ACTION_ZOOM_OUT"
	ActionZoom100          ActionType = "ACTION_ZOOM_100"
	ActionZoomFit          ActionType = "ACTION_ZOOM_FIT"
	ActionGridSnapping     ActionType = "ACTION_GRID_SNAPPING"
	ActionRotationSnapping ActionType = "ACTION_ROTATION_SNAPPING"
	ActionHighlightPos     ActionType = "ACTION_HIGHLIGHT_POSITION"
	ActionFullscreen       ActionType = "ACTION_FULLSCREEN"
	ActionPairedPages      ActionType = "ACTION_PAIRED_PAGES"
	ActionPresentationMode ActionType = "ACTION_PRESENTATION_MODE"
)

const (
	GroupNoGroup          ActionGroup = "GROUP_NOGROUP"
	GroupTool             ActionGroup = "GROUP_TOOL"
	GroupSize             ActionGroup = "GROUP_SIZE"
	GroupPenSize          ActionGroup = "GROUP_PEN_SIZE"
	GroupEraserSize       ActionGroup = "GROUP_ERASER_SIZE"
	GroupHighlighterSize  ActionGroup = "GROUP_HIGHLIGHTER_SIZE"
	GroupEraserMode       ActionGroup = "GROUP_ERASER_MODE"
	GroupToggle           ActionGroup = "GROUP_TOGGLE_GROUP"
	GroupRuler            ActionGroup = "GROUP_RULER"
	GroupLineStyle        ActionGroup = "GROUP_LINE_STYLE"
	GroupGridSnapping     ActionGroup = "GROUP_GRID_SNAPPING"
	GroupRotationSnapping ActionGroup = "GROUP_ROTATION_SNAPPING"
	GroupPairedPages      ActionGroup = "GROUP_PAIRED_PAGES"
	GroupFullscreen       ActionGroup = "GROUP_FULLSCREEN"
	GroupPresentationMode ActionGroup = "GROUP_PRESENTATION_MODE"
	GroupZoomFit          ActionGroup = "GROUP_ZOOM_FIT"
)

var knownActions = map[ActionType]struct{}{
	ActionNone: {}, ActionNew: {}, ActionOpen: {}, ActionSave: {}, ActionSaveAs: {},
	ActionExportAsPdf: {}, ActionPrint: {}, ActionQuit: {}, ActionUndo: {}, ActionRedo: {},
	ActionCut: {}, ActionCopy: {}, ActionPaste: {}, ActionDelete: {}, ActionSelectAll: {},
	ActionGotoFirst: {}, ActionGotoBack: {}, ActionGotoNext: {}, ActionGotoLast: {},
	ActionGotoPage: {}, ActionNewPageBefore: {}, ActionNewPageAfter: {}, ActionDeletePage: {},
	ActionToolPen: {}, ActionToolEraser: {}, ActionToolHighlighter: {}, ActionToolText: {},
	ActionToolImage: {}, ActionToolSelectRect: {}, ActionToolSelectRegion: {},
	ActionToolSelectObject: {}, ActionToolVerticalSpace: {}, ActionToolHand: {},
	ActionToolPlayObject: {}, ActionToolFloatingToolbox: {}, ActionToolDrawRect: {},
	ActionToolDrawEllipse: {}, ActionToolDrawArrow: {}, ActionToolDrawCoordinateSystem: {},
	ActionToolDrawSpline: {}, ActionRuler: {}, ActionShapeRecognizer: {},
	ActionSizeVeryFine: {}, ActionSizeFine: {}, ActionSizeMedium: {}, ActionSizeThick: {},
	ActionSizeVeryThick: {}, ActionToolEraserStandard: {}, ActionToolEraserWhiteout: {},
	ActionToolEraserDeleteStroke: {},
	ActionNewLayer:               {}, ActionDeleteLayer: {}, ActionMergeLayerDown: {},
	ActionGotoNextLayer: {}, ActionGotoPreviousLayer: {}, ActionGotoTopLayer: {},
	ActionZoomIn: {}, ActionZoomOut: {}, ActionZoom100: {}, ActionZoomFit: {},
	ActionGridSnapping: {}, ActionRotationSnapping: {}, ActionHighlightPos: {},
	ActionFullscreen: {}, ActionPairedPages: {}, ActionPresentationMode: {},
}

var knownGroups = map[ActionGroup]struct{}{
	GroupNoGroup: {}, GroupTool: {}, GroupSize: {}, GroupPenSize: {}, GroupEraserSize: {},
	GroupHighlighterSize: {}, GroupEraserMode: {}, GroupToggle: {}, GroupRuler: {},
	GroupLineStyle: {}, GroupGridSnapping: {}, GroupRotationSnapping: {},
	GroupPairedPages: {}, GroupFullscreen: {}, GroupPresentationMode: {}, GroupZoomFit: {},
}

// ActionTypeFromString resolves an action token. ok is false for tokens
// outside the catalogue.
func ActionTypeFromString(s string) (ActionType, bool) {
	a := ActionType(s)
	_, ok := knownActions[a]
	return a, ok
}

// ActionGroupFromString resolves a group token. ok is false for tokens
// outside the catalogue.
func ActionGroupFromString(s string) (ActionGroup, bool) {
	g := ActionGroup(s)
	_, ok := knownGroups[g]
	return g, ok
}

// SidebarAction is one of the page operations offered by the page sidebar.
type SidebarAction string

const (
	SidebarCopy      SidebarAction = "COPY"
	SidebarDelete    SidebarAction = "DELETE"
	SidebarMoveUp    SidebarAction = "MOVE_UP"
	SidebarMoveDown  SidebarAction = "MOVE_DOWN"
	SidebarNewBefore SidebarAction = "NEW_BEFORE"
	SidebarNewAfter  SidebarAction = "NEW_AFTER"
)

// SidebarActionFromString resolves a sidebar token. ok is false for tokens
// outside the closed set.
func SidebarActionFromString(s string) (SidebarAction, bool) {
	switch a := SidebarAction(s); a {
	case SidebarCopy, SidebarDelete, SidebarMoveUp, SidebarMoveDown,
		SidebarNewBefore, SidebarNewAfter:
		return a, true
	}
	return "", false
}
