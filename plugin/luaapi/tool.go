package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"xournalpp/model"
	"xournalpp/observability"
	"xournalpp/tool"
)

// toolColorArgs is the decoded argument record of changeToolColor.
type toolColorArgs struct {
	target    tool.Type
	color     model.Color
	selection bool
}

// changeToolColor recolors a tool, by default the active one, and
// optionally the current selection along with it.
//
//	app.changeToolColor({color = 0xff0000, selection = true})
//	app.changeToolColor({color = 0x00ff00, tool = "highlighter"})
func (a *API) changeToolColor(L *lua.LState) int {
	opts := L.CheckTable(1)
	th := a.ctrl.ToolHandler()

	args := toolColorArgs{target: th.ActiveType()}
	if s, ok := tableString(opts, "tool"); ok {
		target, ok := tool.TypeFromString(s)
		if !ok {
			a.log.Warn("tool is not valid", observability.String("tool", s))
			return 0
		}
		args.target = target
	}
	if args.target == tool.TypeNone {
		a.log.Warn("no tool has been selected")
		return 0
	}

	if v := opts.RawGetString("selection"); v != lua.LNil {
		if b, ok := v.(lua.LBool); ok {
			args.selection = bool(b)
		} else {
			a.log.Warn("selection is not a boolean value, defaulting to false")
		}
	}

	t := th.Tool(args.target)
	args.color = t.Color
	if c, ok := tableNumber(opts, "color"); ok {
		if err := checkColor(int64(c)); err != nil {
			a.log.Warn(err.Error())
			return 0
		}
		args.color = model.Color(c)
	}

	if !t.HasCapability(tool.CapColor) {
		err := capabilityf("tool %q has no color capability", args.target)
		a.log.Warn(err.Error())
		return 0
	}
	t.Color = args.color
	a.ctrl.ToolColorChanged()
	if args.selection {
		a.ctrl.ChangeColorOfSelection()
	}
	return 0
}

// sizeRecord encodes a tool size as {name, value}.
func sizeRecord(L *lua.LState, s tool.Size, thickness float64) *lua.LTable {
	rec := L.NewTable()
	rec.RawSetString("name", lua.LString(s.String()))
	rec.RawSetString("value", lua.LNumber(thickness))
	return rec
}

// getToolInfo reports the live attributes of one tool. The mode picks
// the tool: "active", "pen", "highlighter", "eraser" or "text".
//
//	local pen = app.getToolInfo("pen")
//	print(pen.size.name, pen.color)
func (a *API) getToolInfo(L *lua.LState) int {
	mode := L.CheckString(1)
	th := a.ctrl.ToolHandler()

	// The record is created before the mode dispatch so an
	// unrecognized mode still returns an empty table rather than
	// raising.
	info := L.NewTable()
	switch mode {
	case "active":
		t := th.ActiveTool()
		info.RawSetString("type", lua.LString(t.Type.String()))
		info.RawSetString("size", sizeRecord(L, t.Size, t.ActiveThickness()))
		info.RawSetString("color", lua.LNumber(t.Color))
		info.RawSetString("fillOpacity", lua.LNumber(th.Fill()))
		info.RawSetString("drawingType", lua.LString(t.DrawingType.String()))
		info.RawSetString("lineStyle", lua.LString(model.FormatStyle(t.LineStyle)))
	case "pen":
		pen := th.Tool(tool.TypePen)
		info.RawSetString("size", sizeRecord(L, pen.Size, pen.ActiveThickness()))
		info.RawSetString("color", lua.LNumber(pen.Color))
		info.RawSetString("drawingType", lua.LString(pen.DrawingType.String()))
		info.RawSetString("lineStyle", lua.LString(model.FormatStyle(pen.LineStyle)))
		info.RawSetString("filled", lua.LBool(pen.FillEnabled))
		info.RawSetString("fillOpacity", lua.LNumber(pen.FillOpacity))
	case "highlighter":
		hl := th.Tool(tool.TypeHighlighter)
		info.RawSetString("size", sizeRecord(L, hl.Size, hl.ActiveThickness()))
		info.RawSetString("color", lua.LNumber(hl.Color))
		info.RawSetString("drawingType", lua.LString(hl.DrawingType.String()))
		info.RawSetString("filled", lua.LBool(hl.FillEnabled))
		info.RawSetString("fillOpacity", lua.LNumber(hl.FillOpacity))
	case "eraser":
		eraser := th.Tool(tool.TypeEraser)
		info.RawSetString("type", lua.LString(th.EraserType().String()))
		info.RawSetString("size", sizeRecord(L, eraser.Size, eraser.ActiveThickness()))
	case "text":
		font := a.ctrl.Settings().Font
		rec := L.NewTable()
		rec.RawSetString("name", lua.LString(font.Name))
		rec.RawSetString("size", lua.LNumber(font.Size))
		info.RawSetString("font", rec)
		info.RawSetString("color", lua.LNumber(th.Tool(tool.TypeText).Color))
	}
	L.Push(info)
	return 1
}
