package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"xournalpp/model"
)

// Readers for record-shaped option tables. Fields are looked up by
// name, so their order in the table is irrelevant. A field that is
// absent or carries the wrong type reports ok=false and the caller
// falls back to its default.

func tableString(tbl *lua.LTable, key string) (string, bool) {
	s, ok := tbl.RawGetString(key).(lua.LString)
	return string(s), ok
}

func tableNumber(tbl *lua.LTable, key string) (float64, bool) {
	n, ok := tbl.RawGetString(key).(lua.LNumber)
	return float64(n), ok
}

func tableBool(tbl *lua.LTable, key string) (bool, bool) {
	b, ok := tbl.RawGetString(key).(lua.LBool)
	return bool(b), ok
}

func tableTable(tbl *lua.LTable, key string) (*lua.LTable, bool) {
	t, ok := tbl.RawGetString(key).(*lua.LTable)
	return t, ok
}

// checkColor validates n against the RGB color domain.
func checkColor(n int64) error {
	if n < 0 || n > int64(model.ColorMax) {
		return domainf("Color 0x%x is no valid RGB color.", n)
	}
	return nil
}
