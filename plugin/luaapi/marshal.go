package luaapi

import lua "github.com/yuin/gopher-lua"

// numberSequence decodes the array portion of tbl, walking indices
// 1..n so the decoded order always matches the numeric-key order.
// Coordinate streams encode point sequence in that order; hash
// iteration would scramble the geometry.
func numberSequence(tbl *lua.LTable) ([]float64, error) {
	n := tbl.Len()
	out := make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		v, ok := tbl.RawGetInt(i).(lua.LNumber)
		if !ok {
			return nil, validationf("entry %d is not a number", i)
		}
		out = append(out, float64(v))
	}
	return out, nil
}

// stringSequence decodes the array portion of tbl in index order.
func stringSequence(tbl *lua.LTable) ([]string, error) {
	n := tbl.Len()
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		v, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, validationf("entry %d is not a string", i)
		}
		out = append(out, string(v))
	}
	return out, nil
}

// buttonMap decodes a keyed table of button labels indexed by the
// value the dialog reports when that button is chosen. Key order is
// irrelevant; entries with non-numeric keys or non-string labels are
// skipped.
func buttonMap(tbl *lua.LTable) map[int]string {
	out := make(map[int]string)
	tbl.ForEach(func(k, v lua.LValue) {
		kn, ok := k.(lua.LNumber)
		if !ok {
			return
		}
		vs, ok := v.(lua.LString)
		if !ok {
			return
		}
		out[int(kn)] = string(vs)
	})
	return out
}
