package model

import (
	"strconv"
	"strings"
)

// LineStyle describes the dash pattern of a stroke outline. The zero value
// is a solid line.
type LineStyle struct {
	Dashes []float64
}

// Predefined dash patterns, in points.
var (
	LineStylePlain   = LineStyle{}
	LineStyleDash    = LineStyle{Dashes: []float64{6, 3}}
	LineStyleDashDot = LineStyle{Dashes: []float64{6, 3, 0.5, 3}}
	LineStyleDot     = LineStyle{Dashes: []float64{0.5, 3}}
)

// customStylePrefix introduces a space-separated dash list, e.g. "cust: 2 4".
const customStylePrefix = "cust: "

var styleNames = []struct {
	name  string
	style LineStyle
}{
	{"plain", LineStylePlain},
	{"dash", LineStyleDash},
	{"dashdot", LineStyleDashDot},
	{"dot", LineStyleDot},
}

// HasDashes reports whether the style is dashed.
func (s LineStyle) HasDashes() bool { return len(s.Dashes) > 0 }

// Equal reports whether two styles share the same dash pattern.
func (s LineStyle) Equal(o LineStyle) bool {
	if len(s.Dashes) != len(o.Dashes) {
		return false
	}
	for i := range s.Dashes {
		if s.Dashes[i] != o.Dashes[i] {
			return false
		}
	}
	return true
}

// ParseStyle resolves a style name ("plain", "dash", "dashdot", "dot", or a
// "cust: ..." dash list) to its pattern. Unknown names yield a solid line.
func ParseStyle(name string) LineStyle {
	for _, e := range styleNames {
		if e.name == name {
			return e.style
		}
	}
	if rest, ok := strings.CutPrefix(name, customStylePrefix); ok {
		var dashes []float64
		for _, tok := range strings.Fields(rest) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || v <= 0 {
				return LineStylePlain
			}
			dashes = append(dashes, v)
		}
		return LineStyle{Dashes: dashes}
	}
	return LineStylePlain
}

// FormatStyle returns the canonical name for a pattern. Patterns outside the
// predefined set are rendered with the custom prefix.
func FormatStyle(s LineStyle) string {
	for _, e := range styleNames {
		if s.Equal(e.style) {
			return e.name
		}
	}
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(customStylePrefix, " "))
	for _, d := range s.Dashes {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(d, 'g', -1, 64))
	}
	return b.String()
}
