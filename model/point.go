package model

// NoPressure marks a point that carries no pressure information.
const NoPressure float64 = -1

// Point is a single stroke coordinate with optional pen pressure.
type Point struct {
	X        float64
	Y        float64
	Pressure float64
}

// HasPressure reports whether the point carries a pressure value.
func (p Point) HasPressure() bool { return p.Pressure > 0 }
