package model

import "math"

// Flattening stops when both control points sit within this distance of the
// chord, or at the depth cap.
const (
	flattenTolerance = 0.1
	maxFlattenDepth  = 16
)

// SplineSegment is one cubic Bezier segment of a spline.
type SplineSegment struct {
	Start Point
	Ctrl1 Point
	Ctrl2 Point
	End   Point
}

// ToPointSequence flattens the segment into an ordered polyline including
// both endpoints. The subdivision is a pure function of the control points,
// so equal segments always produce identical sequences. The returned points
// carry no pressure.
func (s SplineSegment) ToPointSequence() []Point {
	pts := make([]Point, 0, 8)
	pts = append(pts, Point{X: s.Start.X, Y: s.Start.Y, Pressure: NoPressure})
	return s.flattenInto(pts, 0)
}

func (s SplineSegment) flattenInto(pts []Point, depth int) []Point {
	if depth >= maxFlattenDepth || s.flat() {
		return append(pts, Point{X: s.End.X, Y: s.End.Y, Pressure: NoPressure})
	}
	left, right := s.split()
	pts = left.flattenInto(pts, depth+1)
	return right.flattenInto(pts, depth+1)
}

func (s SplineSegment) flat() bool {
	return distToChord(s.Ctrl1, s.Start, s.End) <= flattenTolerance &&
		distToChord(s.Ctrl2, s.Start, s.End) <= flattenTolerance
}

// split halves the segment at t = 0.5 by de Casteljau subdivision.
func (s SplineSegment) split() (SplineSegment, SplineSegment) {
	m01 := midpoint(s.Start, s.Ctrl1)
	m12 := midpoint(s.Ctrl1, s.Ctrl2)
	m23 := midpoint(s.Ctrl2, s.End)
	m012 := midpoint(m01, m12)
	m123 := midpoint(m12, m23)
	m := midpoint(m012, m123)
	return SplineSegment{Start: s.Start, Ctrl1: m01, Ctrl2: m012, End: m},
		SplineSegment{Start: m, Ctrl1: m123, Ctrl2: m23, End: s.End}
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func distToChord(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	chord := math.Hypot(dx, dy)
	if chord == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs((p.X-a.X)*dy-(p.Y-a.Y)*dx) / chord
}
