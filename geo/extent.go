package geo

import "github.com/golang/geo/s2"

// Extent accumulates the bounding box of every coordinate it observes.
// The import runs strictly sequentially, so a plain accumulator is enough.
type Extent struct {
	MinX, MinY float64
	MaxX, MaxY float64
	set        bool
}

// Extend grows the extent to include x/y.
func (e *Extent) Extend(x, y float64) {
	if !e.set {
		e.MinX, e.MaxX = x, x
		e.MinY, e.MaxY = y, y
		e.set = true
		return
	}

	if x < e.MinX {
		e.MinX = x
	} else if x > e.MaxX {
		e.MaxX = x
	}
	if y < e.MinY {
		e.MinY = y
	} else if y > e.MaxY {
		e.MaxY = y
	}
}

// Empty reports whether no coordinate was observed.
func (e *Extent) Empty() bool { return !e.set }

// Center returns the midpoint of the extent.
func (e *Extent) Center() (float64, float64) {
	return e.MaxX - (e.MaxX-e.MinX)/2, e.MaxY - (e.MaxY-e.MinY)/2
}

// S2Tokens returns the truncated s2 cell tokens covering the extent, or nil
// when the extent is empty or not in geographic coordinates.
func (e *Extent) S2Tokens() []string {
	if e.Empty() || !Geographic(e.MinX, e.MinY) || !Geographic(e.MaxX, e.MaxY) {
		return nil
	}

	pts := []s2.Point{
		s2.PointFromLatLng(s2.LatLngFromDegrees(e.MaxY, e.MaxX)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(e.MaxY, e.MinX)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(e.MinY, e.MinX)),
		s2.PointFromLatLng(s2.LatLngFromDegrees(e.MinY, e.MaxX)),
	}

	loop := s2.LoopFromPoints(pts)
	covering := loop.CellUnionBound()

	tokens := make([]string, 0, len(covering))
	for _, cellid := range covering {
		token := cellid.ToToken()
		if len(token) > 8 {
			token = token[:8]
		}
		tokens = append(tokens, token)
	}

	return tokens
}
