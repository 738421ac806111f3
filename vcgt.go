// seehuhn.de/go/vcgt - convert GIMP tone curves to ICC display profiles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package vcgt converts tone curve presets saved by the GIMP curves tool
// into binary ICC display profiles.
//
// The generated profile is a v2-compatible display profile for an sRGB-like
// monitor.  In addition to the usual colorimetric tags it carries a "vcgt"
// (video card gamma table) tag, so that operating systems which upload
// gamma ramps directly to the graphics adapter apply the curves even when
// the desktop is not colour-managed.
//
// Typical use:
//
//	set, err := vcgt.ParseCurves(text)
//	if err != nil {
//	    // handle error
//	}
//	p := vcgt.New(set, &vcgt.Options{Description: "my calibration"})
//	data := p.Encode()
package vcgt

import "sort"

// Channel identifies one of the four curves in a GIMP curves preset.
//
// The value curve applies to all three colour channels; the red, green and
// blue curves apply to their channel only.  There is no alpha channel here:
// alpha has no meaning for a display gamma ramp and is dropped during
// parsing.
type Channel int

// The four channels of a curve set.
const (
	Value Channel = iota
	Red
	Green
	Blue
)

func (ch Channel) String() string {
	switch ch {
	case Value:
		return "value"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// ControlPoint is one vertex of a piecewise-linear tone curve.
// Both coordinates are in the range [0, 1].
type ControlPoint struct {
	In, Out float64
}

// Curve is a tone curve given by control points with strictly increasing
// inputs.  Between two points the curve is linear; before the first point
// and after the last point the curve is constant (no extrapolation).
//
// A Curve with no points is the identity curve.  A Curve with a single
// point is constant everywhere.
//
// Curves are constructed once, by the parser or by [NewCurve], and are not
// modified afterwards.
type Curve struct {
	Points []ControlPoint
}

// NewCurve constructs a curve from the given control points.  The points
// are sorted by ascending input, and for exact-duplicate inputs only the
// last-seen output is kept.  The input slice is not modified.
func NewCurve(points []ControlPoint) Curve {
	return Curve{Points: normalizePoints(points)}
}

// normalizePoints establishes the Curve invariant: inputs strictly
// increasing.  The sort is stable so that for duplicated inputs the
// last-seen point wins.
func normalizePoints(points []ControlPoint) []ControlPoint {
	if len(points) == 0 {
		return nil
	}

	pp := make([]ControlPoint, len(points))
	copy(pp, points)
	sort.SliceStable(pp, func(i, j int) bool {
		return pp[i].In < pp[j].In
	})

	res := pp[:1]
	for _, p := range pp[1:] {
		if p.In == res[len(res)-1].In {
			res[len(res)-1] = p
		} else {
			res = append(res, p)
		}
	}
	return res
}

// IsIdentity reports whether the curve is the identity function.
func (c Curve) IsIdentity() bool {
	return len(c.Points) == 0
}

// Evaluate computes the output value for an input value x in [0, 1].
//
// Inputs outside the curve's point range are clamped to the first or last
// point's output.  The result of a non-identity curve is whatever the
// control points say; monotonicity is not enforced.
func (c Curve) Evaluate(x float64) float64 {
	pts := c.Points
	n := len(pts)
	if n == 0 {
		return clamp(x, 0, 1)
	}
	if x <= pts[0].In {
		return pts[0].Out
	}
	if x >= pts[n-1].In {
		return pts[n-1].Out
	}

	// Find the first point to the right of x.  The invariant guarantees
	// strictly increasing inputs, so the bracketing segment is unique.
	idx := sort.Search(n, func(i int) bool {
		return pts[i].In > x
	})
	p0 := pts[idx-1]
	p1 := pts[idx]

	frac := (x - p0.In) / (p1.In - p0.In)
	return p0.Out + frac*(p1.Out-p0.Out)
}

// CurveSet holds the four curves of a parsed GIMP preset.
//
// A channel the preset did not mention has the identity curve.
type CurveSet struct {
	Value Curve
	Red   Curve
	Green Curve
	Blue  Curve

	// Linear is set if the preset was saved in linear light
	// ("(linear yes)").  The conversion still goes ahead, but the result
	// will usually not match what the author saw in the editor.
	Linear bool
}

// Curve returns the curve for the given channel.
func (s *CurveSet) Curve(ch Channel) Curve {
	switch ch {
	case Red:
		return s.Red
	case Green:
		return s.Green
	case Blue:
		return s.Blue
	default:
		return s.Value
	}
}

// Effective returns the function realised for one colour channel: first
// the value curve, then the channel's own curve.
func (s *CurveSet) Effective(ch Channel) func(float64) float64 {
	value := s.Value
	channel := s.Curve(ch)
	return func(x float64) float64 {
		return channel.Evaluate(value.Evaluate(x))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
