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

package vcgt

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewCurveNormalizes(t *testing.T) {
	cases := []struct {
		name string
		in   []ControlPoint
		want []ControlPoint
	}{
		{
			name: "already sorted",
			in:   []ControlPoint{{0, 0}, {0.5, 0.6}, {1, 1}},
			want: []ControlPoint{{0, 0}, {0.5, 0.6}, {1, 1}},
		},
		{
			name: "out of order",
			in:   []ControlPoint{{1, 1}, {0, 0}, {0.5, 0.6}},
			want: []ControlPoint{{0, 0}, {0.5, 0.6}, {1, 1}},
		},
		{
			name: "duplicate input keeps last",
			in:   []ControlPoint{{0, 0}, {0.5, 0.2}, {0.5, 0.6}, {1, 1}},
			want: []ControlPoint{{0, 0}, {0.5, 0.6}, {1, 1}},
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
	}
	for _, c := range cases {
		got := NewCurve(c.in).Points
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s: unexpected points (-want +got):\n%s", c.name, d)
		}
	}
}

// Parsing or constructing a curve from shuffled points must give the same
// curve as from sorted points.
func TestOrderingInvariance(t *testing.T) {
	sorted := NewCurve([]ControlPoint{{0.1, 0.2}, {0.4, 0.3}, {0.9, 0.8}})
	shuffled := NewCurve([]ControlPoint{{0.9, 0.8}, {0.1, 0.2}, {0.4, 0.3}})
	if d := cmp.Diff(sorted, shuffled); d != "" {
		t.Errorf("curves differ (-sorted +shuffled):\n%s", d)
	}
}

func TestEvaluate(t *testing.T) {
	curve := NewCurve([]ControlPoint{{0.2, 0.3}, {0.8, 0.7}})

	cases := []struct {
		x, want float64
	}{
		{0.2, 0.3}, // exactly at a control point
		{0.8, 0.7},
		{0.5, 0.5}, // midway between the two points
		{0.0, 0.3}, // clamped head
		{0.1, 0.3},
		{0.9, 0.7}, // clamped tail
		{1.0, 0.7},
	}
	for _, c := range cases {
		got := curve.Evaluate(c.x)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Evaluate(%g) = %g, want %g", c.x, got, c.want)
		}
	}
}

func TestEvaluateIdentity(t *testing.T) {
	var curve Curve
	if !curve.IsIdentity() {
		t.Error("empty curve is not identity")
	}
	for _, x := range []float64{0, 0.25, 0.5, 1} {
		if got := curve.Evaluate(x); got != x {
			t.Errorf("Evaluate(%g) = %g, want %g", x, got, x)
		}
	}
}

func TestEvaluateSinglePoint(t *testing.T) {
	curve := NewCurve([]ControlPoint{{0.5, 0.25}})
	for _, x := range []float64{0, 0.5, 1} {
		if got := curve.Evaluate(x); got != 0.25 {
			t.Errorf("Evaluate(%g) = %g, want 0.25", x, got)
		}
	}
}

func TestEffective(t *testing.T) {
	set := &CurveSet{
		Value: NewCurve([]ControlPoint{{0, 0}, {0.5, 0.6}, {1, 1}}),
		Red:   NewCurve([]ControlPoint{{0, 0}, {1, 0.5}}),
	}

	// value first, then the channel's own curve
	f := set.Effective(Red)
	if got, want := f(0.5), 0.3; math.Abs(got-want) > 1e-12 {
		t.Errorf("effective red at 0.5 = %g, want %g", got, want)
	}

	// channels with the identity curve realise the value curve unchanged
	g := set.Effective(Green)
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got, want := g(x), set.Value.Evaluate(x); got != want {
			t.Errorf("effective green at %g = %g, want %g", x, got, want)
		}
	}
}
