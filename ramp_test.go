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
)

func TestIdentityRamp(t *testing.T) {
	ramp := NewRamp(&CurveSet{}, 256)

	for _, table := range [][]uint16{ramp.Red, ramp.Green, ramp.Blue} {
		if len(table) != 256 {
			t.Fatalf("table has %d entries, want 256", len(table))
		}
		for i, v := range table {
			// the exact linear ramp: i/255 * 65535 == i * 257
			if want := uint16(i * 257); v != want {
				t.Errorf("table[%d] = %d, want %d", i, v, want)
			}
		}
	}
}

func TestResampleAtControlPoints(t *testing.T) {
	curve := NewCurve([]ControlPoint{{0, 0.1}, {0.5, 0.6}, {1, 0.9}})
	table := resampleCurve(curve.Evaluate, 9)

	// sample positions 0, 1/8, ..., 1; positions 0, 0.5 and 1 coincide
	// with control points
	cases := []struct {
		idx  int
		want uint16
	}{
		{0, quantize16(0.1)},
		{4, quantize16(0.6)},
		{8, quantize16(0.9)},
	}
	for _, c := range cases {
		if table[c.idx] != c.want {
			t.Errorf("table[%d] = %d, want %d", c.idx, table[c.idx], c.want)
		}
	}
}

// A curve which does not span the whole input range clamps to the first
// and last point's output, with no extrapolation.
func TestResampleClamps(t *testing.T) {
	curve := NewCurve([]ControlPoint{{0.2, 0.3}, {0.8, 0.7}})
	table := resampleCurve(curve.Evaluate, 11)

	head := quantize16(0.3)
	for i := 0; i <= 2; i++ { // positions 0, 0.1, 0.2
		if table[i] != head {
			t.Errorf("table[%d] = %d, want %d", i, table[i], head)
		}
	}
	tail := quantize16(0.7)
	for i := 8; i <= 10; i++ { // positions 0.8, 0.9, 1
		if table[i] != tail {
			t.Errorf("table[%d] = %d, want %d", i, table[i], tail)
		}
	}
}

func TestResampleSinglePoint(t *testing.T) {
	set := &CurveSet{
		Value: NewCurve([]ControlPoint{{0.5, 0.25}}),
	}
	ramp := NewRamp(set, 16)
	want := quantize16(0.25)
	for i, v := range ramp.Table(Green) {
		if v != want {
			t.Errorf("table[%d] = %d, want %d", i, v, want)
		}
	}
}

// A value curve with no per-channel curves: each colour channel realises
// the value curve alone, and the midpoint maps to 0.6 of full scale.
func TestValueCurveOnly(t *testing.T) {
	set := &CurveSet{
		Value: NewCurve([]ControlPoint{{0, 0}, {0.5, 0.6}, {1, 1}}),
	}

	red := resampleCurve(set.Effective(Red), 8)
	value := resampleCurve(set.Value.Evaluate, 8)
	for i := range red {
		if red[i] != value[i] {
			t.Errorf("sample %d: red %d != value %d", i, red[i], value[i])
		}
	}

	// with an odd sample count one position falls exactly on 0.5
	table := resampleCurve(set.Effective(Red), 9)
	if want := quantize16(0.6); table[4] != want {
		t.Errorf("midpoint sample = %d, want %d", table[4], want)
	}
}

func TestQuantize16(t *testing.T) {
	cases := []struct {
		v    float64
		want uint16
	}{
		{0, 0},
		{1, 65535},
		{0.5, 32768}, // round(32767.5)
		{1.0000001, 65535},
		{-0.0000001, 0},
		{math.Nextafter(1, 2), 65535},
	}
	for _, c := range cases {
		if got := quantize16(c.v); got != c.want {
			t.Errorf("quantize16(%g) = %d, want %d", c.v, got, c.want)
		}
	}
}
