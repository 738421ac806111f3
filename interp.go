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

import "math"

// resampleCurve evaluates f at n evenly spaced positions across [0, 1]
// and quantizes the results to uint16.
//
// The first sample is at 0 and the last at 1, matching the sample grid of
// the ICC curveType and of the video card gamma table.  n must be at
// least 2.
func resampleCurve(f func(float64) float64, n int) []uint16 {
	table := make([]uint16, n)
	for i := range table {
		x := float64(i) / float64(n-1)
		table[i] = quantize16(f(x))
	}
	return table
}

// quantize16 maps a value from [0, 1] to [0, 65535], rounding to nearest.
// The result is clamped so that rounding errors at the interval
// boundaries cannot wrap.
func quantize16(v float64) uint16 {
	scaled := math.Round(v * 65535)
	if scaled <= 0 {
		return 0
	}
	if scaled >= 65535 {
		return 65535
	}
	return uint16(scaled)
}
