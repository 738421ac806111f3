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

// rampSize is the number of entries per channel in the generated lookup
// tables.  Both the TRC tags and the video card gamma table use tables of
// this length; GIMP itself renders curves at this resolution.
const rampSize = 256

// Ramp holds the resampled lookup tables for the three colour channels,
// in the order the video card gamma table stores them.  All three tables
// have the same length.
//
// The tables are not required to be monotonic: the author's curve is
// trusted as given, and the GPU ramp loaders accept non-monotonic ramps.
type Ramp struct {
	Red, Green, Blue []uint16
}

// NewRamp resamples the effective curve of each colour channel (the value
// curve followed by the channel's own curve) into n-entry lookup tables.
func NewRamp(set *CurveSet, n int) *Ramp {
	return &Ramp{
		Red:   resampleCurve(set.Effective(Red), n),
		Green: resampleCurve(set.Effective(Green), n),
		Blue:  resampleCurve(set.Effective(Blue), n),
	}
}

// Table returns the lookup table for the given colour channel.
// For the value channel nil is returned; the value curve is already
// folded into the three colour tables.
func (r *Ramp) Table(ch Channel) []uint16 {
	switch ch {
	case Red:
		return r.Red
	case Green:
		return r.Green
	case Blue:
		return r.Blue
	default:
		return nil
	}
}
