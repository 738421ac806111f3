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

import "fmt"

// The TagType identifies a tag in an ICC profile.
type TagType uint32

func (t TagType) String() string {
	switch t {
	case ProfileDescription:
		return "Profile Description"
	case Copyright:
		return "Copyright"
	case MediaWhitePoint:
		return "Media White Point"
	case VideoCardGamma:
		return "Video Card Gamma"
	default:
		bb := []byte{
			byte(t >> 24),
			byte(t >> 16),
			byte(t >> 8),
			byte(t),
		}
		isASCII := true
		for _, c := range bb {
			if c < 0x20 || c > 0x7E {
				isASCII = false
				break
			}
		}
		if isASCII {
			return fmt.Sprintf("%q", string(bb))
		}
		return fmt.Sprintf("0x%08X", uint32(t))
	}
}

// The tags written into the generated profiles.
const (
	ProfileDescription TagType = 0x64657363 // "desc"
	Copyright          TagType = 0x63707274 // "cprt"
	MediaWhitePoint    TagType = 0x77747074 // "wtpt"
	RedColorant        TagType = 0x7258595A // "rXYZ"
	GreenColorant      TagType = 0x6758595A // "gXYZ"
	BlueColorant       TagType = 0x6258595A // "bXYZ"
	RedTRC             TagType = 0x72545243 // "rTRC"
	GreenTRC           TagType = 0x67545243 // "gTRC"
	BlueTRC            TagType = 0x62545243 // "bTRC"
	VideoCardGamma     TagType = 0x76636774 // "vcgt"
)

// encodeTextDescription encodes a string as an ICC v2
// textDescriptionType element.  Only the ASCII part is filled in; the
// Unicode and ScriptCode parts are present but empty, as required by the
// format.
func encodeTextDescription(s string) []byte {
	n := len(s) + 1 // including the trailing NUL
	buf := make([]byte, 8+4+n+4+4+2+1+67)
	copy(buf[0:4], "desc")
	putUint32(buf, 8, uint32(n))
	copy(buf[12:], s)
	// Unicode language code, Unicode count, ScriptCode code, Macintosh
	// count and data all stay zero.
	return buf
}

// encodeText encodes a string as an ICC textType element.
func encodeText(s string) []byte {
	buf := make([]byte, 8+len(s)+1)
	copy(buf[0:4], "text")
	copy(buf[8:], s)
	return buf
}

// encodeXYZ encodes a single XYZ colour as an XYZType element.
func encodeXYZ(x, y, z float64) []byte {
	buf := make([]byte, 8+3*4)
	copy(buf[0:4], "XYZ ")
	putS15Fixed16(buf, 8, x)
	putS15Fixed16(buf, 12, y)
	putS15Fixed16(buf, 16, z)
	return buf
}

// encodeCurve encodes a sampled tone curve as a curveType element.
// Table values are evenly spaced from input 0 to 1.
func encodeCurve(table []uint16) []byte {
	buf := make([]byte, 12+2*len(table))
	copy(buf[0:4], "curv")
	putUint32(buf, 8, uint32(len(table)))
	for i, v := range table {
		putUint16(buf, 12+2*i, v)
	}
	return buf
}

// encodeGammaRamp encodes the three lookup tables as a video card gamma
// table element ("vcgt", table subtype).
//
// The layout is fixed by the ramp loaders which consume the tag: after
// the type signature and the table subtype marker, a channel count of 3,
// the per-channel entry count, an entry size of 2 bytes, and then the
// red, green and blue tables back to back.
func encodeGammaRamp(ramp *Ramp) []byte {
	n := len(ramp.Red)
	buf := make([]byte, 8+4+3*2+3*n*2)
	copy(buf[0:4], "vcgt")
	putUint32(buf, 8, 0) // subtype 0: table
	putUint16(buf, 12, 3)
	putUint16(buf, 14, uint16(n))
	putUint16(buf, 16, 2)
	pos := 18
	for _, table := range [][]uint16{ramp.Red, ramp.Green, ramp.Blue} {
		for _, v := range table {
			putUint16(buf, pos, v)
			pos += 2
		}
	}
	return buf
}
