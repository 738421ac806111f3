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
	"fmt"
	"time"
)

// Profile represents an ICC colour profile under construction.
//
// The header fields describe the profile's characteristics.  The TagData
// map contains the raw binary data for each tag; [New] fills in the tags
// for a display profile, and [Profile.Encode] produces the binary form.
type Profile struct {
	PreferredCMMType   uint32
	Version            Version
	Class              ProfileClass
	ColorSpace         ColorSpace // device colour space
	PCS                ColorSpace // Profile Connection Space
	CreationDate       time.Time
	PrimaryPlatform    uint32
	Flags              uint32
	DeviceManufacturer uint32
	DeviceModel        uint32
	DeviceAttributes   uint64
	RenderingIntent    RenderingIntent
	Creator            uint32

	// TagData maps tag signatures to their raw binary data.
	TagData map[TagType][]byte
}

// Version is a version of the ICC profile format.
type Version uint32

// Some well-known versions of the ICC profile format.
const (
	Version2_1_0 Version = 0x0210_0000 // Version 3.3 (November 1996)
	Version2_2_0 Version = 0x0220_0000 // ICC.1:1998-09
	Version4_3_0 Version = 0x0430_0000 // ICC.1:2010-12

	// Generated profiles use a version 2 header.  Every ramp loader
	// understands version 2, and version 2 allows the plain
	// textDescriptionType for the description tag.
	profileVersion = Version2_2_0
)

func (v Version) String() string {
	major := int(v >> 24)
	minor := int(v >> 20 & 0xF)
	bugfix := int(v >> 16 & 0xF)
	other := int(v & 0xFFFF)

	suffix := ""
	if other != 0 {
		suffix = fmt.Sprintf(".%04X", other)
	}
	return fmt.Sprintf("%d.%d.%d%s", major, minor, bugfix, suffix)
}

// ProfileClass is the ICC profile or device class.
type ProfileClass uint32

// Profile classes used by this package.
const (
	InputDeviceProfile   ProfileClass = 0x73636E72 // "scnr"
	DisplayDeviceProfile ProfileClass = 0x6D6E7472 // "mntr"
	OutputDeviceProfile  ProfileClass = 0x70727472 // "prtr"
)

func (c ProfileClass) String() string {
	switch c {
	case InputDeviceProfile:
		return "Input Device Profile"
	case DisplayDeviceProfile:
		return "Display Device Profile"
	case OutputDeviceProfile:
		return "Output Device Profile"
	default:
		return fmt.Sprintf("ProfileClass(0x%08X)", uint32(c))
	}
}

// ColorSpace identifies a colour space in an ICC profile.
type ColorSpace uint32

// Colour spaces used by this package.
const (
	CIEXYZSpace ColorSpace = 0x58595A20 // "XYZ "
	CIELabSpace ColorSpace = 0x4C616220 // "Lab "
	RGBSpace    ColorSpace = 0x52474220 // "RGB "
	GraySpace   ColorSpace = 0x47524159 // "GRAY"
)

func (s ColorSpace) String() string {
	switch s {
	case CIEXYZSpace:
		return "CIEXYZ"
	case CIELabSpace:
		return "CIELAB"
	case RGBSpace:
		return "RGB"
	case GraySpace:
		return "Gray"
	default:
		return fmt.Sprintf("ColorSpace(0x%08X)", uint32(s))
	}
}

// RenderingIntent specifies how colours outside the destination gamut are
// handled.
type RenderingIntent uint32

// Standard ICC rendering intents.
const (
	Perceptual           RenderingIntent = 0
	RelativeColorimetric RenderingIntent = 1
	Saturation           RenderingIntent = 2
	AbsoluteColorimetric RenderingIntent = 3
)

func (ri RenderingIntent) String() string {
	switch ri {
	case Perceptual:
		return "Perceptual"
	case RelativeColorimetric:
		return "Relative Colorimetric"
	case Saturation:
		return "Saturation"
	case AbsoluteColorimetric:
		return "Absolute Colorimetric"
	default:
		return fmt.Sprintf("RenderingIntent(%d)", ri)
	}
}

// Options controls the metadata of a generated profile.
// The zero value selects defaults for all fields.
type Options struct {
	// Description is shown by colour management dialogs when the profile
	// is installed.  If empty, [DefaultDescription] is used.
	Description string

	// Copyright is stored in the profile's copyright tag.  If empty, a
	// note that no rights are claimed is stored.
	Copyright string

	// CreationDate is written into the profile header.
	// The zero time selects the current time.
	CreationDate time.Time
}

// DefaultDescription is the profile description used when the caller does
// not supply one.
const DefaultDescription = "Custom gamma ICC profile"

const defaultCopyright = "no copyright, use freely"

// d50WhitePoint is the CIE standard illuminant D50 white point in XYZ
// coordinates.  This is the reference illuminant for the ICC Profile
// Connection Space.
var d50WhitePoint = [3]float64{0.9642, 1.0, 0.8249}

// The sRGB primaries, adapted to D50.  These are the colorant values
// carried by standard sRGB display profiles.
var (
	srgbRed   = [3]float64{0.436066, 0.222488, 0.013916}
	srgbGreen = [3]float64{0.385147, 0.716873, 0.097076}
	srgbBlue  = [3]float64{0.143066, 0.060608, 0.714096}
)

// New builds a display profile for an sRGB-like monitor from a parsed
// curve set.  opts may be nil to select all defaults.
//
// The value curve is folded into the three colour channels, and the
// resulting lookup tables are stored twice: as the rTRC/gTRC/bTRC tone
// curve tags, and as the video card gamma table read by GPU ramp loaders.
// Construction cannot fail; even an all-identity curve set produces a
// valid (visually neutral) profile.
func New(set *CurveSet, opts *Options) *Profile {
	if opts == nil {
		opts = &Options{}
	}
	desc := opts.Description
	if desc == "" {
		desc = DefaultDescription
	}
	copyright := opts.Copyright
	if copyright == "" {
		copyright = defaultCopyright
	}
	date := opts.CreationDate
	if date.IsZero() {
		date = time.Now()
	}

	ramp := NewRamp(set, rampSize)

	p := &Profile{
		Version:         profileVersion,
		Class:           DisplayDeviceProfile,
		ColorSpace:      RGBSpace,
		PCS:             CIEXYZSpace,
		CreationDate:    date,
		RenderingIntent: Perceptual,
		TagData:         make(map[TagType][]byte),
	}

	p.TagData[ProfileDescription] = encodeTextDescription(desc)
	p.TagData[Copyright] = encodeText(copyright)
	p.TagData[MediaWhitePoint] = encodeXYZ(d50WhitePoint[0], d50WhitePoint[1], d50WhitePoint[2])
	p.TagData[RedColorant] = encodeXYZ(srgbRed[0], srgbRed[1], srgbRed[2])
	p.TagData[GreenColorant] = encodeXYZ(srgbGreen[0], srgbGreen[1], srgbGreen[2])
	p.TagData[BlueColorant] = encodeXYZ(srgbBlue[0], srgbBlue[1], srgbBlue[2])
	p.TagData[RedTRC] = encodeCurve(ramp.Red)
	p.TagData[GreenTRC] = encodeCurve(ramp.Green)
	p.TagData[BlueTRC] = encodeCurve(ramp.Blue)
	p.TagData[VideoCardGamma] = encodeGammaRamp(ramp)

	return p
}

// BuildProfile converts the text of a GIMP curves preset directly into
// ICC profile bytes.  It is the one-call interface used by the command
// line tool.
func BuildProfile(curveText string, opts *Options) ([]byte, error) {
	set, err := ParseCurves(curveText)
	if err != nil {
		return nil, err
	}
	return New(set, opts).Encode(), nil
}
