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
	"strconv"
	"strings"
)

// ParseCurves parses the text of a GIMP curves tool settings file (the
// "new", s-expression based save format) into a [CurveSet].
//
// The file starts with a "# GIMP" comment line, followed by one block per
// channel.  Each block is introduced by "(channel NAME)" and carries a
// "(points N ...)" form listing N coordinate values (N/2 input/output
// pairs, already in the unit range).  The alpha channel block is ignored;
// channels without a block get the identity curve.
//
// Point slots GIMP marks as unset (negative input) are dropped.  Points
// are sorted by ascending input; for duplicated inputs the last-seen
// output wins.
//
// If a channel block carries no usable points form but has a dense
// "(samples N ...)" list, the samples are used as evenly spaced control
// points instead.  Older exports only fill in the samples.
func ParseCurves(text string) (*CurveSet, error) {
	if err := checkHeader(text); err != nil {
		return nil, err
	}

	set := &CurveSet{
		Linear: strings.Contains(text, "(linear yes)"),
	}

	numBlocks := 0
	rest := text
	for {
		name, body, tail, ok := nextChannelBlock(rest)
		if !ok {
			break
		}
		rest = tail
		numBlocks++

		curve, err := parseChannelBlock(name, body)
		if err != nil {
			return nil, err
		}

		switch name {
		case "value":
			set.Value = curve
		case "red":
			set.Red = curve
		case "green":
			set.Green = curve
		case "blue":
			set.Blue = curve
		case "alpha":
			// no meaning for a gamma ramp
		default:
			return nil, &MalformedCurveFileError{
				Block:  name,
				Reason: "unknown channel name",
			}
		}
	}

	if numBlocks == 0 {
		return nil, &MalformedCurveFileError{
			Reason: "no channel blocks found",
		}
	}

	return set, nil
}

// checkHeader verifies the "# GIMP ..." comment which introduces curve
// preset files.  Anything else is some other file handed to us by
// mistake, and failing early beats producing a no-op profile.
func checkHeader(text string) error {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "# GIMP") {
			return nil
		}
		break
	}
	return &MalformedCurveFileError{
		Reason: "missing \"# GIMP\" file header",
	}
}

// nextChannelBlock locates the next "(channel NAME)" form.  It returns
// the channel name, the block body (everything up to the next channel
// form), and the remaining text starting at that next form.
func nextChannelBlock(text string) (name, body, tail string, ok bool) {
	const marker = "(channel "

	start := strings.Index(text, marker)
	if start < 0 {
		return "", "", "", false
	}
	nameStart := start + len(marker)
	nameEnd := strings.IndexByte(text[nameStart:], ')')
	if nameEnd < 0 {
		return "", "", "", false
	}
	name = strings.TrimSpace(text[nameStart : nameStart+nameEnd])

	body = text[nameStart+nameEnd+1:]
	if next := strings.Index(body, marker); next >= 0 {
		return name, body[:next], body[next:], true
	}
	return name, body, "", true
}

func parseChannelBlock(name, body string) (Curve, error) {
	values, err := parseNumberList(name, body, "points")
	if err != nil {
		return Curve{}, err
	}
	if values != nil {
		if len(values)%2 != 0 {
			return Curve{}, &MalformedCurveFileError{
				Block:  name,
				Reason: "odd number of point coordinates",
			}
		}
		var points []ControlPoint
		for i := 0; i+1 < len(values); i += 2 {
			in, out := values[i], values[i+1]
			if in < 0 {
				// unset point slot
				continue
			}
			points = append(points, ControlPoint{
				In:  clamp(in, 0, 1),
				Out: clamp(out, 0, 1),
			})
		}
		if len(points) > 0 {
			return NewCurve(points), nil
		}
	}

	// no usable points, fall back to the dense samples list
	samples, err := parseNumberList(name, body, "samples")
	if err != nil {
		return Curve{}, err
	}
	if len(samples) == 1 {
		return NewCurve([]ControlPoint{{In: 0, Out: clamp(samples[0], 0, 1)}}), nil
	}
	if len(samples) > 1 {
		points := make([]ControlPoint, len(samples))
		for i, s := range samples {
			points[i] = ControlPoint{
				In:  float64(i) / float64(len(samples)-1),
				Out: clamp(s, 0, 1),
			}
		}
		return NewCurve(points), nil
	}

	// neither form present: identity
	return Curve{}, nil
}

// parseNumberList extracts a "(KEY N v1 ... vN)" form from the block body.
// It returns nil (and no error) if the form is absent.
func parseNumberList(block, body, key string) ([]float64, error) {
	marker := "(" + key + " "
	start := strings.Index(body, marker)
	if start < 0 {
		return nil, nil
	}
	end := strings.IndexByte(body[start:], ')')
	if end < 0 {
		return nil, &MalformedCurveFileError{
			Block:  block,
			Reason: fmt.Sprintf("unterminated %q form", key),
		}
	}

	fields := strings.Fields(body[start+len(marker) : start+end])
	if len(fields) == 0 {
		return nil, &MalformedCurveFileError{
			Block:  block,
			Reason: fmt.Sprintf("missing count in %q form", key),
		}
	}

	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return nil, &MalformedCurveFileError{
			Block:  block,
			Reason: fmt.Sprintf("invalid count %q in %q form", fields[0], key),
		}
	}
	if count != len(fields)-1 {
		return nil, &MalformedCurveFileError{
			Block: block,
			Reason: fmt.Sprintf("%q form declares %d values but lists %d",
				key, count, len(fields)-1),
		}
	}

	values := make([]float64, count)
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &MalformedCurveFileError{
				Block:  block,
				Reason: fmt.Sprintf("invalid number %q in %q form", f, key),
			}
		}
		values[i] = v
	}
	return values, nil
}

// MalformedCurveFileError indicates that a curve preset file is
// structurally or numerically defective and cannot be parsed.
type MalformedCurveFileError struct {
	Block  string // channel block the defect was found in, if any
	Reason string
}

func (e *MalformedCurveFileError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("vcgt: malformed curve file (%s block): %s", e.Block, e.Reason)
	}
	return "vcgt: malformed curve file: " + e.Reason
}
