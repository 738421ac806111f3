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

// Gimp2icc converts a curve preset saved by the GIMP curves tool into an
// ICC display profile with an embedded video card gamma ramp.
//
// Usage:
//
//	gimp2icc [-d description] curves.txt [out.icc]
//
// The output path defaults to "out.icc".  The description appears in the
// operating system's colour management dialog once the profile is
// installed.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"seehuhn.de/go/vcgt"
)

func main() {
	var description string
	flag.StringVar(&description, "d", vcgt.DefaultDescription,
		"profile description shown in colour management dialogs")
	flag.StringVar(&description, "description", vcgt.DefaultDescription,
		"long form of -d")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [-d description] CURVES_INPUT [ICC_OUTPUT]\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}
	input := args[0]
	output := "out.icc"
	if len(args) == 2 {
		output = args[1]
	}

	log.Infof("reading curves from %q", input)
	text, err := os.ReadFile(input)
	if err != nil {
		log.Fatal(err)
	}

	set, err := vcgt.ParseCurves(string(text))
	if err != nil {
		log.Fatal(err)
	}
	if set.Linear {
		log.Warn("curves are saved in linear light, the result might not look correct")
	}

	data := vcgt.New(set, &vcgt.Options{Description: description}).Encode()

	log.Infof("saving profile to %q", output)
	err = os.WriteFile(output, data, 0o666)
	if err != nil {
		log.Fatal(err)
	}
}
