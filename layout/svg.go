// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/paulmach/orb"
)

// drawing constants in pixels
const (
	canvasWidth = 1200
	margin      = 40
	nodeRadius  = 18
	levelHeight = 80
)

// WriteSVG - render placements as an SVG drawing, edges below nodes
func WriteSVG(w io.Writer, placements []Placement) error {
	b := bufio.NewWriter(w)

	bound := Bound(placements)
	levels := 0
	for _, p := range placements {
		if p.Level > levels {
			levels = p.Level
		}
	}
	height := 2*margin + levelHeight*levels

	fmt.Fprintf(b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n", canvasWidth, height)

	project := projector(bound, levels)
	for _, p := range placements {
		if p.Parent < 0 {
			continue
		}
		from := project(placements[p.Parent].Point)
		to := project(p.Point)
		fmt.Fprintf(b, "  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"black\"/>\n", from[0], from[1], to[0], to[1])
	}
	for _, p := range placements {
		at := project(p.Point)
		fmt.Fprintf(b, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%d\" fill=\"pink\" stroke=\"black\"><title>%s</title></circle>\n", at[0], at[1], nodeRadius, html.EscapeString(p.Title))
		fmt.Fprintf(b, "  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-size=\"10\">%.2f</text>\n", at[0], at[1]+4, p.Key.Primary)
	}

	fmt.Fprintf(b, "</svg>\n")
	return b.Flush()
}

// map layout coordinates onto the canvas, one row per level
func projector(bound orb.Bound, levels int) func(orb.Point) orb.Point {
	width := bound.Max.X() - bound.Min.X()
	depth := bound.Max.Y() - bound.Min.Y()
	return func(p orb.Point) orb.Point {
		x := float64(canvasWidth) / 2
		if width > 0 {
			x = margin + (p.X()-bound.Min.X())/width*float64(canvasWidth-2*margin)
		}
		y := float64(margin)
		if depth > 0 {
			y = margin + (bound.Max.Y()-p.Y())/depth*float64(levelHeight*(levels-1))
		}
		return orb.Point{x, y}
	}
}
