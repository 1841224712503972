// Copyright (c) The attrgraph Authors
// SPDX-License-Identifier: MPL-2.0

package layout

import (
	graph "github.com/attrgraph/attrgraph"
)

// Size is a view's outer dimensions, the single input the demo tree is
// driven from.
type Size struct {
	Width  float64
	Height float64
}

// Alignment controls how a padded rectangle is positioned within the
// available size. Only Leading and Center are implemented; both are enough
// to demonstrate a rule reading more than one upstream producer.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignCenter
)

// Frame is the rectangle a view would ultimately be laid out into.
type Frame struct {
	X, Y          float64
	Width, Height float64
}

// Demo wires a small tree of rule nodes on top of an externally owned
// graph.Graph: an input Size, together with Padding and Alignment inputs,
// feeds a paddedSize rule and, through it, a frame rule, mirroring spec.md §8 Scenario F ("an input size... and a tree of
// rules that computes a frame from size").
type Demo struct {
	Size      graph.Node[Size]
	Alignment graph.Node[Alignment]
	Padding   graph.Node[float64]
	Frame     graph.Node[Frame]
}

// NewDemo builds the demo tree on g, seeding the size input with initial,
// the alignment input with AlignLeading, and the padding input with 8 units
// on every side.
func NewDemo(g *graph.Graph, initial Size) *Demo {
	size := graph.CreateInput(g, "size", initial)
	alignment := graph.CreateInput(g, "alignment", AlignLeading)
	padding := graph.CreateInput(g, "padding", 8.0)

	paddedSize := graph.CreateRule(g, "paddedSize", func() Size {
		s := size.Value()
		p := padding.Value()
		w := s.Width - 2*p
		h := s.Height - 2*p
		if w < 0 {
			w = 0
		}
		if h < 0 {
			h = 0
		}
		return Size{Width: w, Height: h}
	})

	frame := graph.CreateRule(g, "frame", func() Frame {
		s := size.Value()
		p := padding.Value()
		inner := paddedSize.Value()

		x, y := p, p
		if alignment.Value() == AlignCenter {
			x = (s.Width - inner.Width) / 2
			y = (s.Height - inner.Height) / 2
		}
		return Frame{X: x, Y: y, Width: inner.Width, Height: inner.Height}
	})

	return &Demo{
		Size:      size,
		Alignment: alignment,
		Padding:   padding,
		Frame:     frame,
	}
}
