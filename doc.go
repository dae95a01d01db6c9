// Package sigpad turns a stream of pointer samples into smooth,
// variable-width ink strokes, the way a signature pad does.
//
// # Overview
//
// Every pointer sample goes through a [Tracker]. The tracker keeps a sliding
// window of the last four samples of the current stroke, fits a cubic Bézier
// segment through the middle two, and estimates a line width from the
// filtered pointer velocity: fast motion draws thin lines, slow motion draws
// thick ones. Each segment is handed to a [Renderer], which stamps
// overlapping filled circles along the curve and fills them as one path so
// the result looks like a single ribbon.
//
// [Pad] wires both to a drawing surface and adds the consumer-facing
// operations: configuration, clearing, emptiness, observers, and image
// export/import.
//
// # Quick Start
//
//	s := surface.NewImageSurface(600, 200)
//	pad, err := sigpad.New(s, sigpad.WithPenColor(color.Black))
//	if err != nil {
//	    return err
//	}
//
//	_ = pad.BeginStroke(sigpad.NewPoint(10, 10))
//	_ = pad.AddPoint(sigpad.NewPoint(40, 22))
//	_ = pad.AddPoint(sigpad.NewPoint(80, 30))
//	_ = pad.EndStroke(sigpad.NewPoint(120, 34))
//
//	f, _ := os.Create("signature.png")
//	defer f.Close()
//	_ = pad.Export(f, imageio.PNG)
//
// # Surfaces
//
// Any type implementing [surface.Surface] can be drawn on. The module ships
// a pure Go rasterizer ([surface.ImageSurface]), an adapter over the gogpu/gg
// drawing context (surface/ggsurface), a browser canvas adapter for
// js/wasm (surface/jscanvas) and a command recorder (recording).
//
// # Concurrency
//
// A Pad is driven by one input source and is not safe for concurrent use.
// Callers that receive input on several goroutines must serialize access.
package sigpad
