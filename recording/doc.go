// Package recording provides a surface that records drawing commands.
//
// The recorder implements surface.Surface, so a sigpad.Pad can draw on it
// like on any raster target. Instead of pixels it keeps typed commands
// (BeginPath, MoveTo, Arc, ClosePath, Fill, Clear, DrawImage) which can be
// inspected, counted, and replayed onto other surfaces with Playback.
//
// Importing the package registers the "record" backend with the surface
// registry.
package recording
