// Package imageio encodes and decodes signature images.
//
// Encoding supports PNG, JPEG, BMP, TIFF and single-page PDF documents.
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP. Images can also be
// exchanged as base64 data URLs, the form produced by browser canvases.
package imageio
