package imageio

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Format is an export format.
type Format uint8

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	PDF
)

type formatInfo struct {
	name string
	mime string
	ext  string
}

var formats = [...]formatInfo{
	PNG:  {"png", "image/png", ".png"},
	JPEG: {"jpeg", "image/jpeg", ".jpg"},
	BMP:  {"bmp", "image/bmp", ".bmp"},
	TIFF: {"tiff", "image/tiff", ".tiff"},
	PDF:  {"pdf", "application/pdf", ".pdf"},
}

// Formats returns all export formats.
func Formats() []Format {
	return []Format{PNG, JPEG, BMP, TIFF, PDF}
}

func (f Format) valid() bool { return int(f) < len(formats) }

// String returns the lower-case format name.
func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formats[f].name
}

// MIME returns the media type, as used in data URLs.
func (f Format) MIME() string {
	if !f.valid() {
		return "application/octet-stream"
	}
	return formats[f].mime
}

// Extension returns the preferred file extension including the dot.
func (f Format) Extension() string {
	if !f.valid() {
		return ""
	}
	return formats[f].ext
}

// ParseFormat returns the format with the given name. Names are case
// insensitive; "jpg" and "tif" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	case "pdf":
		return PDF, nil
	}
	return 0, &UnknownFormatError{Name: name}
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, &UnknownFormatError{Name: path}
	}
	return ParseFormat(ext)
}

// formatFromMIME returns the format with the given media type.
func formatFromMIME(mime string) (Format, bool) {
	for i, info := range formats {
		if info.mime == mime {
			return Format(i), true
		}
	}
	return 0, false
}

// UnknownFormatError is returned for unrecognized format names.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return "imageio: unknown format " + strconv.Quote(e.Name)
}
