package imageio

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrInvalidDataURL is returned for strings that are not base64 data URLs.
var ErrInvalidDataURL = errors.New("imageio: invalid data URL")

// DataURL returns data as a base64 data URL with the media type of f.
func DataURL(data []byte, f Format) string {
	var sb strings.Builder
	sb.Grow(len("data:;base64,") + len(f.MIME()) + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString("data:")
	sb.WriteString(f.MIME())
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String()
}

// EncodeDataURL encodes img in format f and returns it as a data URL.
func EncodeDataURL(img image.Image, f Format) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, f); err != nil {
		return "", err
	}
	return DataURL(buf.Bytes(), f), nil
}

// ParseDataURL splits a base64 data URL into its media type and payload.
func ParseDataURL(s string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}
	mime, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: payload is not base64", ErrInvalidDataURL)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	return mime, data, nil
}

// DecodeDataURL decodes an image from a base64 data URL. The declared
// media type is not trusted; the payload is sniffed like in Decode.
func DecodeDataURL(s string) (image.Image, error) {
	_, data, err := ParseDataURL(s)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data))
}

// DataURLFormat returns the export format declared by a data URL.
func DataURLFormat(s string) (Format, error) {
	mime, _, err := ParseDataURL(s)
	if err != nil {
		return 0, err
	}
	f, ok := formatFromMIME(mime)
	if !ok {
		return 0, &UnknownFormatError{Name: mime}
	}
	return f, nil
}
