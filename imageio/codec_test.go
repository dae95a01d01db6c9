package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

// testImage returns a white image with a black square in the middle.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if x >= w/4 && x < 3*w/4 && y >= h/4 && y < 3*h/4 {
				c = color.RGBA{A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func gray(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

func TestEncodeDecodeRaster(t *testing.T) {
	src := testImage(40, 20)
	for _, f := range []Format{PNG, JPEG, BMP, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			img, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := img.Bounds(); got != src.Bounds() {
				t.Fatalf("Bounds() = %v, want %v", got, src.Bounds())
			}
			if g := gray(img.At(20, 10)); g > 40 {
				t.Errorf("center gray = %d, want dark", g)
			}
			if g := gray(img.At(1, 1)); g < 215 {
				t.Errorf("corner gray = %d, want light", g)
			}
		})
	}
}

func TestEncodePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(60, 30), PDF); err != nil {
		t.Fatalf("Encode(PDF) error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Errorf("output starts with %q, want %%PDF-", out[:min(8, len(out))])
	}
	if !strings.Contains(out, "/Image") {
		t.Error("PDF has no image object")
	}
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, PNG); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Encode(nil) error = %v, want ErrEmptyImage", err)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 10))
	if err := Encode(&buf, empty, PNG); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Encode(empty) error = %v, want ErrEmptyImage", err)
	}
	var ufe *UnknownFormatError
	if err := Encode(&buf, testImage(4, 4), Format(42)); !errors.As(err, &ufe) {
		t.Errorf("Encode(Format(42)) error = %v, want *UnknownFormatError", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not an image"))
	if err == nil {
		t.Fatal("Decode() error = nil, want error")
	}
	if !strings.HasPrefix(err.Error(), "imageio: decode:") {
		t.Errorf("error = %q, want imageio: decode prefix", err)
	}
}

func BenchmarkEncodePNG(b *testing.B) {
	img := testImage(600, 200)
	var buf bytes.Buffer
	b.ResetTimer()
	for range b.N {
		buf.Reset()
		_ = Encode(&buf, img, PNG)
	}
}
