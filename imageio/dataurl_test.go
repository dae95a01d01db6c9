package imageio

import (
	"errors"
	"strings"
	"testing"
)

func TestDataURL(t *testing.T) {
	got := DataURL([]byte("hi"), PNG)
	if want := "data:image/png;base64,aGk="; got != want {
		t.Errorf("DataURL() = %q, want %q", got, want)
	}
}

func TestEncodeDecodeDataURL(t *testing.T) {
	src := testImage(16, 8)
	for _, f := range []Format{PNG, JPEG} {
		s, err := EncodeDataURL(src, f)
		if err != nil {
			t.Fatalf("EncodeDataURL(%v) error = %v", f, err)
		}
		if !strings.HasPrefix(s, "data:"+f.MIME()+";base64,") {
			t.Errorf("EncodeDataURL(%v) prefix = %q", f, s[:min(30, len(s))])
		}
		if got, err := DataURLFormat(s); err != nil || got != f {
			t.Errorf("DataURLFormat() = %v, %v; want %v", got, err, f)
		}
		img, err := DecodeDataURL(s)
		if err != nil {
			t.Fatalf("DecodeDataURL() error = %v", err)
		}
		if img.Bounds() != src.Bounds() {
			t.Errorf("Bounds() = %v, want %v", img.Bounds(), src.Bounds())
		}
	}
}

func TestParseDataURL(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantMIME string
		wantData string
		wantErr  bool
	}{
		{"png", "data:image/png;base64,aGk=", "image/png", "hi", false},
		{"empty payload", "data:image/png;base64,", "image/png", "", false},
		{"no scheme", "image/png;base64,aGk=", "", "", true},
		{"no comma", "data:image/png;base64", "", "", true},
		{"not base64", "data:image/png,hi", "", "", true},
		{"bad base64", "data:image/png;base64,!!!", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, data, err := ParseDataURL(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDataURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidDataURL) {
					t.Errorf("error = %v, want ErrInvalidDataURL", err)
				}
				return
			}
			if mime != tt.wantMIME || string(data) != tt.wantData {
				t.Errorf("ParseDataURL() = %q, %q; want %q, %q", mime, data, tt.wantMIME, tt.wantData)
			}
		})
	}
}

func TestDataURLFormatUnknown(t *testing.T) {
	var ufe *UnknownFormatError
	if _, err := DataURLFormat("data:image/webp;base64,"); !errors.As(err, &ufe) {
		t.Errorf("DataURLFormat(webp) error = %v, want *UnknownFormatError", err)
	}
}
