package recording

import (
	"image"
	"image/draw"
)

// ImageRef is a reference to a pooled image.
type ImageRef uint32

// InvalidRef is an ImageRef that refers to nothing.
const InvalidRef ImageRef = ^ImageRef(0)

// IsValid returns true if the reference is not InvalidRef.
func (r ImageRef) IsValid() bool {
	return r != InvalidRef
}

// ResourcePool stores images referenced by recorded commands.
// Each Add clones the image so later changes by the caller do not alter
// the recording.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images []*image.RGBA
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{images: make([]*image.RGBA, 0, 4)}
}

// AddImage adds a copy of img to the pool and returns its reference.
// A nil or empty image is not stored and yields InvalidRef.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	if img == nil || img.Bounds().Empty() {
		return InvalidRef
	}
	b := img.Bounds()
	cloned := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(cloned, cloned.Bounds(), img, b.Min, draw.Src)
	p.images = append(p.images, cloned)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for ref, or nil if ref is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if !ref.IsValid() || int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of pooled images.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all images, keeping the allocated capacity.
func (p *ResourcePool) Clear() {
	clear(p.images)
	p.images = p.images[:0]
}
