package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Framebuffer holds averaged linear radiance per pixel.
// Row 0 is the top of the image, which is camera row j = Height-1.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the linear color for image pixel (x, y)
func (fb *Framebuffer) Set(x, y int, linear core.Vec3) {
	fb.Pixels[y*fb.Width+x] = linear
}

// At returns the linear color for image pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Encoded returns the gamma encoded color for image pixel (x, y)
func (fb *Framebuffer) Encoded(x, y int) core.Vec3 {
	return core.GammaEncode(fb.At(x, y))
}

// RGB8 returns the 8-bit output channels for image pixel (x, y)
func (fb *Framebuffer) RGB8(x, y int) (r, g, b uint8) {
	return core.ToRGB8(fb.Encoded(x, y))
}

// ToRGBA gamma encodes and quantizes the whole buffer
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.RGB8(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
