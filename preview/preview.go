// Package preview rasterizes triangle strips on the CPU. It produces the
// same framing as the GL renderer and needs no window or GPU.
package preview

import (
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/hilbert"
	"github.com/soypat/hilbert/internal/d2"
	"github.com/soypat/hilbert/viewport"
)

// Config configures Render.
type Config struct {
	// Output image size in pixels.
	Width, Height int
	// Supersample renders at Supersample times the output size and
	// downsamples for antialiasing. Values below 2 disable it.
	Supersample int
	View        viewport.State
	// Hex colors, as accepted by fauxgl.HexColor.
	Color      string
	Background string
}

// DefaultConfig returns a 400×400 preview supersampled twice, drawn with
// the identity view in the viewer's colors.
func DefaultConfig() Config {
	return Config{
		Width:       400,
		Height:      400,
		Supersample: 2,
		View:        viewport.New(),
		Color:       "#468966",
		Background:  "#FFF8E3",
	}
}

// Render draws strip as a triangle strip with a solid color.
func Render(strip hilbert.Strip, cfg Config) (image.Image, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("zero or negative image dimension")
	} else if len(strip) < 3 {
		return nil, errors.New("triangle strip needs at least 3 vertices")
	}
	scale := cfg.Supersample
	if scale < 2 {
		scale = 1
	}
	width, height := cfg.Width*scale, cfg.Height*scale
	res := ms2.Vec{X: float32(width), Y: float32(height)}
	verts := make([]fauxgl.Vector, len(strip))
	for i, v := range strip {
		p := cfg.View.Transform(v, res)
		verts[i] = fauxgl.V(float64(p.X), float64(p.Y), 0)
	}
	triangles := make([]*fauxgl.Triangle, 0, len(verts)-2)
	for i := 2; i < len(verts); i++ {
		triangles = append(triangles, fauxgl.NewTriangleForPoints(verts[i-2], verts[i-1], verts[i]))
	}

	context := fauxgl.NewContext(width, height)
	context.ClearColorBufferWith(fauxgl.HexColor(cfg.Background))
	// Strip winding alternates every triangle and everything lies at z=0.
	context.Cull = fauxgl.CullNone
	context.ReadDepth = false
	context.WriteDepth = false
	context.Shader = fauxgl.NewSolidColorShader(fauxgl.Identity(), fauxgl.HexColor(cfg.Color))
	context.DrawTriangles(triangles)
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(cfg.Width), uint(cfg.Height), img, resize.Bilinear)
	}
	return img, nil
}

// FitView returns a viewport state that centers strip and scales it to
// fill 95% of the shorter side of the image.
func FitView(strip hilbert.Strip) viewport.State {
	v := viewport.New()
	if len(strip) == 0 {
		return v
	}
	bb := d2.Points(strip).Bounds()
	size := bb.Size()
	long := size.X
	if size.Y > long {
		long = size.Y
	}
	center := bb.Center()
	v.Translate = ms2.Vec{X: -float32(center.X), Y: -float32(center.Y)}
	if long > 0 {
		v.Scale = float32(2 * 0.95 / long)
	}
	return v
}

// Coverage returns the fraction of pixels of img that differ from background.
func Coverage(img image.Image, background color.Color) float64 {
	const tol = 0x400 // about 1/64 of full scale per channel.
	br, bg, bb, ba := background.RGBA()
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}
	covered := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if absdiff(r, br) > tol || absdiff(g, bg) > tol || absdiff(b, bb) > tol || absdiff(a, ba) > tol {
				covered++
			}
		}
	}
	return float64(covered) / float64(bounds.Dx()*bounds.Dy())
}

func absdiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
