package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/gl/all-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/v4.6-core/glgl"
	"github.com/soypat/hilbert"
	"github.com/soypat/hilbert/glrender"
	"github.com/soypat/hilbert/internal/d2"
	"github.com/soypat/hilbert/preview"
	"github.com/soypat/hilbert/viewport"
)

func init() {
	runtime.LockOSThread() // For GL.
}

type config struct {
	order         int
	halfWidth     float64
	halfWidthSet  bool
	width, height int
	shader        string
	headless      bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("hilbert", flag.ExitOnError)
	fs.IntVar(&cfg.order, "order", 3, "Hilbert curve recursion order")
	fs.Float64Var(&cfg.halfWidth, "halfwidth", 0, "ribbon half width (default a quarter of the curve's grid spacing)")
	fs.IntVar(&cfg.width, "width", 800, "window width in pixels")
	fs.IntVar(&cfg.height, "height", 800, "window height in pixels")
	fs.StringVar(&cfg.shader, "shader", "", "combined GLSL program file replacing the embedded shader")
	fs.BoolVar(&cfg.headless, "headless", false, "generate and rasterize on the CPU without opening a window")
	fs.Parse(args)
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "halfwidth" {
			cfg.halfWidthSet = true
		}
	})
	if cfg.order < 0 || cfg.order > hilbert.MaxOrder {
		return cfg, fmt.Errorf("order must be in 0..%d, got %d", hilbert.MaxOrder, cfg.order)
	}
	return cfg, nil
}

// ribbonHalfWidth returns the half width requested with -halfwidth, zero
// included, or the default for the curve order.
func (cfg config) ribbonHalfWidth() float32 {
	if cfg.halfWidthSet {
		return float32(cfg.halfWidth)
	}
	return hilbert.HalfWidth(cfg.order)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	tstart := time.Now()
	curve := hilbert.Curve(cfg.order)
	w := cfg.ribbonHalfWidth()
	strip := hilbert.Extrude(curve, w)
	log.Printf("order %d: %d curve points, %d strip vertices, %d segments, half width %g (%s)",
		cfg.order, len(curve), len(strip), hilbert.NumSegments(strip), w, time.Since(tstart))

	if cfg.headless {
		err = runHeadless(strip)
	} else {
		err = run(cfg, strip)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// runHeadless rasterizes the strip in memory and reports its footprint.
func runHeadless(strip hilbert.Strip) error {
	bb := d2.Points(strip).Bounds()
	log.Printf("strip bounds min=%v max=%v", bb.Min, bb.Max)
	pcfg, coverage, err := fittedPreview(strip)
	if err != nil {
		return err
	}
	log.Printf("preview %dx%d at scale %.3g: %.1f%% covered", pcfg.Width, pcfg.Height, pcfg.View.Scale, 100*coverage)
	return nil
}

// fittedPreview renders strip framed to fill the default preview and
// returns the fraction of pixels it covers.
func fittedPreview(strip hilbert.Strip) (preview.Config, float64, error) {
	pcfg := preview.DefaultConfig()
	pcfg.View = preview.FitView(strip)
	img, err := preview.Render(strip, pcfg)
	if err != nil {
		return pcfg, 0, err
	}
	return pcfg, preview.Coverage(img, fauxgl.HexColor(pcfg.Background).NRGBA()), nil
}

func run(cfg config, strip hilbert.Strip) error {
	window, terminate, err := glgl.InitWithCurrentWindow33(glgl.WindowConfig{
		Title:   "Hilbert Curve",
		Version: [2]int{3, 3},
		Width:   cfg.width,
		Height:  cfg.height,
	})
	if err != nil {
		return fmt.Errorf("starting GLFW: %w", err)
	}
	defer terminate()

	shader, err := shaderSource(cfg.shader)
	if err != nil {
		return err
	}
	r, err := glrender.NewRenderer(shader, strip)
	if err != nil {
		return err
	}
	defer r.Delete()

	view := viewport.New()
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		view = view.Scroll(yoff)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			view = view.Press(cursorPos(w))
		case glfw.Release:
			view = view.Release()
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		width, height := w.GetSize()
		view = view.Move(ms2.Vec{X: float32(x), Y: float32(y)}, ms2.Vec{X: float32(width), Y: float32(height)})
	})

	for !window.ShouldClose() {
		width, height := window.GetSize()
		r.Draw(glrender.NewUniforms(view, width, height))
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func cursorPos(w *glfw.Window) ms2.Vec {
	x, y := w.GetCursorPos()
	return ms2.Vec{X: float32(x), Y: float32(y)}
}

// shaderSource returns the embedded shader when path is empty.
func shaderSource(path string) (io.Reader, error) {
	if path == "" {
		return glrender.DefaultShader(), nil
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	b, err := io.ReadAll(fp)
	if err != nil {
		return nil, fmt.Errorf("reading shader %s: %w", path, err)
	}
	return bytes.NewReader(b), nil
}
