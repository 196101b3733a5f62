// Command scandemo renders a sheet of tiles exercising the scan
// converters, region and anti-aliased clips, and writes it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/scan"
)

// tile draws one demo into dst. dst spans the tile's rectangle of the
// sheet; geometry is placed with the translation m.
type tile struct {
	name string
	draw func(r *scan.Rasterizer, dst *image.RGBA, m scan.Matrix, size float64)
}

var tiles = []tile{
	{"fill", drawFill},
	{"region", drawRegion},
	{"aaclip", drawAAClip},
	{"hairlines", drawHairlines},
	{"frames", drawFrames},
	{"ops", drawOps},
}

func main() {
	var (
		size    = flag.Int("size", 160, "tile size in pixels")
		scale   = flag.Int("scale", 1, "integer upscale of the output")
		output  = flag.String("output", "scandemo.png", "output file")
		engine  = flag.String("engine", "supersample", "anti-aliasing engine: supersample or analytic")
		verbose = flag.Bool("v", false, "log debug records")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scan.SetLogger(logger)

	mode, err := parseEngine(*engine)
	if err != nil {
		logger.Error("bad flag", "err", err)
		os.Exit(2)
	}

	sheet, err := render(*size, mode)
	if err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
	if *scale > 1 {
		b := sheet.Bounds()
		big := image.NewRGBA(image.Rect(0, 0, b.Dx()*(*scale), b.Dy()*(*scale)))
		draw.NearestNeighbor.Scale(big, big.Bounds(), sheet, b, draw.Src, nil)
		sheet = big
	}

	if err := writePNG(*output, sheet); err != nil {
		logger.Error("write failed", "err", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "file", *output, "bounds", sheet.Bounds(), "engine", mode)
}

func parseEngine(s string) (scan.AAMode, error) {
	switch strings.ToLower(s) {
	case "supersample":
		return scan.AASupersample, nil
	case "analytic":
		return scan.AAAnalytic, nil
	}
	return 0, fmt.Errorf("unknown engine %q", s)
}

// render draws every tile concurrently, each with its own Rasterizer,
// into a sheet three tiles wide.
func render(size int, mode scan.AAMode) (*image.RGBA, error) {
	const cols = 3
	rows := (len(tiles) + cols - 1) / cols
	sheet := image.NewRGBA(image.Rect(0, 0, cols*size, rows*size))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, t := range tiles {
		x, y := (i%cols)*size, (i/cols)*size
		dst := sheet.SubImage(image.Rect(x, y, x+size, y+size)).(*image.RGBA)
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("tile %s: %v", t.name, p)
				}
			}()
			r := scan.NewRasterizer(scan.WithAAMode(mode), scan.WithLogger(scan.Logger().With("tile", t.name)))
			t.draw(r, dst, scan.Translate(float64(x), float64(y)), float64(size))
			return nil
		})
	}
	return sheet, g.Wait()
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// tileRegion returns dst's bounds as a clip region.
func tileRegion(dst *image.RGBA) *scan.Region {
	return scan.NewRegion(scan.IRectFromImage(dst.Bounds()))
}

func star(cx, cy, outer, inner float64, points int) *scan.Path {
	p := scan.NewPath()
	for i := range 2 * points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/float64(points) - math.Pi/2
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

func drawFill(r *scan.Rasterizer, dst *image.RGBA, m scan.Matrix, s float64) {
	clip := tileRegion(dst)
	c := scan.NewPath()
	c.Circle(s*0.4, s*0.45, s*0.3)
	r.AntiFillPath(c.Transform(m), clip, scan.NewColorBlitter(dst, withAlpha(colornames.Steelblue, 0xC0)))

	st := star(s*0.62, s*0.58, s*0.32, s*0.14, 5)
	st.SetFillType(scan.FillEvenOdd)
	r.AntiFillPath(st.Transform(m), clip, scan.NewColorBlitter(dst, withAlpha(colornames.Orange, 0xC0)))
}

func drawRegion(r *scan.Rasterizer, dst *image.RGBA, m scan.Matrix, s float64) {
	o := scan.IRectFromImage(dst.Bounds()).Rect()
	n := int(s / 8)
	rg := scan.NewRegion(scan.IRect{})
	for j := range 8 {
		for i := range 8 {
			if (i+j)%2 == 0 {
				rg.AddRect(scan.IRectXYWH(int(o.Left)+i*n, int(o.Top)+j*n, n, n))
			}
		}
	}
	rg.OpRect(scan.IRectFromImage(dst.Bounds()), scan.OpIntersect)

	st := star(s/2, s/2, s*0.45, s*0.2, 6)
	r.FillPath(st.Transform(m), rg, scan.NewColorBlitter(dst, colornames.Seagreen))
	r.AntiHairPath(st.Transform(m), tileRegion(dst), scan.NewColorBlitter(dst, colornames.Black))
}

func drawAAClip(r *scan.Rasterizer, dst *image.RGBA, m scan.Matrix, s float64) {
	var clip scan.AAClip
	defer clip.Release()
	c := scan.NewPath()
	c.Circle(s/2, s/2, s*0.42)
	clip.SetPath(c.Transform(m), tileRegion(dst), true, scan.WithAAMode(r.Config().AAMode))
	clip.OpRectF(m.MapRect(scan.Rect{Left: s * 0.3, Top: s * 0.3, Right: s * 0.7, Bottom: s * 0.7}), scan.OpDifference, true)

	b := scan.NewAAClipBlitter(scan.NewColorBlitter(dst, colornames.Crimson), &clip)
	cb := clip.Bounds()
	b.BlitRect(cb.Left, cb.Top, cb.Width(), cb.Height())

	// Stripes drawn through the same clip.
	stripes := scan.NewAAClipBlitter(scan.NewColorBlitter(dst, colornames.Gold), &clip)
	for y := cb.Top; y < cb.Bottom; y += 6 {
		r.AntiHairLine(scan.Pt(float64(cb.Left), float64(y)), scan.Pt(float64(cb.Right), float64(y)+s/4), nil, stripes)
	}
}

func drawHairlines(r *scan.Rasterizer, dst *image.RGBA, m scan.Matrix, s float64) {
	clip := tileRegion(dst)
	center := m.TransformPoint(scan.Pt(s/2, s/2))
	for i := range 24 {
		a := float64(i) * math.Pi / 12
		end := center.Add(scan.Pt(math.Cos(a), math.Sin(a)).Mul(s * 0.45))
		if i%2 == 0 {
			r.AntiHairLine(center, end, clip, scan.NewColorBlitter(dst, colornames.Navy))
		} else {
			r.HairLine(center, end, clip, scan.NewColorBlitter(dst, colornames.Darkred))
		}
	}
}

func drawFrames(r *scan.Rasterizer, dst *image.RGBA, m scan.Matrix, s float64) {
	clip := tileRegion(dst)
	for i := range 6 {
		inset := s * (0.05 + 0.07*float64(i))
		rect := m.MapRect(scan.Rect{Left: inset, Top: inset, Right: s - inset, Bottom: s - inset})
		stroke := 0.5 + 0.75*float64(i)
		if i%2 == 0 {
			r.AntiFrameRect(rect, scan.Pt(stroke, stroke), clip, scan.NewColorBlitter(dst, colornames.Purple))
		} else {
			r.FrameRect(rect, scan.Pt(stroke, stroke), clip, scan.NewColorBlitter(dst, colornames.Teal))
		}
	}
	r.AntiFillRect(m.MapRect(scan.Rect{Left: s*0.45 + 0.3, Top: s*0.45 + 0.3, Right: s*0.55 + 0.6, Bottom: s*0.55 + 0.6}), clip,
		scan.NewColorBlitter(dst, colornames.Black))
}

func drawOps(r *scan.Rasterizer, dst *image.RGBA, m scan.Matrix, s float64) {
	var a, b, x scan.AAClip
	defer a.Release()
	defer b.Release()
	defer x.Release()

	opt := scan.WithAAMode(r.Config().AAMode)
	pa := scan.NewPath()
	pa.Circle(s*0.4, s*0.5, s*0.3)
	pb := scan.NewPath()
	pb.Circle(s*0.6, s*0.5, s*0.3)
	a.SetPath(pa.Transform(m), nil, true, opt)
	b.SetPath(pb.Transform(m), nil, true, opt)
	x.Op(&a, &b, scan.OpXor)

	xb := x.Bounds()
	scan.NewAAClipBlitter(scan.NewColorBlitter(dst, colornames.Indigo), &x).BlitRect(xb.Left, xb.Top, xb.Width(), xb.Height())

	scan.Logger().Debug("ops tile", "a", a.Bounds().Image(), "b", b.Bounds().Image(), "xor", xb.Image())
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
