// Command vecdemo renders every vecedit primitive, including text laid out
// along a path, into a PNG file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/gogpu/vecedit"
	"github.com/gogpu/vecedit/drawing"
	"github.com/gogpu/vecedit/raster"
	"github.com/gogpu/vecedit/recording"
	"github.com/gogpu/vecedit/text"
)

func main() {
	cfg := defaultConfig()

	configPath := flag.String("config", "", "TOML config file")
	width := flag.Int("width", cfg.Width, "image width")
	height := flag.Int("height", cfg.Height, "image height")
	output := flag.String("output", cfg.Output, "output file")
	str := flag.String("text", cfg.Text, "text laid out along the curve")
	fontFile := flag.String("font", cfg.FontFile, "TrueType/OpenType font file (default: Go Regular)")
	engine := flag.String("engine", cfg.Engine, "glyph engine: sfnt or gotext")
	verbose := flag.Bool("v", cfg.Verbose, "debug logging")
	flag.Parse()

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			log.Fatal(err)
		}
	}
	// Explicit flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "output":
			cfg.Output = *output
		case "text":
			cfg.Text = *str
		case "font":
			cfg.FontFile = *fontFile
		case "engine":
			cfg.Engine = *engine
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Verbose {
		vecedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg); err != nil {
		log.Fatalf("vecdemo: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", cfg.Output, cfg.Width, cfg.Height)
}

func run(cfg config) error {
	src, err := glyphSource(cfg)
	if err != nil {
		return err
	}

	h := drawing.NewHistory(drawing.New(), 0)
	if err := buildScene(h, cfg, src); err != nil {
		return err
	}

	bg, _ := parseColor(cfg.Background)
	fill, _ := parseColor(cfg.Fill)
	stroke, _ := parseColor(cfg.Stroke)
	c := raster.New(cfg.Width, cfg.Height,
		raster.WithBackground(bg),
		raster.WithFillColor(fill),
		raster.WithStrokeColor(stroke),
		raster.WithStrokeWidth(cfg.StrokeWidth),
		raster.WithDash(raster.NewDash(cfg.Dash...)),
	)

	// Paint through a recording so the scene can be inspected before it is
	// rasterized.
	rec := recording.NewRecorder()
	h.Drawing().Paint(rec)
	r := rec.Finish()
	vecedit.Logger().Info("scene recorded",
		"items", h.Drawing().Len(),
		"commands", len(r.Commands()),
		"fills", r.Count(recording.CmdFillPath),
		"strokes", r.Count(recording.CmdStrokePath),
	)
	r.Playback(c)

	return c.SavePNG(cfg.Output)
}

func glyphSource(cfg config) (vecedit.GlyphSource, error) {
	type registry interface {
		vecedit.GlyphSource
		Register(family string, bold, italic bool, data []byte) error
	}

	var (
		src registry
		err error
	)
	switch cfg.Engine {
	case "gotext":
		src, err = text.NewGoTextSource()
	default:
		src, err = text.NewSFNTSource()
	}
	if err != nil {
		return nil, err
	}
	if cfg.FontFile != "" {
		data, err := os.ReadFile(cfg.FontFile)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		if err := src.Register("Custom", false, false, data); err != nil {
			return nil, err
		}
	}
	return src, nil
}

// buildScene adds one of every primitive, then edits a few of them through
// the history the way an editor would.
func buildScene(h *drawing.History, cfg config, src vecedit.GlyphSource) error {
	family := "Go"
	if cfg.FontFile != "" {
		family = "Custom"
	}
	font := vecedit.Font{Family: family, Size: cfg.FontSize}

	filled := func(p vecedit.Primitive) vecedit.Primitive {
		if f, ok := p.(vecedit.Fillable); ok {
			f.SetFilled(true)
		}
		return p
	}
	var errs []error
	add := func(p vecedit.Primitive) uuid.UUID {
		id, err := h.Add(p)
		errs = append(errs, err)
		return id
	}

	add(filled(vecedit.NewRectangle(40, 40, 120, 80)))
	add(vecedit.NewOval(180, 40, 140, 80))
	add(filled(vecedit.NewCircle(400, 80, 40)))
	add(filled(vecedit.NewRoundRect(470, 40, 140, 80, 30, 30)))
	add(vecedit.NewLine(640, 40, 760, 120))

	add(filled(vecedit.PolygonOf(
		vecedit.Pt(60, 160), vecedit.Pt(150, 180), vecedit.Pt(130, 260), vecedit.Pt(50, 240))))
	add(vecedit.PolylineOf(
		vecedit.Pt(180, 260), vecedit.Pt(220, 160), vecedit.Pt(260, 260), vecedit.Pt(300, 160)))
	tri := add(filled(vecedit.NewTriangle(vecedit.Pt(340, 260), vecedit.Pt(400, 160), vecedit.Pt(460, 260))))
	rhombus := add(filled(vecedit.NewRhombus(540, 210, 50, 30, 30)))
	add(filled(vecedit.NewArc(620, 160, 120, 100, 30, 240, vecedit.ArcPie)))

	shape, err := vecedit.ParsePathData("M40 300 C120 280 160 380 240 340 Q 300 300 320 360 L 320 400 L 40 400 Z")
	if err != nil {
		return err
	}
	add(filled(vecedit.NewPathShape(shape)))
	add(vecedit.NewClear(120, 330, 60, 30))
	add(vecedit.NewImage(360, 300, 120, 100, gradient(24, 20)))
	add(vecedit.NewText(500, 340, "vecedit", vecedit.Font{Family: family, Size: cfg.FontSize * 1.5}, src))

	curve := vecedit.NewPath()
	curve.MoveTo(60, float64(cfg.Height)-60)
	curve.CubicTo(260, float64(cfg.Height)-200, 520, float64(cfg.Height)+40, float64(cfg.Width)-60, float64(cfg.Height)-140)
	add(filled(vecedit.NewPathText(curve, cfg.Text, font, src)))
	add(vecedit.NewPathShape(curve))
	if err := errors.Join(errs...); err != nil {
		return err
	}

	// Drag the triangle's first edge midpoint, as an editor would.
	p, err := h.Begin(tri)
	if err != nil {
		return err
	}
	for i := range 5 {
		if err := p.SetControlPoint(3, vecedit.Pt(370, 200-float64(i)*4)); err != nil {
			_ = h.Cancel()
			return err
		}
	}
	if _, err := h.Commit(); err != nil {
		return err
	}
	// Rotate the rhombus about its own center.
	turn := vecedit.Translate(-540, -210).Then(vecedit.RotateDegrees(10)).Then(vecedit.Translate(540, 215))
	return h.Apply(rhombus, turn)
}

// gradient returns a small test image to exercise image scaling.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: 160,
				A: 255,
			})
		}
	}
	return img
}
