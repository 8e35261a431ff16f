// figure.go
package main

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// 色サイクル C0（曲線）/ C2（帯）
var (
	colorC0 = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorC2 = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// Corner: 枠の角（左上=1 から時計回り）
type Corner int

const (
	UpperLeft Corner = iota + 1
	UpperRight
	LowerRight
	LowerLeft
)

func (k Corner) of(r vg.Rectangle) vg.Point {
	switch k {
	case UpperLeft:
		return vg.Point{X: r.Min.X, Y: r.Max.Y}
	case UpperRight:
		return r.Max
	case LowerRight:
		return vg.Point{X: r.Max.X, Y: r.Min.Y}
	default:
		return r.Min
	}
}

// 閉じた折れ線（左下から）
func rectPoints(r vg.Rectangle) []vg.Point {
	return []vg.Point{
		r.Min,
		LowerRight.of(r),
		r.Max,
		UpperLeft.of(r),
		r.Min,
	}
}

// band: x の区間を縦いっぱいに塗る
type band struct {
	Range
	Color color.Color
}

func (b band) Plot(c draw.Canvas, p *plot.Plot) {
	trX, _ := p.Transforms(&c)
	x0 := max(trX(b.Min), c.Min.X)
	x1 := min(trX(b.Max), c.Max.X)
	if x1 < x0 {
		return
	}
	var pa vg.Path
	pa.Move(vg.Point{X: x0, Y: c.Min.Y})
	pa.Line(vg.Point{X: x1, Y: c.Min.Y})
	pa.Line(vg.Point{X: x1, Y: c.Max.Y})
	pa.Line(vg.Point{X: x0, Y: c.Max.Y})
	pa.Close()
	c.SetColor(b.Color)
	c.Fill(pa)
}

// frame: 描画領域の四辺
type frame struct {
	draw.LineStyle
}

func (f frame) Plot(c draw.Canvas, _ *plot.Plot) {
	c.StrokeLines(f.LineStyle, rectPoints(c.Rectangle))
}

// insetArea: main の描画領域の右下に inset を置く（余白 5pt）
func insetArea(c draw.Canvas, in Inset) draw.Canvas {
	pad := vg.Points(5)
	size := c.Size()
	w := vg.Length(in.Width) * size.X
	h := vg.Length(in.Height) * size.Y
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: c.Max.X - pad - w, Y: c.Min.Y + pad},
			Max: vg.Point{X: c.Max.X - pad, Y: c.Min.Y + pad + h},
		},
	}
}

// insetMarker: main 上の拡大窓の枠と，inset の枠へ向かう 2 本の線
type insetMarker struct {
	Inset   Inset
	Target  *plot.Plot
	Corners [2]Corner
	draw.LineStyle
}

// geometry: main 上の窓 src，inset の描画領域 dst，つなぐ線（src 側, dst 側）
func (m insetMarker) geometry(c draw.Canvas, p *plot.Plot) (src, dst vg.Rectangle, links [][2]vg.Point) {
	trX, trY := p.Transforms(&c)
	src = vg.Rectangle{
		Min: vg.Point{X: trX(m.Inset.X.Min), Y: trY(m.Inset.Y.Min)},
		Max: vg.Point{X: trX(m.Inset.X.Max), Y: trY(m.Inset.Y.Max)},
	}
	dst = m.Target.DataCanvas(insetArea(c, m.Inset)).Rectangle
	for _, k := range m.Corners {
		links = append(links, [2]vg.Point{k.of(src), k.of(dst)})
	}
	return src, dst, links
}

func (m insetMarker) Plot(c draw.Canvas, p *plot.Plot) {
	src, _, links := m.geometry(c, p)
	c.StrokeLines(m.LineStyle, rectPoints(src))
	for _, l := range links {
		c.StrokeLine2(m.LineStyle, l[0].X, l[0].Y, l[1].X, l[1].Y)
	}
}

// Figure: main と inset の 2 つの軸
type Figure struct {
	Main   *plot.Plot
	Inset  *plot.Plot
	window Inset

	// 各軸に Add した順の plotter
	mainLayers  []plot.Plotter
	insetLayers []plot.Plotter
}

// 両方の軸に同じ曲線・y=0 の線・区間の帯を描く。
// 帯は線の下に置く。
func addLayers(p *plot.Plot, curve plotter.XYs, brackets []Range, bandAlpha float64) ([]plot.Plotter, error) {
	layers := make([]plot.Plotter, 0, len(brackets)+2)
	for _, b := range brackets {
		layers = append(layers, band{Range: b, Color: withAlpha(colorC2, bandAlpha)})
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("curve: %w", err)
	}
	line.Color = colorC0
	line.Width = vg.Points(1.5)

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.Black
	zero.Width = vg.Points(1.5)
	zero.Samples = 2

	layers = append(layers, line, zero)
	p.Add(layers...)
	return layers, nil
}

// 範囲の前後に余白（frac = 0.05 で 5%）
func margin(a *plot.Axis, frac float64) {
	d := (a.Max - a.Min) * frac
	a.Min -= d
	a.Max += d
}

func NewFigure(cfg Config) (*Figure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	curve := Curve(cfg.F, Domain(cfg.Domain, cfg.Samples))
	border := draw.LineStyle{Color: color.Black, Width: vg.Points(0.8)}

	// inset
	in := plot.New()
	in.X.Padding = 0
	in.Y.Padding = 0
	in.X.Tick.Marker = plot.ConstantTicks{}
	in.Y.Tick.Marker = plot.ConstantTicks{}
	insetLayers, err := addLayers(in, curve, cfg.Brackets, cfg.BandAlpha)
	if err != nil {
		return nil, fmt.Errorf("inset: %w", err)
	}
	in.Add(frame{border})
	insetLayers = append(insetLayers, frame{border})
	// Add で範囲が広がるので最後に固定する
	in.X.Min, in.X.Max = cfg.Inset.X.Min, cfg.Inset.X.Max
	in.Y.Min, in.Y.Max = cfg.Inset.Y.Min, cfg.Inset.Y.Max

	// main
	p := plot.New()
	p.X.Padding = 0
	p.Y.Padding = 0
	marker := insetMarker{
		Inset:     cfg.Inset,
		Target:    in,
		Corners:   [2]Corner{UpperLeft, LowerRight},
		LineStyle: draw.LineStyle{Color: withAlpha(color.RGBA{A: 0xff}, cfg.MarkAlpha), Width: vg.Points(1)},
	}
	p.Add(marker)
	mainLayers, err := addLayers(p, curve, cfg.Brackets, cfg.BandAlpha)
	if err != nil {
		return nil, fmt.Errorf("main: %w", err)
	}
	p.Add(frame{border})
	mainLayers = append([]plot.Plotter{marker}, mainLayers...)
	mainLayers = append(mainLayers, frame{border})
	margin(&p.X, 0.05)
	margin(&p.Y, 0.05)

	return &Figure{
		Main:        p,
		Inset:       in,
		window:      cfg.Inset,
		mainLayers:  mainLayers,
		insetLayers: insetLayers,
	}, nil
}

// Draw: main を描いてから inset をその上に重ねる
func (f *Figure) Draw(c draw.Canvas) {
	pad := vg.Points(10)
	c = draw.Crop(c, pad, -pad, pad, -pad)
	f.Main.Draw(c)
	f.Inset.Draw(insetArea(f.Main.DataCanvas(c), f.window))
}

// Render: PNG のバイト列
func Render(cfg Config) ([]byte, error) {
	fig, err := NewFigure(cfg)
	if err != nil {
		return nil, err
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch),
		vgimg.UseDPI(cfg.DPI),
	)
	fig.Draw(draw.New(img))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveFigure: cfg.OutFile に保存（ディレクトリがなければ作る，あれば上書き）
func SaveFigure(cfg Config) error {
	b, err := Render(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.OutFile), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(cfg.OutFile, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.OutFile, err)
	}
	return nil
}
