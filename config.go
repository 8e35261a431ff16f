// config.go
package main

import (
	"errors"
	"fmt"
)

// Inset: 拡大表示（inset）の配置と表示窓
type Inset struct {
	Width  float64 // main の描画領域に対する幅の割合
	Height float64 // main の描画領域に対する高さの割合
	X      Range   // 表示窓（x）
	Y      Range   // 表示窓（y）
}

// Config は「ユーザー設定」をまとめたもの
type Config struct {
	Domain     Range
	Samples    int
	Brackets   []Range
	Inset      Inset
	BandAlpha  float64
	MarkAlpha  float64
	Width      float64 // inch
	Height     float64 // inch
	DPI        int
	OutFile    string
	XLSXFile   string // "" なら保存しない
	TSVFile    string // "" なら保存しない
	PrintTable bool
	F          func(x float64) float64
}

// LocalOverride は config_local.go から差し替える（nil なら何もしない）
var LocalOverride func(cfg *Config)

// ============================================================
// ユーザー設定（ここから）
// ============================================================

func DefaultConfig() Config {
	// 描画範囲とサンプル数
	domain := Range{Min: -6, Max: 6}
	samples := 10_000

	// 拡大表示：幅 35%・高さ 45%，右下に配置
	inset := Inset{
		Width:  0.35,
		Height: 0.45,
		X:      Range{Min: -1.08206, Max: -1.08203},
		Y:      Range{Min: -0.00001, Max: 0.00001},
	}

	// 帯（根の区間）と拡大枠の不透明度
	bandAlpha := 0.7
	markAlpha := 0.5

	// 画像サイズ（6.4x4.8 inch, 100 dpi → 640x480 px）
	width := 6.4
	height := 4.8
	dpi := 100

	outFile := "docs/basic_usage.png"

	// xlsx / tsv 出力（"" なら保存しない）
	xlsxFile := ""
	tsvFile := ""

	// ============================================================
	// ユーザー設定（ここまで）
	// ============================================================

	return Config{
		Domain:     domain,
		Samples:    samples,
		Brackets:   RootBrackets(),
		Inset:      inset,
		BandAlpha:  bandAlpha,
		MarkAlpha:  markAlpha,
		Width:      width,
		Height:     height,
		DPI:        dpi,
		OutFile:    outFile,
		XLSXFile:   xlsxFile,
		TSVFile:    tsvFile,
		PrintTable: false,
		F:          F,
	}
}

// LoadConfig: 既定値に LocalOverride を適用したもの
func LoadConfig() Config {
	cfg := DefaultConfig()
	if LocalOverride != nil {
		LocalOverride(&cfg)
	}
	return cfg
}

// Validate: 設定ミスは描画前に気づけるようにする
func (c Config) Validate() error {
	if c.F == nil {
		return errors.New("config: F is nil")
	}
	if c.Samples < 2 {
		return fmt.Errorf("config: Samples must be >= 2 (got %d)", c.Samples)
	}
	if c.Domain.Max <= c.Domain.Min {
		return fmt.Errorf("config: Domain Max <= Min (%g, %g)", c.Domain.Min, c.Domain.Max)
	}
	for i, b := range c.Brackets {
		if b.Max < b.Min {
			return fmt.Errorf("config: bracket %d: Max < Min (%g, %g)", i, b.Min, b.Max)
		}
	}
	if c.Inset.Width <= 0 || c.Inset.Width > 1 || c.Inset.Height <= 0 || c.Inset.Height > 1 {
		return fmt.Errorf("config: inset size out of (0, 1] (%g x %g)", c.Inset.Width, c.Inset.Height)
	}
	if c.Inset.X.Max <= c.Inset.X.Min || c.Inset.Y.Max <= c.Inset.Y.Min {
		return errors.New("config: inset window is empty")
	}
	if c.Width <= 0 || c.Height <= 0 || c.DPI <= 0 {
		return fmt.Errorf("config: bad figure size %gx%g @ %d dpi", c.Width, c.Height, c.DPI)
	}
	if c.OutFile == "" {
		return errors.New("config: OutFile is empty")
	}
	return nil
}
