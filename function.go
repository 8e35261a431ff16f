// function.go
package main

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"
)

type Range struct {
	Min float64
	Max float64
}

func inRange(x float64, r Range) bool {
	return r.Min <= x && x <= r.Max
}

// F は図に描く関数 f(x) = sin(x) - 0.1 x^2 + 1
func F(x float64) float64 {
	return math.Sin(x) - 0.1*x*x + 1
}

// RootBrackets: 根を含むとされる区間（計算しない。値はそのまま使う）
// 呼び出し側が書き換えても元の値は変わらないよう毎回コピーを返す。
func RootBrackets() []Range {
	return []Range{
		{Min: 3.14959, Max: 3.1496},
		{Min: -4.42654, Max: -4.42653},
		{Min: -1.08205, Max: -1.08204},
		{Min: -3.10682, Max: -3.10681},
	}
}

// Domain: [r.Min, r.Max] を両端含めて n 等分点で返す
func Domain(r Range, n int) []float64 {
	return vec.Linspace(r.Min, r.Max, n)
}

// Curve: (x, f(x)) の列
func Curve(f func(float64) float64, xs []float64) plotter.XYs {
	ys := vec.Map(f, xs)
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}

// BracketRow: 区間の両端での f の値（符号が変わるかどうか）
type BracketRow struct {
	Range
	FMin       float64
	FMax       float64
	SignChange bool
}

// Report は各区間の両端で f を評価するだけ（根は探さない）
func Report(f func(float64) float64, brackets []Range) []BracketRow {
	rows := make([]BracketRow, 0, len(brackets))
	for _, b := range brackets {
		lo := f(b.Min)
		hi := f(b.Max)
		rows = append(rows, BracketRow{
			Range:      b,
			FMin:       lo,
			FMax:       hi,
			SignChange: lo == 0 || hi == 0 || math.Signbit(lo) != math.Signbit(hi),
		})
	}
	return rows
}
