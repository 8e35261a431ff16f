// output.go
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/plot/plotter"
)

func fmt4(x float64) string { return fmt.Sprintf("%10.4g", x) }

// 区間の端は 4 桁では潰れるので桁数を多めに
func fmtEdge(x float64) string { return fmt.Sprintf("%.6f", x) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

var bracketHeaders = []string{"No", "lo", "hi", "f(lo)", "f(hi)", "sign_change"}

func bracketCells(i int, r BracketRow) []string {
	return []string{
		fmt.Sprintf("%d", i+1),
		fmtEdge(r.Min),
		fmtEdge(r.Max),
		fmt4(r.FMin),
		fmt4(r.FMax),
		yesNo(r.SignChange),
	}
}

func PrintBracketTable(title string, list []BracketRow) {
	fmt.Println(title)
	if len(list) == 0 {
		fmt.Println("(none)")
		return
	}

	// 各セルの文字列を先に作る
	rows := make([][]string, len(list))
	for i, r := range list {
		rows[i] = bracketCells(i, r)
	}

	// 列幅を決定（ヘッダ or 中身の最大）
	widths := make([]int, len(bracketHeaders))
	for i, h := range bracketHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	printLine := func() {
		fmt.Print("+")
		for _, w := range widths {
			fmt.Print(strings.Repeat("-", w+2) + "+")
		}
		fmt.Println()
	}

	// ヘッダ行
	printLine()
	fmt.Print("|")
	for i, h := range bracketHeaders {
		fmt.Printf(" %-*s |", widths[i], h)
	}
	fmt.Println()
	printLine()

	// データ行
	for _, row := range rows {
		fmt.Print("|")
		for j, cell := range row {
			fmt.Printf(" %*s |", widths[j], cell) // 右寄せ
		}
		fmt.Println()
	}
	printLine()
	fmt.Println()
}

func SaveToXLSX(
	filename string,
	domain Range,
	inset Inset,
	curve plotter.XYs,
	list []BracketRow,
) error {
	if filename == "" {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	// Summary
	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	inWindow := 0
	for _, p := range curve {
		if inRange(p.X, inset.X) && inRange(p.Y, inset.Y) {
			inWindow++
		}
	}

	f.SetCellValue(summary, "A1", "Key")
	f.SetCellValue(summary, "B1", "Value")
	f.SetCellValue(summary, "A2", "x_min")
	f.SetCellValue(summary, "B2", domain.Min)
	f.SetCellValue(summary, "A3", "x_max")
	f.SetCellValue(summary, "B3", domain.Max)
	f.SetCellValue(summary, "A4", "samples")
	f.SetCellValue(summary, "B4", len(curve))
	f.SetCellValue(summary, "A5", "brackets")
	f.SetCellValue(summary, "B5", len(list))
	f.SetCellValue(summary, "A6", "samples_in_inset")
	f.SetCellValue(summary, "B6", inWindow)

	// Brackets（xlsx は数値のまま保存）
	sheet := "Brackets"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx sheet %s: %w", sheet, err)
	}
	for col, h := range bracketHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range list {
		row := i + 2
		values := []any{i + 1, r.Min, r.Max, r.FMin, r.FMax, r.SignChange}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Samples
	sheet = "Samples"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx sheet %s: %w", sheet, err)
	}
	f.SetCellValue(sheet, "A1", "x")
	f.SetCellValue(sheet, "B1", "y")
	for i, p := range curve {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, cell, p.X)
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, cell, p.Y)
	}

	return f.SaveAs(filename)
}

// list を TSV で保存する（表と同じ列順）
func SaveBracketsToTSV(filename string, list []BracketRow) error {
	if filename == "" {
		return nil
	}

	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	w.Comma = '\t'

	if err := w.Write(bracketHeaders[1:]); err != nil {
		return err
	}
	for i, r := range list {
		row := bracketCells(i, r)[1:]
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
