package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()

	w.Close()
	os.Stdout = orig
	return <-done
}

func TestPrintBracketTable(t *testing.T) {
	rows := Report(F, RootBrackets())
	out := captureStdout(t, func() {
		PrintBracketTable("=== root brackets ===", rows)
	})

	assert.Contains(t, out, "=== root brackets ===")
	assert.Contains(t, out, "sign_change")
	assert.Contains(t, out, "3.149590")
	assert.Contains(t, out, "-4.426540")
	assert.Contains(t, out, "-1.082050")
	assert.Contains(t, out, "-3.106810")
}

func TestPrintBracketTableEmpty(t *testing.T) {
	out := captureStdout(t, func() { PrintBracketTable("t", nil) })
	assert.Contains(t, out, "(none)")
}

func TestSaveBracketsToTSV(t *testing.T) {
	// 空文字なら何もしない
	require.NoError(t, SaveBracketsToTSV("", nil))

	path := filepath.Join(t.TempDir(), "brackets.tsv")
	id := func(x float64) float64 { return x }
	rows := Report(id, []Range{{Min: -1, Max: 1}, {Min: 1, Max: 2}})
	require.NoError(t, SaveBracketsToTSV(path, rows))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "lo\thi\tf(lo)\tf(hi)\tsign_change", lines[0])
	assert.Equal(t, "-1.000000\t1.000000\t-1\t1\tyes", lines[1])
	assert.Equal(t, "1.000000\t2.000000\t1\t2\tno", lines[2])
}

func TestSaveToXLSX(t *testing.T) {
	require.NoError(t, SaveToXLSX("", Range{}, Inset{}, nil, nil))

	cfg := DefaultConfig()
	cfg.Samples = 50
	curve := Curve(cfg.F, Domain(cfg.Domain, cfg.Samples))
	rows := Report(cfg.F, cfg.Brackets)

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, SaveToXLSX(path, cfg.Domain, cfg.Inset, curve, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Summary", "B4")
	require.NoError(t, err)
	assert.Equal(t, "50", v)

	v, err = f.GetCellValue("Summary", "B5")
	require.NoError(t, err)
	assert.Equal(t, "4", v)

	brackets, err := f.GetRows("Brackets")
	require.NoError(t, err)
	require.Len(t, brackets, 5)
	assert.Equal(t, bracketHeaders, brackets[0])

	samples, err := f.GetRows("Samples")
	require.NoError(t, err)
	assert.Len(t, samples, 51)
	assert.Equal(t, []string{"x", "y"}, samples[0])
}
