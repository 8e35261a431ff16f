package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunFigureOnly(t *testing.T) {
	logger = zap.NewNop()
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.OutFile = filepath.Join(dir, "docs", "basic_usage.png")
	require.NoError(t, run(cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1) // docs/ だけ

	b, err := os.ReadFile(cfg.OutFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, pngSignature))
}

func TestRunWithExports(t *testing.T) {
	logger = zap.NewNop()
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Samples = 500
	cfg.OutFile = filepath.Join(dir, "fig.png")
	cfg.TSVFile = filepath.Join(dir, "brackets.tsv")
	cfg.XLSXFile = filepath.Join(dir, "brackets.xlsx")
	cfg.PrintTable = true

	out := captureStdout(t, func() {
		require.NoError(t, run(cfg))
	})
	assert.Contains(t, out, "=== root brackets ===")

	for _, p := range []string{cfg.OutFile, cfg.TSVFile, cfg.XLSXFile} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	logger = zap.NewNop()
	cfg := DefaultConfig()
	cfg.OutFile = filepath.Join(t.TempDir(), "x.png")
	cfg.Brackets = []Range{{Min: 1, Max: 0}}
	err := run(cfg)
	require.Error(t, err)
	assert.ErrorContains(t, err, "bracket 0")

	_, err = os.Stat(cfg.OutFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmdRejectsArgs(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, []string{"extra"}))
	assert.NoError(t, rootCmd.Args(rootCmd, nil))
}

func TestRootCmdExecute(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "basic_usage.png")
	rootCmd.SetArgs([]string{"--out", out})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		logger = zap.NewNop()
	})

	require.NoError(t, rootCmd.Execute())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, pngSignature))
}

func TestReportError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	orig := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = orig })

	var buf bytes.Buffer
	reportError(&buf, errors.New("boom"))

	// 画面には 1 行だけ，ログは debug
	assert.Equal(t, "error: boom\n", buf.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
}
