// main.go
// Copyright (c) 2026 Ichijo Hodaka
// roots basic usage（ドキュメント用の図）
// - f(x) = sin(x) - 0.1 x^2 + 1 を [-6, 6] で 10000 点サンプリング
// - y=0 の線と，根を含む区間（定数）を帯で表示
// - 根 -1.0820... の付近を右下の inset で拡大
// - docs/basic_usage.png に保存
//
// 根は探さない（区間は定数）。

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()

	flagOut   string
	flagXLSX  string
	flagTSV   string
	flagTable bool
)

var rootCmd = &cobra.Command{
	Use:   "basic-usage-plot",
	Short: "Render docs/basic_usage.png (f with root brackets and a zoomed inset)",
	Long: `Samples f(x) = sin(x) - 0.1 x^2 + 1 on [-6, 6], shades the four root
brackets and writes the figure with a zoomed inset to docs/basic_usage.png.

Run without arguments to regenerate the documentation image.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := LoadConfig()
		applyFlags(cmd, &cfg)
		return run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output PNG path (default from config: docs/basic_usage.png)")
	rootCmd.Flags().StringVar(&flagXLSX, "xlsx", "", "also save samples and brackets to this xlsx file")
	rootCmd.Flags().StringVar(&flagTSV, "tsv", "", "also save the bracket report to this tsv file")
	rootCmd.Flags().BoolVar(&flagTable, "table", false, "print the bracket report")
}

// フラグは指定されたものだけ設定を上書きする
func applyFlags(cmd *cobra.Command, cfg *Config) {
	if cmd.Flags().Changed("out") {
		cfg.OutFile = flagOut
	}
	if cmd.Flags().Changed("xlsx") {
		cfg.XLSXFile = flagXLSX
	}
	if cmd.Flags().Changed("tsv") {
		cfg.TSVFile = flagTSV
	}
	if cmd.Flags().Changed("table") {
		cfg.PrintTable = flagTable
	}
}

// 設定の検査は NewFigure（SaveFigure の中）で一度だけ行う
func run(cfg Config) error {
	logger.Debug("rendering figure",
		zap.String("out", cfg.OutFile),
		zap.Int("samples", cfg.Samples),
		zap.Int("brackets", len(cfg.Brackets)),
		zap.Float64("inset_x_min", cfg.Inset.X.Min),
		zap.Float64("inset_x_max", cfg.Inset.X.Max),
	)

	if err := SaveFigure(cfg); err != nil {
		return err
	}
	logger.Info("figure saved", zap.String("path", cfg.OutFile))

	// ここから先は任意の出力（既定では何もしない）
	if !cfg.PrintTable && cfg.TSVFile == "" && cfg.XLSXFile == "" {
		return nil
	}

	rows := Report(cfg.F, cfg.Brackets)

	if cfg.PrintTable {
		PrintBracketTable("=== root brackets ===", rows)
	}

	if err := SaveBracketsToTSV(cfg.TSVFile, rows); err != nil {
		return fmt.Errorf("tsv save: %w", err)
	}
	if cfg.TSVFile != "" {
		logger.Info("tsv saved", zap.String("path", cfg.TSVFile))
	}

	if cfg.XLSXFile != "" {
		curve := Curve(cfg.F, Domain(cfg.Domain, cfg.Samples))
		if err := SaveToXLSX(cfg.XLSXFile, cfg.Domain, cfg.Inset, curve, rows); err != nil {
			return fmt.Errorf("xlsx save: %w", err)
		}
		logger.Info("xlsx saved", zap.String("path", cfg.XLSXFile))
	}
	return nil
}

// reportError: 利用者向けには 1 行だけ。ログは --verbose のときだけ出る
func reportError(w io.Writer, err error) {
	logger.Debug("failed", zap.Error(err))
	_ = logger.Sync()
	fmt.Fprintln(w, "error:", err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
